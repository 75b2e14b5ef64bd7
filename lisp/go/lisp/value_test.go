package lisp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue_String(t *testing.T) {
	assert.Equal(t, "12", Number(12).String())
	assert.Equal(t, `"a \"b\""`, String(`a "b"`).String())
	assert.Equal(t, "()", Sequence().String())
	assert.Equal(t, `(1 "x" (2 3))`, Sequence(Number(1), String("x"), nums(2, 3)).String())
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(String("1")))
	assert.False(t, String("a").Equal(String("b")))
	assert.True(t, Sequence().Equal(Value{Kind: ValueSequence}))
	assert.False(t, nums(1, 2).Equal(nums(1)))
	assert.False(t, nums(1, 2).Equal(nums(1, 3)))
	assert.True(t, Sequence(nums(1), String("a")).Equal(Sequence(nums(1), String("a"))))
}

func TestValue_Interface(t *testing.T) {
	v := Sequence(Number(1), String("a"), Sequence())
	assert.Equal(t, []interface{}{int64(1), "a", []interface{}{}}, v.Interface())
}

func TestValue_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Sequence(Number(1), String("a"), Sequence(), nums(2, 3)))
	require.NoError(t, err)
	assert.Equal(t, `[1,"a",[],[2,3]]`, string(b))

	b, err = json.Marshal(String("x"))
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(b))
}

func TestValue_MarshalYAML(t *testing.T) {
	b, err := yaml.Marshal(Sequence(Number(1), String("1"), nums(2)))
	require.NoError(t, err)
	var got interface{}
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, []interface{}{1, "1", []interface{}{2}}, got)
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Sequence", ValueSequence.String())
	assert.Equal(t, "Symbol", KindSymbol.String())
	assert.Equal(t, "List", NodeList.String())
	assert.Equal(t, "unbalanced-parens", ParseUnbalanced.String())
	assert.Equal(t, "unterminated-string", LexUnterminatedString.String())
	assert.Equal(t, "argument-shape-mismatch", TypeShapeMismatch.String())
}
