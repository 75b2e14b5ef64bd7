package lisp

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind is the variant of a Value.
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueString
	ValueSequence
)

func (k ValueKind) String() string {
	switch k {
	case ValueNumber:
		return "Number"
	case ValueString:
		return "String"
	case ValueSequence:
		return "Sequence"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is the result of evaluation.
type Value struct {
	Kind ValueKind
	Num  int64
	Str  string
	// Seq is never nil for a ValueSequence.
	Seq []Value
}

// Number returns a Number value.
func Number(n int64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// String returns a String value.
func String(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// Sequence returns a Sequence holding vs. Sequence() is the empty sequence.
func Sequence(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{Kind: ValueSequence, Seq: vs}
}

// Equal returns true if v and o are the same kind and hold equal contents.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueNumber:
		return v.Num == o.Num
	case ValueString:
		return v.Str == o.Str
	}
	if len(v.Seq) != len(o.Seq) {
		return false
	}
	for i := range v.Seq {
		if !v.Seq[i].Equal(o.Seq[i]) {
			return false
		}
	}
	return true
}

// String returns v as an S-expression, e.g. (1 "a" (2 3)).
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.Kind {
	case ValueNumber:
		b.WriteString(strconv.FormatInt(v.Num, 10))
	case ValueString:
		b.WriteString(quote(v.Str))
	case ValueSequence:
		b.WriteByte('(')
		for i, e := range v.Seq {
			if i > 0 {
				b.WriteByte(' ')
			}
			e.write(b)
		}
		b.WriteByte(')')
	}
}

// Interface converts v into plain Go values: int64, string or
// []interface{}.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case ValueNumber:
		return v.Num
	case ValueString:
		return v.Str
	}
	ret := make([]interface{}, 0, len(v.Seq))
	for _, e := range v.Seq {
		ret = append(ret, e.Interface())
	}
	return ret
}

// MarshalJSON implements json.Marshaler. Sequences become arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}
