package lisp

import "fmt"

// Builtin is one of the fixed operations recognised in the head position of
// a list.
type Builtin int

const (
	Print Builtin = iota
	Car
	Cdr
	Cons
)

// builtins maps head-position symbol text to its Builtin. It is never
// modified.
var builtins = map[string]Builtin{
	"print": Print,
	"car":   Car,
	"cdr":   Cdr,
	"cons":  Cons,
}

// LookupBuiltin returns the Builtin named name.
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

func (b Builtin) String() string {
	switch b {
	case Print:
		return "print"
	case Car:
		return "car"
	case Cdr:
		return "cdr"
	case Cons:
		return "cons"
	}
	return fmt.Sprintf("Builtin(%d)", int(b))
}

// arity returns the allowed number of arguments; max < 0 means unbounded.
func (b Builtin) arity() (min, max int) {
	switch b {
	case Print:
		return 1, -1
	case Car, Cdr:
		return 1, 1
	case Cons:
		return 2, 2
	}
	return 0, -1
}

// call checks the argument count and applies b to the already evaluated
// args. pos is the position of the call, for errors.
func (b Builtin) call(pos Pos, args []Value) (Value, error) {
	min, max := b.arity()
	if len(args) < min || (max >= 0 && len(args) > max) {
		return Value{}, &TypeError{
			Kind:    TypeArityMismatch,
			Builtin: b,
			Pos:     pos,
			Msg:     fmt.Sprintf("%s, got %d", arityText(min, max), len(args)),
		}
	}
	switch b {
	case Print:
		return args[0], nil
	case Car:
		if err := wantSequence(b, pos, args, 0); err != nil {
			return Value{}, err
		}
		if len(args[0].Seq) == 0 {
			return Sequence(), nil
		}
		return args[0].Seq[0], nil
	case Cdr:
		if err := wantSequence(b, pos, args, 0); err != nil {
			return Value{}, err
		}
		if len(args[0].Seq) <= 1 {
			return Sequence(), nil
		}
		return Sequence(append([]Value{}, args[0].Seq[1:]...)...), nil
	case Cons:
		for i := range args {
			if err := wantSequence(b, pos, args, i); err != nil {
				return Value{}, err
			}
		}
		ret := make([]Value, 0, len(args[0].Seq)+len(args[1].Seq))
		ret = append(ret, args[0].Seq...)
		ret = append(ret, args[1].Seq...)
		return Sequence(ret...), nil
	}
	return Value{}, fmt.Errorf("unknown builtin %d", int(b))
}

func wantSequence(b Builtin, pos Pos, args []Value, i int) error {
	if args[i].Kind == ValueSequence {
		return nil
	}
	return &TypeError{
		Kind:    TypeShapeMismatch,
		Builtin: b,
		Pos:     pos,
		Arg:     i,
		Got:     args[i].Kind,
		Msg:     fmt.Sprintf("argument %d must be a Sequence, got %s %s", i+1, args[i].Kind, args[i]),
	}
}

func arityText(min, max int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("want at least %d argument(s)", min)
	case min == max:
		return fmt.Sprintf("want exactly %d argument(s)", min)
	}
	return fmt.Sprintf("want %d to %d arguments", min, max)
}
