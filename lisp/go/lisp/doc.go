// Package lisp reads and evaluates a minimal Lisp-like language.
//
// A program is a single expression: an atom such as 12, "some text" or word,
// or a parenthesised list of expressions. Evaluating a list returns the list
// of its evaluated elements, except when its first element is one of the
// built-in names print, car, cdr or cons, in which case the built-in is
// applied to the remaining elements:
//
//	(car (1 2 3))          => 1
//	(cdr (1 2 3))          => (2 3)
//	(cons (1 2) (3))       => (1 2 3)
//	(print "hi" ignored)   => "hi"
//
// There are no variables, functions or conditionals. Parse, Execute and the
// other functions keep no state between calls and may be used concurrently.
package lisp
