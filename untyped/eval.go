package untyped

import "fmt"

// ErrNoRuleApplies is returned by Step when t has no reduct.
var ErrNoRuleApplies = fmt.Errorf("no rule applies")

// IsVal reports whether t is a value. Abstractions are the only values.
func IsVal(t Term) (isAbs bool) {
	_, isAbs = t.(Abs)
	return
}

// Strategy selects which applications the reducer is willing to look into.
type Strategy uint8

const (
	// Partial reduces the argument of an application only once the function
	// is a value, and never reduces a function position. An application
	// whose function is itself an application is stuck.
	Partial Strategy = iota
	// CallByValue adds the rule that reduces a non-value function position
	// before its argument.
	CallByValue
)

func (s Strategy) String() string {
	switch s {
	case Partial:
		return "partial"
	case CallByValue:
		return "cbv"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Set implements flag.Value.
func (s *Strategy) Set(v string) error {
	switch v {
	case "partial":
		*s = Partial
	case "cbv":
		*s = CallByValue
	default:
		return fmt.Errorf("unknown strategy %q", v)
	}
	return nil
}

// Step performs exactly one reduction step.
func (s Strategy) Step(t Term) (Term, error) {
	app, ok := t.(App)
	if !ok {
		return nil, ErrNoRuleApplies
	}
	if abs, ok := app.Fn.(Abs); ok && IsVal(app.Arg) {
		return SubstTop(abs.Body, app.Arg), nil
	}
	if IsVal(app.Fn) {
		t2Prime, err := s.Step(app.Arg)
		if err != nil {
			return nil, err
		}
		return App{app.Fn, t2Prime}, nil
	}
	if s == CallByValue {
		t1Prime, err := s.Step(app.Fn)
		if err != nil {
			return nil, err
		}
		return App{t1Prime, app.Arg}, nil
	}
	return nil, ErrNoRuleApplies
}

// Trace reduces t step by step, passing every reduct to yield. It stops
// when no rule applies or when yield returns false, and returns the last
// term reached.
func (s Strategy) Trace(t Term, yield func(Term) bool) Term {
	for {
		tPrime, err := s.Step(t)
		if err != nil {
			return t
		}
		t = tPrime
		if !yield(t) {
			return t
		}
	}
}

// NormalForm reduces t until no rule applies. It does not return if t
// diverges.
func (s Strategy) NormalForm(t Term) Term {
	return s.Trace(t, func(Term) bool { return true })
}

// Step performs one step of Partial reduction.
func Step(t Term) (Term, error) {
	return Partial.Step(t)
}

// NormalForm reduces t with the Partial strategy.
func NormalForm(t Term) Term {
	return Partial.NormalForm(t)
}
