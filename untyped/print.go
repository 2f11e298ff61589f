package untyped

import (
	"strconv"

	"golang.org/x/exp/slices"
)

const badIndex = "[bad index]"

// Print renders t with names drawn from ctx, which lists the names in
// scope from the outermost binder to the innermost.
func Print(t Term, ctx []string) string {
	return t.ContextString(ctx)
}

func (v Var) DeBruijnString() string {
	return strconv.Itoa(v.Index)
}

// ContextString renders [bad index] when v was not built against a
// context of this length.
func (v Var) ContextString(ctx []string) string {
	if v.ContextLen != len(ctx) || v.Index < 0 || v.Index >= len(ctx) {
		return badIndex
	}
	return ctx[len(ctx)-1-v.Index]
}

func (a Abs) DeBruijnString() string {
	return "(lambda. " + a.Body.DeBruijnString() + ")"
}

func pickFreshName(ctx []string, s string) ([]string, string) {
	if slices.Contains(ctx, s) {
		return pickFreshName(ctx, s+"'")
	}
	return append(ctx[:len(ctx):len(ctx)], s), s
}

func (a Abs) ContextString(ctx []string) string {
	ctx, name := pickFreshName(ctx, a.Name)
	return "(lambda " + name + ". " + a.Body.ContextString(ctx) + ")"
}

func (a App) DeBruijnString() string {
	return "(" + a.Fn.DeBruijnString() + " " + a.Arg.DeBruijnString() + ")"
}

func (a App) ContextString(ctx []string) string {
	return "(" + a.Fn.ContextString(ctx) + " " + a.Arg.ContextString(ctx) + ")"
}
