package untyped

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Closed terms, built against the empty context. A variable's ContextLen is
// therefore the number of binders around it.
var (
	id    = Abstraction(Variable(0, 1), "x")
	idY   = Abstraction(Variable(0, 1), "y")
	k     = Abstraction(Abstraction(Variable(1, 2), "y"), "x")
	sComb = Abstraction(Abstraction(Abstraction(
		Application(
			Application(Variable(2, 3), Variable(0, 3)),
			Application(Variable(1, 3), Variable(0, 3)),
		), "z"), "y"), "x")

	selfApp = Abstraction(Application(Variable(0, 1), Variable(0, 1)), "x")

	tru = Abstraction(Abstraction(Variable(1, 2), "f"), "t")
	fls = Abstraction(Abstraction(Variable(0, 2), "f"), "t")
	not = Abstraction(Application(Application(Variable(0, 1), Shift(1, fls)), Shift(1, tru)), "b")

	zero = Abstraction(Abstraction(Variable(0, 2), "z"), "s")
	one  = Abstraction(Abstraction(Application(Variable(1, 2), Variable(0, 2)), "z"), "s")
	two  = Abstraction(Abstraction(
		Application(Variable(1, 2), Application(Variable(1, 2), Variable(0, 2))),
		"z"), "s")
	scc = Abstraction(Abstraction(Abstraction(
		Application(Variable(1, 3), Application(Application(Variable(2, 3), Variable(1, 3)), Variable(0, 3))),
		"z"), "s"), "n")
)

var catalogue = map[string]Term{
	"id":      id,
	"k":       k,
	"s":       sComb,
	"tru":     tru,
	"fls":     fls,
	"not":     not,
	"zero":    zero,
	"one":     one,
	"two":     two,
	"scc":     scc,
	"id_id":   Application(id, idY),
	"k_id":    Application(k, id),
	"k_id_k":  Application(Application(k, id), k),
	"not_tru": Application(not, tru),
	"scc_one": Application(scc, one),
	"omega":   Application(selfApp, selfApp),
}

// Lookup returns the closed sample term registered under name.
func Lookup(name string) (Term, bool) {
	t, ok := catalogue[name]
	return t, ok
}

// Names lists the sample terms in sorted order.
func Names() []string {
	names := lo.Keys(catalogue)
	slices.Sort(names)
	return names
}
