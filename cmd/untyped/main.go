package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/lambda/untyped"
)

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprint(w, "usage: untyped [-trace] [-debruijn] [-strategy partial|cbv] [-max-steps n] ( -list | name ... )\n\n")
		fmt.Fprint(w, "untyped reduces terms of the untyped lambda calculus (TAPL chapters 5-7)\n")
		fmt.Fprint(w, "from a built-in catalogue and prints their normal forms.\n\n")
		fs.PrintDefaults()
	}
}

func errExit(w io.Writer, err error) int {
	fmt.Fprintln(w, err)
	return 1
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("untyped", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)
	var (
		strategy untyped.Strategy
		trace    = fs.Bool("trace", false, "log every reduction step to stderr")
		deBruijn = fs.Bool("debruijn", false, "print terms with de Bruijn indices instead of names")
		list     = fs.Bool("list", false, "list the catalogue without reducing")
		maxSteps = fs.Int("max-steps", 0, "stop after this many steps (0 means no limit)")
	)
	fs.Var(&strategy, "strategy", "reduction strategy: partial or cbv")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	names := fs.Args()
	if *list == (len(names) != 0) || *maxSteps < 0 {
		fs.Usage()
		return 2
	}

	show := func(t untyped.Term) string {
		if *deBruijn {
			return t.DeBruijnString()
		}
		return untyped.Print(t, nil)
	}

	if *list {
		lines := lo.Map(untyped.Names(), func(name string, _ int) string {
			t, _ := untyped.Lookup(name)
			return name + " = " + show(t)
		})
		fmt.Fprintln(stdout, strings.Join(lines, "\n"))
		return 0
	}

	if i := slices.IndexFunc(names, func(name string) bool {
		_, ok := untyped.Lookup(name)
		return !ok
	}); i >= 0 {
		return errExit(stderr, fmt.Errorf("unknown term %q", names[i]))
	}

	logger := log.New(stderr, "[trace] ", 0)
	for _, name := range names {
		t, _ := untyped.Lookup(name)
		steps := 0
		t = strategy.Trace(t, func(t untyped.Term) bool {
			steps++
			if *trace {
				logger.Printf("%s step %d: %s", name, steps, show(t))
			}
			return *maxSteps == 0 || steps < *maxSteps
		})
		fmt.Fprintf(stdout, "%s = %s\n", name, show(t))
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
