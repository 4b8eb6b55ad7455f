package parse

import (
	"maps"
	"slices"

	"golang.org/x/exp/ebnf"
)

// leftRecursion returns a cycle of productions that can reach themselves
// without consuming input, or nil if there is none. The cycle starts and
// ends with the same name.
func leftRecursion(g ebnf.Grammar) []string {
	nullable := nullables(g)
	edges := make(map[string][]string, len(g))
	for name, prod := range g {
		edges[name] = leftNames(prod.Expr, nullable)
	}
	return findCycle(edges)
}

// nullables computes which productions can match the empty string.
func nullables(g ebnf.Grammar) map[string]bool {
	null := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if !null[name] && isNullable(prod.Expr, null) {
				null[name] = true
				changed = true
			}
		}
	}
	return null
}

func isNullable(x ebnf.Expression, null map[string]bool) bool {
	switch x := x.(type) {
	case nil:
		return true
	case *ebnf.Token:
		return x.String == ""
	case *ebnf.Name:
		return null[x.String]
	case ebnf.Sequence:
		for _, item := range x {
			if !isNullable(item, null) {
				return false
			}
		}
		return true
	case ebnf.Alternative:
		return slices.ContainsFunc(x, func(alt ebnf.Expression) bool {
			return isNullable(alt, null)
		})
	case *ebnf.Group:
		return isNullable(x.Body, null)
	case *ebnf.Option, *ebnf.Repetition:
		return true
	}
	return false
}

// leftNames lists the productions x may call before consuming input.
func leftNames(x ebnf.Expression, null map[string]bool) []string {
	switch x := x.(type) {
	case *ebnf.Name:
		return []string{x.String}
	case ebnf.Sequence:
		var names []string
		for _, item := range x {
			names = append(names, leftNames(item, null)...)
			if !isNullable(item, null) {
				break
			}
		}
		return names
	case ebnf.Alternative:
		var names []string
		for _, alt := range x {
			names = append(names, leftNames(alt, null)...)
		}
		return names
	case *ebnf.Group:
		return leftNames(x.Body, null)
	case *ebnf.Option:
		return leftNames(x.Body, null)
	case *ebnf.Repetition:
		return leftNames(x.Body, null)
	}
	return nil
}

func findCycle(edges map[string][]string) []string {
	const (
		unvisited = iota
		active
		done
	)
	color := make(map[string]int, len(edges))
	var stack []string

	var visit func(name string) []string
	visit = func(name string) []string {
		color[name] = active
		stack = append(stack, name)
		for _, next := range edges[name] {
			switch color[next] {
			case active:
				i := slices.Index(stack, next)
				return append(slices.Clone(stack[i:]), next)
			case unvisited:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[name] = done
		return nil
	}

	for _, name := range slices.Sorted(maps.Keys(edges)) {
		if color[name] == unvisited {
			if cycle := visit(name); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
