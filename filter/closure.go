package filter

import (
	"strings"

	"github.com/erraggy/oasfilter/parser"
)

// closeOverRefs returns the set of component addresses reachable from
// the seed refs through the component reference graph. Only local
// component refs enter the closure; each address is visited once, so
// reference cycles terminate.
func closeOverRefs(graph map[string][]string, seeds map[string]struct{}) map[string]struct{} {
	closed := make(map[string]struct{}, len(seeds))
	var frontier []string
	for ref := range seeds {
		if !isLocalComponentRef(ref) {
			continue
		}
		if _, ok := closed[ref]; ok {
			continue
		}
		closed[ref] = struct{}{}
		frontier = append(frontier, ref)
	}
	for len(frontier) > 0 {
		ref := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, next := range graph[ref] {
			if !isLocalComponentRef(next) {
				continue
			}
			if _, ok := closed[next]; ok {
				continue
			}
			closed[next] = struct{}{}
			frontier = append(frontier, next)
		}
	}
	return closed
}

// componentPath converts a component address into the path segments
// below the components object, e.g. "#/components/schemas/Pet" becomes
// ["schemas", "Pet"]. Returns nil for addresses outside components.
func componentPath(ref string) []string {
	if !isLocalComponentRef(ref) {
		return nil
	}
	rest := strings.TrimPrefix(ref, parser.LocalComponentRefPrefix)
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}
