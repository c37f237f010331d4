package favorites

import (
	"fmt"

	"github.com/wikimedia/favorites/title"
)

// Group is one namespace worth of entries, ready for display.
type Group struct {
	Namespace int
	Heading   string
	Entries   []Entry
}

// GroupByNamespace buckets entries by namespace. Groups appear in the
// order their namespace first occurs in the input, and entries keep
// their input order within a group. No I/O happens here.
func GroupByNamespace(entries []Entry) []Group {
	var groups []Group
	index := make(map[int]int)
	for _, e := range entries {
		i, ok := index[e.Namespace]
		if !ok {
			i = len(groups)
			index[e.Namespace] = i
			groups = append(groups, Group{
				Namespace: e.Namespace,
				Heading:   NamespaceHeading(e.Namespace),
			})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// NamespaceHeading is the human-readable heading for a namespace
// group. The unprefixed main namespace gets a placeholder heading.
func NamespaceHeading(ns int) string {
	name, ok := title.NamespaceName(ns)
	if !ok {
		return fmt.Sprintf("Namespace %d", ns)
	}
	if name == "" {
		return "(Main)"
	}
	return name
}
