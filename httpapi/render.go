package httpapi

import (
	"strings"

	"github.com/wikimedia/favorites/favorites"
	"github.com/wikimedia/favorites/title"
)

// entryTitle turns a stored (namespace, key) pair back into a display
// title. Rows that predate key normalization still render as-is.
func entryTitle(ns int, key string) string {
	t, err := title.Make(ns, key)
	if err != nil {
		return strings.ReplaceAll(key, "_", " ")
	}
	return t.Prefixed()
}

// renderWikitext produces the inline favorites list the wiki's
// <favorites/> markup tag expands to: one heading per namespace group,
// a link per entry, redirects in italics, missing pages struck
// through, and an edit link at the end.
func renderWikitext(groups []favorites.Group) string {
	var b strings.Builder
	for _, g := range groups {
		b.WriteString("== ")
		b.WriteString(g.Heading)
		b.WriteString(" ==\n")
		for _, e := range g.Entries {
			link := "[[" + entryTitle(g.Namespace, e.Key) + "]]"
			switch {
			case !e.Exists:
				link = "<s>" + link + "</s>"
			case e.Redirect:
				link = "''" + link + "''"
			}
			b.WriteString("* ")
			b.WriteString(link)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("[[Special:Favoritelist/edit|Edit your favorites]]\n")
	return b.String()
}
