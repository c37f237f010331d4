package title

import "strings"

// Namespace numbers follow the usual wiki convention: even numbers are
// subject namespaces, each paired with the talk namespace at number+1.
const (
	NSMain         = 0
	NSTalk         = 1
	NSUser         = 2
	NSUserTalk     = 3
	NSProject      = 4
	NSProjectTalk  = 5
	NSFile         = 6
	NSFileTalk     = 7
	NSTemplate     = 10
	NSTemplateTalk = 11
	NSHelp         = 12
	NSHelpTalk     = 13
	NSCategory     = 14
	NSCategoryTalk = 15
)

// Subject clears the talk bit and returns the subject namespace of ns.
func Subject(ns int) int { return ns &^ 1 }

// Talk sets the talk bit and returns the talk namespace paired with ns.
func Talk(ns int) int { return ns | 1 }

// IsTalk reports whether ns is a talk namespace.
func IsTalk(ns int) bool { return ns&1 == 1 }

var namespaceNames = map[int]string{
	NSMain:         "",
	NSTalk:         "Talk",
	NSUser:         "User",
	NSUserTalk:     "User talk",
	NSProject:      "Project",
	NSProjectTalk:  "Project talk",
	NSFile:         "File",
	NSFileTalk:     "File talk",
	NSTemplate:     "Template",
	NSTemplateTalk: "Template talk",
	NSHelp:         "Help",
	NSHelpTalk:     "Help talk",
	NSCategory:     "Category",
	NSCategoryTalk: "Category talk",
}

var namespaceAliases = map[string]int{
	"image":      NSFile,
	"image talk": NSFileTalk,
}

// NamespaceName returns the canonical display prefix for ns. The main
// namespace has no prefix and returns "".
func NamespaceName(ns int) (string, bool) {
	name, ok := namespaceNames[ns]
	return name, ok
}

// KnownNamespace reports whether ns is a registered namespace.
func KnownNamespace(ns int) bool {
	_, ok := namespaceNames[ns]
	return ok
}

// lookupNamespace resolves a textual prefix ("User talk", "user_talk",
// "image") to its namespace number.
func lookupNamespace(prefix string) (int, bool) {
	p := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(prefix, "_", " ")))
	for ns, name := range namespaceNames {
		if name != "" && strings.ToLower(name) == p {
			return ns, true
		}
	}
	if ns, ok := namespaceAliases[p]; ok {
		return ns, true
	}
	return 0, false
}
