// Package title parses free-text page titles into canonical
// (namespace, key) pairs and maps between subject and talk namespaces.
package title

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalid is returned when a string cannot be resolved to a storable
// page reference.
var ErrInvalid = errors.New("title: invalid page title")

// Title is a resolved page reference. Key is the canonical DB key:
// NFC-normalized, underscores for spaces, first letter upper-cased.
type Title struct {
	Namespace int
	Key       string
}

// Subject returns the title re-homed to its subject namespace.
func (t Title) Subject() Title { return Title{Namespace: Subject(t.Namespace), Key: t.Key} }

// Talk returns the title re-homed to its talk namespace.
func (t Title) Talk() Title { return Title{Namespace: Talk(t.Namespace), Key: t.Key} }

// IsTalk reports whether the title lives in a talk namespace.
func (t Title) IsTalk() bool { return IsTalk(t.Namespace) }

// Text returns the display form of the key (spaces instead of
// underscores), without any namespace prefix.
func (t Title) Text() string { return strings.ReplaceAll(t.Key, "_", " ") }

// Prefixed returns the display title including its namespace prefix,
// e.g. "User talk:Example" or "Main Page".
func (t Title) Prefixed() string {
	name, ok := NamespaceName(t.Namespace)
	if !ok || name == "" {
		return t.Text()
	}
	return name + ":" + t.Text()
}

// String implements fmt.Stringer.
func (t Title) String() string { return t.Prefixed() }

// Parse resolves free text to a canonical Title. Leading colons are
// tolerated, namespace prefixes are matched case-insensitively, and the
// remainder is normalized into a DB key. It returns ErrInvalid for
// empty input, unknown-looking garbage, or characters that can never
// appear in a page title.
func Parse(text string) (Title, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, ":")
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrInvalid
	}

	ns := NSMain
	if i := strings.Index(s, ":"); i >= 0 {
		if got, ok := lookupNamespace(s[:i]); ok {
			ns = got
			s = strings.TrimSpace(s[i+1:])
		}
	}

	key, err := normalizeKey(s)
	if err != nil {
		return Title{}, err
	}
	return Title{Namespace: ns, Key: key}, nil
}

// Make builds a Title from an already-known namespace and key, applying
// the same key normalization as Parse. Used when reading rows back out
// of storage or handling host lifecycle events.
func Make(ns int, key string) (Title, error) {
	if ns < 0 {
		return Title{}, fmt.Errorf("%w: negative namespace %d", ErrInvalid, ns)
	}
	k, err := normalizeKey(key)
	if err != nil {
		return Title{}, err
	}
	return Title{Namespace: ns, Key: k}, nil
}

// normalizeKey turns display text or a raw key into the canonical DB
// key form.
func normalizeKey(s string) (string, error) {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "", ErrInvalid
	}
	if strings.ContainsAny(s, "#<>[]{}|") {
		return "", fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	s = upperFirst(s)
	return strings.ReplaceAll(s, " ", "_"), nil
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
