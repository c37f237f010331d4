package favorites

import "testing"

func TestGroupByNamespace_Order(t *testing.T) {
	entries := []Entry{
		{Namespace: 0, Key: "Alpha"},
		{Namespace: 0, Key: "Beta"},
		{Namespace: 2, Key: "Someone"},
		{Namespace: 0, Key: "Gamma"},
	}

	groups := GroupByNamespace(entries)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Namespace != 0 || groups[1].Namespace != 2 {
		t.Fatalf("expected first-occurrence order, got %d then %d",
			groups[0].Namespace, groups[1].Namespace)
	}
	if len(groups[0].Entries) != 3 {
		t.Fatalf("expected 3 main-namespace entries, got %d", len(groups[0].Entries))
	}
	if groups[0].Entries[2].Key != "Gamma" {
		t.Fatalf("expected input order preserved, got %q last", groups[0].Entries[2].Key)
	}
}

func TestGroupByNamespace_Empty(t *testing.T) {
	if groups := GroupByNamespace(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestNamespaceHeading(t *testing.T) {
	cases := []struct {
		ns   int
		want string
	}{
		{0, "(Main)"},
		{1, "Talk"},
		{3, "User talk"},
		{98, "Namespace 98"},
	}
	for _, c := range cases {
		if got := NamespaceHeading(c.ns); got != c.want {
			t.Fatalf("namespace %d: expected %q, got %q", c.ns, c.want, got)
		}
	}
}

func TestGroupByNamespace_KeepsFlags(t *testing.T) {
	groups := GroupByNamespace([]Entry{
		{Namespace: 0, Key: "R", Redirect: true, Exists: true},
	})
	e := groups[0].Entries[0]
	if !e.Redirect || !e.Exists {
		t.Fatalf("expected flags preserved, got %+v", e)
	}
}
