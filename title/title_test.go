package title

import (
	"errors"
	"testing"
)

func TestParse_MainNamespace(t *testing.T) {
	got, err := Parse("Main Page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Namespace != NSMain {
		t.Fatalf("expected namespace %d, got %d", NSMain, got.Namespace)
	}
	if got.Key != "Main_Page" {
		t.Fatalf("expected %q, got %q", "Main_Page", got.Key)
	}
}

func TestParse_TalkPrefix(t *testing.T) {
	got, err := Parse("Talk:Main Page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Namespace != NSTalk {
		t.Fatalf("expected namespace %d, got %d", NSTalk, got.Namespace)
	}
	if got.Key != "Main_Page" {
		t.Fatalf("expected %q, got %q", "Main_Page", got.Key)
	}
}

func TestParse_CaseInsensitivePrefix(t *testing.T) {
	got, err := Parse("user_talk:example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Namespace != NSUserTalk {
		t.Fatalf("expected namespace %d, got %d", NSUserTalk, got.Namespace)
	}
	if got.Key != "Example" {
		t.Fatalf("expected %q, got %q", "Example", got.Key)
	}
}

func TestParse_UnknownPrefixIsPartOfTitle(t *testing.T) {
	got, err := Parse("Foo: bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Namespace != NSMain {
		t.Fatalf("expected main namespace, got %d", got.Namespace)
	}
	if got.Key != "Foo:_bar" {
		t.Fatalf("expected %q, got %q", "Foo:_bar", got.Key)
	}
}

func TestParse_LeadingColon(t *testing.T) {
	got, err := Parse(":Sandbox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Key != "Sandbox" {
		t.Fatalf("expected %q, got %q", "Sandbox", got.Key)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", ":", " : "} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q): expected ErrInvalid, got %v", in, err)
		}
	}
}

func TestParse_IllegalCharacters(t *testing.T) {
	for _, in := range []string{"Foo[bar]", "A|B", "Page#section", "<x>"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q): expected ErrInvalid, got %v", in, err)
		}
	}
}

func TestParse_CollapsesWhitespaceAndUnderscores(t *testing.T) {
	got, err := Parse("  foo   bar__baz ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Key != "Foo_bar_baz" {
		t.Fatalf("expected %q, got %q", "Foo_bar_baz", got.Key)
	}
}

func TestSubjectTalkPairing(t *testing.T) {
	if got := Subject(NSUserTalk); got != NSUser {
		t.Fatalf("expected %d, got %d", NSUser, got)
	}
	if got := Subject(NSUser); got != NSUser {
		t.Fatalf("expected %d, got %d", NSUser, got)
	}
	if got := Talk(NSMain); got != NSTalk {
		t.Fatalf("expected %d, got %d", NSTalk, got)
	}
	if got := Talk(NSTalk); got != NSTalk {
		t.Fatalf("expected %d, got %d", NSTalk, got)
	}
}

func TestPrefixed(t *testing.T) {
	cases := []struct {
		in   Title
		want string
	}{
		{Title{Namespace: NSMain, Key: "Main_Page"}, "Main Page"},
		{Title{Namespace: NSTalk, Key: "Main_Page"}, "Talk:Main Page"},
		{Title{Namespace: NSUserTalk, Key: "Example"}, "User talk:Example"},
	}
	for _, c := range cases {
		if got := c.in.Prefixed(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestParse_RoundTripsThroughPrefixed(t *testing.T) {
	orig, err := Parse("Help talk:How to edit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := Parse(orig.Prefixed())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != orig {
		t.Fatalf("expected %v, got %v", orig, again)
	}
}

func TestMake_NegativeNamespace(t *testing.T) {
	if _, err := Make(-1, "Special_Page"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestIsTalk(t *testing.T) {
	talk := Title{Namespace: NSCategoryTalk, Key: "X"}
	if !talk.IsTalk() {
		t.Fatalf("expected talk namespace %d to be talk", talk.Namespace)
	}
	if talk.Subject().IsTalk() {
		t.Fatalf("subject of a talk title must not be talk")
	}
}
