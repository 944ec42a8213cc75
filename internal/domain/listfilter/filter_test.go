package listfilter

import "testing"

type item struct {
	name    string
	species string
	place   string
}

func TestApply_ANDAcrossPredicates(t *testing.T) {
	items := []item{
		{"Buddy", "Dog", "Barangay 1, Municipality A"},
		{"Luna", "Cat", "Barangay 2, Municipality A"},
		{"Max", "Dog", "Barangay 3, Municipality B"},
	}

	got := Apply(items,
		func(i item) bool { return MatchText("", i.name) },
		func(i item) bool { return MatchCategory("dog", i.species) },
		func(i item) bool { return MatchContains("municipality-b", i.place) },
	)
	if len(got) != 1 || got[0].name != "Max" {
		t.Fatalf("expected only Max, got %#v", got)
	}

	none := Apply(items, func(i item) bool { return MatchText("zzz", i.name) })
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}

	if n := Count(items, func(i item) bool { return MatchCategory(All, i.species) }); n != 3 {
		t.Fatalf("expected all 3 with 'all', got %d", n)
	}
}

func TestMatchers(t *testing.T) {
	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"text empty", MatchText("  "), true},
		{"text second field", MatchText("santos", "Buddy", "Maria Santos"), true},
		{"text miss", MatchText("rex", "Buddy", "Maria Santos"), false},
		{"category empty", MatchCategory("", "Cat"), true},
		{"category case", MatchCategory("CAT", "cat"), true},
		{"category hyphen", MatchCategory("up-to-date", "Up to date"), true},
		{"category miss", MatchCategory("dog", "Cat"), false},
		{"contains", MatchContains("mobile", "Mobile Clinic - Barangay 3"), true},
		{"contains miss", MatchContains("municipal", "Barangay Health Center 1"), false},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, tc.got, tc.want)
		}
	}
}
