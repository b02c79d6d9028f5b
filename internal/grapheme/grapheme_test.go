package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	if got, want := Slice(text, 1, 3), "e\u0301"+family; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
}

func TestCut(t *testing.T) {
	text := "e\u0301xy"
	cases := []struct {
		i             int
		before, after string
	}{
		{i: 0, before: "", after: text},
		{i: 1, before: "e\u0301", after: "xy"},
		{i: 3, before: text, after: ""},
		{i: 9, before: text, after: ""},
	}
	for _, tc := range cases {
		b, a := Cut(text, tc.i)
		if b != tc.before || a != tc.after {
			t.Fatalf("Cut(%d): got (%q, %q), want (%q, %q)", tc.i, b, a, tc.before, tc.after)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp("ab", -1); got != 0 {
		t.Fatalf("clamp low: got %d, want 0", got)
	}
	if got := Clamp("ab", 7); got != 2 {
		t.Fatalf("clamp high: got %d, want 2", got)
	}
}
