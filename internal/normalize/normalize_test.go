package normalize

import "testing"

func assertTerms(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d terms %v, want %d terms %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("term %d: got %q, want %q (full: got=%v want=%v)", i, got[i], want[i], got, want)
		}
	}
}

func TestTermsS1HelloWorld(t *testing.T) {
	got := Terms("Hello, world! Hello.")
	assertTerms(t, got, []string{"hello", "world", "hello"})
}

func TestTermsS2Plurals(t *testing.T) {
	got := Terms("cats running")
	assertTerms(t, got, []string{"cat", "run"})

	got2 := Terms("running dogs")
	assertTerms(t, got2, []string{"run", "dog"})
}

func TestTermsS3AllPunctuation(t *testing.T) {
	got := Terms("--- !!! ,,,")
	if len(got) != 0 {
		t.Fatalf("expected no terms, got %v", got)
	}
}

func TestTermsS4RepeatedThe(t *testing.T) {
	got := Terms("The THE the.")
	assertTerms(t, got, []string{"the", "the", "the"})
}

func TestTermsPreservesOccurrenceOrderAndDuplicates(t *testing.T) {
	got := Terms("run runs running runner")
	if len(got) != 4 {
		t.Fatalf("expected 4 terms, got %v", got)
	}
}

func TestStripLeadingPunctuation(t *testing.T) {
	cases := map[string]string{
		"---hello": "hello",
		"hello":    "hello",
		"...":      "",
		"—word":    "word",
		"don't":    "don't",
	}
	for in, want := range cases {
		if got := stripLeadingPunctuation(in); got != want {
			t.Errorf("stripLeadingPunctuation(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTermsIdempotentOnNormalizedInput(t *testing.T) {
	first := Terms("running cats")
	joined := ""
	for i, term := range first {
		if i > 0 {
			joined += " "
		}
		joined += term
	}
	second := Terms(joined)
	assertTerms(t, second, first)
}
