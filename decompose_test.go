package klingon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func summarize(cands []WordCandidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.String()
	}
	return out
}

func TestDecomposeOrder(t *testing.T) {
	tests := []struct {
		surface string
		class   WordClass
		want    []string
	}{
		{"tlhIngan", Noun, []string{"tlhIngan (n)"}},
		{"tlhIngan", Verb, []string{"tlhIngan (v)"}},
		{"Qongpu'", Noun, []string{"Qong + -pu' (n)", "Qongpu' (n)"}},
		{"Qongpu'", Verb, []string{"Qong + -pu' (v)", "Qongpu' (v)"}},
		{"vaHchoH", Verb, []string{"vaH + -choH (v)", "vaHchoH (v)"}},
		{"bIQong", Verb, []string{"bI- + Qong (v)", "bIQong (v)"}},
		{"yIQongQo'", Verb, []string{
			"yI- + Qong + -Qo' (v)",
			"yI- + QongQo' (v)",
			"yIQong + -Qo' (v)",
			"yIQongQo' (v)",
		}},
		{"QongchoHbe'", Verb, []string{"Qong + -choH + -be' (v)", "QongchoH + -be' (v)"}},
		{"Qongbe'qu'", Verb, []string{"Qong + -be' + -qu' (v)"}},
		{"Qongqu'be'", Verb, []string{"Qong + -qu' + -be' (v)"}},
		// A nominalised verb is re-read as a verb once its noun suffixes are gone.
		{"HeghwI'pu'", Noun, []string{
			"HeghwI' + -pu' (n)",
			"Hegh + -wI' + -pu' (v)",
			"HeghwI' + -pu' (v)",
			"HeghwI'pu' (n)",
		}},
		{"QoyghachmeyvaD", Noun, []string{
			"Qoyghach + -mey + -vaD (n)",
			"Qoy + -ghach + -mey + -vaD (v)",
			"Qoyghach + -mey + -vaD (v)",
			"Qoyghachmey + -vaD (n)",
			"QoyghachmeyvaD (n)",
		}},
	}
	for _, tt := range tests {
		got, err := Decompose(tt.surface, tt.class)
		if err != nil {
			t.Fatalf("Decompose(%q, %v): %v", tt.surface, tt.class, err)
		}
		if diff := cmp.Diff(tt.want, summarize(got)); diff != "" {
			t.Errorf("Decompose(%q, %v) mismatch (-want +got):\n%s", tt.surface, tt.class, diff)
		}
	}
}

func TestDecomposeBareWord(t *testing.T) {
	for _, class := range []WordClass{Noun, Verb} {
		got, err := Decompose("tlhIngan", class)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 {
			t.Fatalf("Decompose(tlhIngan, %v) returned %d candidates, want 1", class, len(got))
		}
		c := got[0]
		if !c.IsBare() || c.Stem() != "tlhIngan" || c.FilterString() != "tlhIngan" {
			t.Errorf("bare candidate = %v (bare=%v, filter=%q)", c, c.IsBare(), c.FilterString())
		}
	}
}

func TestDecomposeVerbSuffixIndex(t *testing.T) {
	got, err := Decompose("vaHchoH", Verb)
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, c := range got {
		if c.Stem() != "vaH" {
			continue
		}
		found = true
		if lit := SuffixLiterals(Verb, 3)[c.SuffixIndex(VerbType3)]; lit != "choH" {
			t.Errorf("type 3 suffix = %q, want %q", lit, "choH")
		}
		if c.Suffix(VerbType3) != "choH" {
			t.Errorf("Suffix(VerbType3) = %q, want %q", c.Suffix(VerbType3), "choH")
		}
		if c.FilterString() != "vaH:v" {
			t.Errorf("FilterString() = %q, want %q", c.FilterString(), "vaH:v")
		}
	}
	if !found {
		t.Errorf("Decompose(vaHchoH) has no candidate with stem vaH: %v", summarize(got))
	}
}

func TestDecomposeRoverOrder(t *testing.T) {
	tests := []struct {
		surface            string
		negation, emphatic Slot
		negationFirst      bool
	}{
		{"Qongbe'qu'", VerbType9, VerbType9, true},
		{"Qongqu'be'", VerbType9, VerbType9, false},
		{"Qongbe'", VerbType9, NoSlot, false},
		{"Qongqu'", NoSlot, VerbType9, false},
	}
	for _, tt := range tests {
		got, err := Decompose(tt.surface, Verb)
		if err != nil {
			t.Fatal(err)
		}
		c := got[0]
		if c.Stem() != "Qong" {
			t.Fatalf("Decompose(%q)[0].Stem() = %q, want Qong", tt.surface, c.Stem())
		}
		if c.NegationSlot() != tt.negation || c.EmphaticSlot() != tt.emphatic {
			t.Errorf("%s: rovers at (%v, %v), want (%v, %v)", tt.surface,
				c.NegationSlot(), c.EmphaticSlot(), tt.negation, tt.emphatic)
		}
		if c.NegationBeforeEmphatic() != tt.negationFirst {
			t.Errorf("%s: NegationBeforeEmphatic() = %v, want %v", tt.surface, c.NegationBeforeEmphatic(), tt.negationFirst)
		}
	}
}

func TestDecomposeNounPlural(t *testing.T) {
	got, err := Decompose("Qongpu'", Noun)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Stem() != "Qong" || got[0].Suffix(NounType2) != "pu'" {
		t.Errorf("Decompose(Qongpu', Noun)[0] = %v", got[0])
	}
	if got[0].FilterString() != "Qong:n" {
		t.Errorf("FilterString() = %q, want %q", got[0].FilterString(), "Qong:n")
	}
}

func TestDecomposeNeverEmptiesStem(t *testing.T) {
	tests := []struct {
		surface string
		class   WordClass
	}{
		{"pu'", Noun},
		{"be'", Verb},
		{"bI", Verb},
		{"ghach", Verb},
	}
	for _, tt := range tests {
		got, err := Decompose(tt.surface, tt.class)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || !got[0].IsBare() {
			t.Errorf("Decompose(%q, %v) = %v, want only the bare word", tt.surface, tt.class, summarize(got))
		}
	}
}

func TestDecomposeReassembles(t *testing.T) {
	words := []string{
		"bIQongchoHbe'qu'", "HeghwI'pu'", "Qaghmey", "vavwIjDaq", "jIyajbe'",
		"Dayajqu'be'", "nuHmeyvetlhDaq", "ghoSmoHchugh", "yIQongQo'",
		"Qongbe'be'", "tlhIngan", "SuvwI'pu'vaD", "Qapla'", "yItlhutlh", "QoyghachmeyvaD",
	}
	for _, w := range words {
		cands, err := DecomposeAll(w)
		if err != nil {
			t.Fatal(err)
		}
		if len(cands) == 0 {
			t.Errorf("DecomposeAll(%q) returned nothing", w)
		}
		for _, c := range cands {
			if c.Stem() == "" {
				t.Errorf("DecomposeAll(%q) produced an empty stem: %v", w, c)
			}
			if got := c.Surface(); got != w {
				t.Errorf("%v.Surface() = %q, want %q", c, got, w)
			}
			if c.Cursor() != 0 {
				t.Errorf("%v finished with cursor %d", c, c.Cursor())
			}
		}
	}
}

func TestDecomposeDeterministic(t *testing.T) {
	first, _ := DecomposeAll("bIQongchoHbe'qu'")
	second, _ := DecomposeAll("bIQongchoHbe'qu'")
	if diff := cmp.Diff(summarize(first), summarize(second)); diff != "" {
		t.Errorf("DecomposeAll is not deterministic (-first +second):\n%s", diff)
	}
}

func TestDecomposeErrors(t *testing.T) {
	if _, err := Decompose("", Noun); !errors.Is(err, ErrEmptySurface) {
		t.Errorf("Decompose(\"\") error = %v, want ErrEmptySurface", err)
	}
	if _, err := Decompose("Qong", WordClass('x')); !errors.Is(err, ErrUnsupportedWordClass) {
		t.Errorf("Decompose(Qong, x) error = %v, want ErrUnsupportedWordClass", err)
	}
	if _, err := DecomposeAll(""); !errors.Is(err, ErrEmptySurface) {
		t.Errorf("DecomposeAll(\"\") error = %v, want ErrEmptySurface", err)
	}
}

func TestCandidateDisplay(t *testing.T) {
	got, err := Decompose("bIQongchoHbe'", Verb)
	if err != nil {
		t.Fatal(err)
	}
	c := got[0]
	if c.DisplayPrefix() != "bI-" {
		t.Errorf("DisplayPrefix() = %q, want %q", c.DisplayPrefix(), "bI-")
	}
	if diff := cmp.Diff([]string{"-choH", "-be'"}, c.DisplaySuffixes()); diff != "" {
		t.Errorf("DisplaySuffixes() mismatch (-want +got):\n%s", diff)
	}
	vs := c.VerbSuffixes()
	if len(vs) != SlotCount(Verb) || vs[3] != "-choH" || vs[0] != "" {
		t.Errorf("VerbSuffixes() = %q", vs)
	}
	if ns := c.NounSuffixes(); len(ns) != SlotCount(Noun) {
		t.Errorf("NounSuffixes() = %q", ns)
	}
	if c.IsBare() {
		t.Error("IsBare() = true for a prefixed candidate")
	}
}
