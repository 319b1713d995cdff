package klingon

import (
	"errors"
	"testing"
)

func TestSlotInventories(t *testing.T) {
	if got := SlotCount(Noun); got != 5 {
		t.Errorf("SlotCount(Noun) = %d, want 5", got)
	}
	if got := SlotCount(Verb); got != 11 {
		t.Errorf("SlotCount(Verb) = %d, want 11", got)
	}
	for _, c := range []WordClass{Noun, Verb} {
		for i := 0; i < SlotCount(c); i++ {
			lits := SuffixLiterals(c, i)
			if len(lits) < 2 || lits[0] != "" {
				t.Errorf("SuffixLiterals(%v, %d) = %q", c, i, lits)
			}
		}
	}
	if got := SuffixLiterals(Noun, 1)[1]; got != "pu'" {
		t.Errorf("noun type 2 literal 1 = %q, want pu'", got)
	}
	if got := SuffixLiterals(Verb, 0); len(got) != 2 || got[1] != "Ha'" {
		t.Errorf("first verb slot = %q, want [\"\" Ha']", got)
	}
	if got := SuffixLiterals(Noun, 5); got != nil {
		t.Errorf("SuffixLiterals(Noun, 5) = %q, want nil", got)
	}
	if p := VerbPrefixes(); len(p) != 29 || p[0] != "" || p[28] != "yI" {
		t.Errorf("VerbPrefixes() = %q", p)
	}
}

func TestInventoriesAreCopies(t *testing.T) {
	lits := SuffixLiterals(Noun, 1)
	lits[1] = "xxx"
	if SuffixLiterals(Noun, 1)[1] != "pu'" {
		t.Error("SuffixLiterals aliases the table")
	}
	p := VerbPrefixes()
	p[1] = "xxx"
	if VerbPrefixes()[1] != "bI" {
		t.Error("VerbPrefixes aliases the table")
	}
	s := Slots(Verb)
	s[0] = NounType1
	if Slots(Verb)[0] != VerbUndo {
		t.Error("Slots aliases the table")
	}
}

func TestSlotString(t *testing.T) {
	tests := []struct {
		slot Slot
		want string
	}{
		{NounType1, "n1"},
		{NounType5, "n5"},
		{VerbUndo, "v:undo"},
		{VerbType1, "v1"},
		{VerbType8, "v8"},
		{VerbRefusal, "v:refusal"},
		{VerbType9, "v9"},
		{NoSlot, "none"},
	}
	for _, tt := range tests {
		if got := tt.slot.String(); got != tt.want {
			t.Errorf("Slot(%d).String() = %q, want %q", int(tt.slot), got, tt.want)
		}
	}
	if VerbType4.Literal(1) != "moH" || VerbType4.Literal(9) != "" {
		t.Errorf("VerbType4.Literal = %q, %q", VerbType4.Literal(1), VerbType4.Literal(9))
	}
	if NounType2.Name() != "plural" || NounType2.Class() != Noun {
		t.Errorf("NounType2 = %s %v", NounType2.Name(), NounType2.Class())
	}
}

func TestParseWordClass(t *testing.T) {
	tests := []struct {
		in   string
		want WordClass
	}{
		{"n", Noun},
		{"noun", Noun},
		{"v", Verb},
		{"verb", Verb},
	}
	for _, tt := range tests {
		got, err := ParseWordClass(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseWordClass(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseWordClass("adv"); !errors.Is(err, ErrUnsupportedWordClass) {
		t.Errorf("ParseWordClass(adv) error = %v", err)
	}
	if Noun.Tag() != "n" || Verb.String() != "verb" || WordClass('x').Valid() {
		t.Error("WordClass accessors disagree")
	}
}
