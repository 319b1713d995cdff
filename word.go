package klingon

import "strings"

// WordCandidate is one way of reading a surface form as a stem plus
// affixes. It is a value type: every stripping step returns a new
// candidate and leaves its receiver untouched, so sibling branches of the
// decomposition never share state.
type WordCandidate struct {
	// stem is the part not yet explained by an affix.
	stem string
	// class is the word class the stem is analysed as.
	class WordClass
	// cursor counts the slots of class still to examine; it only decreases.
	cursor int
	// prefix indexes verbPrefixes.Literals (0 = none).
	prefix int
	// suffixes indexes each slot's literals (0 = absent).
	suffixes [slotCount]int
	// negation and emphatic are the slots the true rovers follow, or NoSlot.
	negation Slot
	emphatic Slot
	// negationFirst is set when both rovers share a slot and {-be'} comes
	// before {-qu'} on the surface.
	negationFirst bool
}

func newCandidate(surface string, class WordClass) WordCandidate {
	return WordCandidate{
		stem:     surface,
		class:    class,
		cursor:   len(slotOrder[class]),
		negation: NoSlot,
		emphatic: NoSlot,
	}
}

// Stem returns the unparsed remainder.
func (w WordCandidate) Stem() string { return w.stem }

// Class returns the word class of the stem.
func (w WordCandidate) Class() WordClass { return w.class }

// Cursor returns the number of slots still to be examined.
func (w WordCandidate) Cursor() int { return w.cursor }

// Prefix returns the stripped verb prefix literal, or "".
func (w WordCandidate) Prefix() string { return verbPrefixes.Literals[w.prefix] }

// PrefixIndex returns the verb prefix index (0 = none).
func (w WordCandidate) PrefixIndex() int { return w.prefix }

// SuffixIndex returns the chosen index at slot s (0 = absent).
func (w WordCandidate) SuffixIndex(s Slot) int {
	if s < 0 || s >= slotCount {
		return 0
	}
	return w.suffixes[s]
}

// Suffix returns the literal chosen at slot s, or "".
func (w WordCandidate) Suffix(s Slot) string {
	return s.Literal(w.SuffixIndex(s))
}

// NegationSlot returns the slot {-be'} follows, or NoSlot.
func (w WordCandidate) NegationSlot() Slot { return w.negation }

// EmphaticSlot returns the slot {-qu'} follows, or NoSlot.
func (w WordCandidate) EmphaticSlot() Slot { return w.emphatic }

// NegationBeforeEmphatic reports the surface order of the rovers when both
// follow the same slot.
func (w WordCandidate) NegationBeforeEmphatic() bool { return w.negationFirst }

// IsBare reports whether no prefix, rover or suffix was recorded, i.e. the
// stem is the whole surface form.
func (w WordCandidate) IsBare() bool {
	if w.prefix != 0 {
		return false
	}
	if w.negation != NoSlot || w.emphatic != NoSlot {
		return false
	}
	for _, idx := range w.suffixes {
		if idx != 0 {
			return false
		}
	}
	return true
}

// FilterString returns the key handed to the dictionary store: the stem
// alone for a bare word (any part of speech), otherwise "stem:n" or
// "stem:v".
func (w WordCandidate) FilterString() string {
	if w.IsBare() {
		return w.stem
	}
	return w.stem + ":" + w.class.Tag()
}

func (w WordCandidate) hasNounSuffix() bool {
	for _, s := range slotOrder[Noun] {
		if w.suffixes[s] != 0 {
			return true
		}
	}
	return false
}

// stripPrefix returns a branch with the first matching verb prefix removed.
func (w WordCandidate) stripPrefix() (WordCandidate, bool) {
	if w.class != Verb {
		return WordCandidate{}, false
	}
	for i := 1; i < len(verbPrefixes.Literals); i++ {
		p := verbPrefixes.Literals[i]
		if !strings.HasPrefix(w.stem, p) || len(p) == len(w.stem) {
			continue
		}
		branch := w
		branch.stem = w.stem[len(p):]
		branch.prefix = i
		return branch, true
	}
	return WordCandidate{}, false
}

// stripRovers removes the true rovers from the end of the stem and records
// them at slot s. A rover is stripped at most once per candidate and never
// when it would empty the stem.
func (w WordCandidate) stripRovers(s Slot) WordCandidate {
	if w.negation == NoSlot && w.emphatic == NoSlot {
		if tail, ok := trimAffix(w.stem, negationRover+emphaticRover); ok {
			w.stem = tail
			w.negation, w.emphatic = s, s
			w.negationFirst = true
			return w
		}
		if tail, ok := trimAffix(w.stem, emphaticRover+negationRover); ok {
			w.stem = tail
			w.negation, w.emphatic = s, s
			w.negationFirst = false
			return w
		}
	}
	if w.negation == NoSlot {
		if tail, ok := trimAffix(w.stem, negationRover); ok {
			w.stem = tail
			w.negation = s
			return w
		}
	}
	if w.emphatic == NoSlot {
		if tail, ok := trimAffix(w.stem, emphaticRover); ok {
			w.stem = tail
			w.emphatic = s
		}
	}
	return w
}

// stripSuffix examines the next slot. next is w moved past that slot
// (with any rovers at that slot already stripped); branch additionally has
// the slot's first matching suffix removed and is only valid when ok.
func (w WordCandidate) stripSuffix() (next, branch WordCandidate, ok bool) {
	if w.cursor == 0 {
		return w, WordCandidate{}, false
	}
	next = w
	next.cursor--
	slot := slotOrder[next.class][next.cursor]
	if next.class == Verb {
		next = next.stripRovers(slot)
	}
	lits := suffixTable[slot].Literals
	for i := 1; i < len(lits); i++ {
		tail, found := trimAffix(next.stem, lits[i])
		if !found {
			continue
		}
		branch = next
		branch.stem = tail
		branch.suffixes[slot] = i
		return next, branch, true
	}
	return next, WordCandidate{}, false
}

// verbRootIfNoun re-reads a fully stripped noun whose stem ends in a
// nominalizer as a verb, so the verb suffixes can be stripped too. Bare
// nouns are skipped since they are analysed as verbs separately.
func (w WordCandidate) verbRootIfNoun() (WordCandidate, bool) {
	if w.class != Noun || w.cursor != 0 || !w.hasNounSuffix() {
		return WordCandidate{}, false
	}
	for _, n := range nominalizers {
		if strings.HasSuffix(w.stem, n) {
			v := w
			v.class = Verb
			v.cursor = len(slotOrder[Verb])
			return v, true
		}
	}
	return WordCandidate{}, false
}

// trimAffix removes suffix from s when doing so leaves something behind.
func trimAffix(s, suffix string) (string, bool) {
	if len(suffix) >= len(s) || !strings.HasSuffix(s, suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}
