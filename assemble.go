package klingon

import (
	"strings"
)

// Rovers returns the true rovers that follow slot s, hyphenated and in
// surface order.
func (w WordCandidate) Rovers(s Slot) []string {
	neg := w.negation == s && s != NoSlot
	emph := w.emphatic == s && s != NoSlot
	switch {
	case neg && emph && w.negationFirst:
		return []string{"-" + negationRover, "-" + emphaticRover}
	case neg && emph:
		return []string{"-" + emphaticRover, "-" + negationRover}
	case neg:
		return []string{"-" + negationRover}
	case emph:
		return []string{"-" + emphaticRover}
	}
	return nil
}

// NounSuffixes returns one entry per noun slot, innermost first: the
// hyphenated suffix, or "" when the slot is empty.
func (w WordCandidate) NounSuffixes() []string {
	return w.slotSuffixes(Noun)
}

// VerbSuffixes is NounSuffixes for the verb slots.
func (w WordCandidate) VerbSuffixes() []string {
	return w.slotSuffixes(Verb)
}

func (w WordCandidate) slotSuffixes(c WordClass) []string {
	order := slotOrder[c]
	out := make([]string, len(order))
	for i, s := range order {
		if w.suffixes[s] != 0 {
			out[i] = "-" + s.Literal(w.suffixes[s])
		}
	}
	return out
}

// DisplayPrefix returns the verb prefix with its hyphen, e.g. "bI-", or "".
func (w WordCandidate) DisplayPrefix() string {
	if w.prefix == 0 {
		return ""
	}
	return w.Prefix() + "-"
}

// DisplaySuffixes returns every attached suffix and rover, hyphenated, in
// surface order. Verb suffixes come first since a nominalised verb takes
// noun suffixes after them; a rover follows the suffix of the slot it
// was recorded at.
func (w WordCandidate) DisplaySuffixes() []string {
	var out []string
	for _, s := range slotOrder[Verb] {
		if w.suffixes[s] != 0 {
			out = append(out, "-"+s.Literal(w.suffixes[s]))
		}
		out = append(out, w.Rovers(s)...)
	}
	for _, s := range slotOrder[Noun] {
		if w.suffixes[s] != 0 {
			out = append(out, "-"+s.Literal(w.suffixes[s]))
		}
	}
	return out
}

// Surface reassembles the form the candidate was decomposed from.
func (w WordCandidate) Surface() string {
	var b strings.Builder
	b.WriteString(w.Prefix())
	b.WriteString(w.stem)
	for _, s := range w.DisplaySuffixes() {
		b.WriteString(strings.TrimPrefix(s, "-"))
	}
	return b.String()
}

// Display renders the analysis as "bI- + Qong + -choH + -be'".
func (w WordCandidate) Display() string {
	parts := make([]string, 0, 2+len(w.suffixes))
	if p := w.DisplayPrefix(); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, w.stem)
	parts = append(parts, w.DisplaySuffixes()...)
	return strings.Join(parts, " + ")
}

func (w WordCandidate) String() string {
	return w.Display() + " (" + w.class.Tag() + ")"
}
