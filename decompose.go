package klingon

// Decompose enumerates every reading of surface as a stem of class plus
// affixes. The result is in depth-first order: the prefix-stripped branch
// before the unprefixed one and, at each slot, the suffix-stripped branch
// before the continuation that leaves the slot empty. Callers display and
// query candidates in this order.
//
// The function keeps no state between calls and is safe for concurrent use.
func Decompose(surface string, class WordClass) ([]WordCandidate, error) {
	if surface == "" {
		return nil, ErrEmptySurface
	}
	if !class.Valid() {
		return nil, ErrUnsupportedWordClass
	}

	var out []WordCandidate
	w := newCandidate(surface, class)
	if p, ok := w.stripPrefix(); ok {
		out = stripSuffixes(p, out)
	}
	return stripSuffixes(w, out), nil
}

// DecomposeAll analyses surface as a noun and then as a verb.
func DecomposeAll(surface string) ([]WordCandidate, error) {
	nouns, err := Decompose(surface, Noun)
	if err != nil {
		return nil, err
	}
	verbs, err := Decompose(surface, Verb)
	if err != nil {
		return nil, err
	}
	return append(nouns, verbs...), nil
}

// stripSuffixes walks w's remaining slots, appending every completed
// candidate to out. Each call either consumes a slot or finishes a
// candidate, so the depth is bounded by the slot count (plus one verb
// re-entry for nominalised nouns).
func stripSuffixes(w WordCandidate, out []WordCandidate) []WordCandidate {
	if w.cursor == 0 {
		out = append(out, w)
		v, ok := w.verbRootIfNoun()
		if !ok {
			return out
		}
		w = v
	}

	next, branch, ok := w.stripSuffix()
	if ok {
		out = stripSuffixes(branch, out)
	}
	return stripSuffixes(next, out)
}
