package klingon

// Satisfies reports whether candidate, a stored entry, answers query.
//
// A query with an unknown part of speech was typed into a search box and
// only needs the name to match. Otherwise the name and part of speech must
// match, except that a pronoun satisfies a verb query (pronouns act as the
// copula). A homophone index on the query must match, and any of the
// slang, regional, archaic, name and number markers on the query must be
// present on the candidate. Nothing else is compared.
func Satisfies(query, candidate EntryDescriptor) bool {
	if query.Name != candidate.Name {
		return false
	}
	if query.PartOfSpeech == POSUnknown {
		return true
	}
	copula := query.PartOfSpeech == POSVerb && candidate.IsPronoun()
	if !copula && query.PartOfSpeech != candidate.PartOfSpeech {
		return false
	}

	if query.Homophone != HomophoneUnspecified && query.Homophone != candidate.Homophone {
		return false
	}

	if query.IsSlang() && !candidate.IsSlang() {
		return false
	}
	if query.IsRegional() && !candidate.IsRegional() {
		return false
	}
	if query.IsArchaic() && !candidate.IsArchaic() {
		return false
	}
	if query.IsName() && !candidate.IsName() {
		return false
	}
	if query.IsNumber() && !candidate.IsNumber() {
		return false
	}
	return true
}
