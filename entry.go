package klingon

import (
	"strings"
)

// ParseMode selects the defaults used when parsing an entry descriptor.
type ParseMode int

const (
	// QueryMode parses "name[:pos[:attrs]]" typed or linked by a user; the
	// homophone index is left unspecified.
	QueryMode ParseMode = iota
	// StoredMode parses the part-of-speech column of a stored record; the
	// homophone index defaults to 1.
	StoredMode
)

// HomophoneUnspecified is the homophone index of a query that does not
// ask for a particular homophone.
const HomophoneUnspecified = 0

// Record is a dictionary entry as persisted by a Store.
type Record struct {
	ID           int64  `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	PartOfSpeech string `json:"part_of_speech" yaml:"part_of_speech"`
	Definition   string `json:"definition" yaml:"definition"`
	Synonyms     string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Antonyms     string `json:"antonyms,omitempty" yaml:"antonyms,omitempty"`
	SeeAlso      string `json:"see_also,omitempty" yaml:"see_also,omitempty"`
	Notes        string `json:"notes,omitempty" yaml:"notes,omitempty"`
	HiddenNotes  string `json:"hidden_notes,omitempty" yaml:"hidden_notes,omitempty"`
	Components   string `json:"components,omitempty" yaml:"components,omitempty"`
	Examples     string `json:"examples,omitempty" yaml:"examples,omitempty"`
	SearchTags   string `json:"search_tags,omitempty" yaml:"search_tags,omitempty"`
	Source       string `json:"source,omitempty" yaml:"source,omitempty"`
}

// EntryDescriptor is the structured reading of an entry's name and
// part-of-speech metadata. It is built once and not modified afterwards.
type EntryDescriptor struct {
	// Name is the entry name, e.g. "Qong".
	Name string
	// RawPartOfSpeech is the unparsed "base:attr,attr" string.
	RawPartOfSpeech string
	// PartOfSpeech is the parsed base part of speech.
	PartOfSpeech PartOfSpeech

	Transitivity Transitivity
	NounType     NounType
	SentenceType SentenceType
	Categories   Category
	Meta         Meta

	// InherentPlural marks a noun that is plural without a suffix.
	InherentPlural bool
	// SingularOfInherentPlural marks the singular of such a noun.
	SingularOfInherentPlural bool
	// Plural marks a noun entry that already carries a plural suffix.
	Plural bool

	// Homophone distinguishes entries sharing name and part of speech
	// (1-4), or is HomophoneUnspecified for a query.
	Homophone int
	// SourceURL is set only for source entries.
	SourceURL string
}

// Parse reads raw in the given mode. In QueryMode raw is
// "name[:pos[:attrs]]"; in StoredMode it is a part-of-speech column and
// the returned descriptor has no name. Unrecognised tokens are reported as
// diagnostics and otherwise ignored.
func Parse(raw string, mode ParseMode) (EntryDescriptor, []Diagnostic) {
	if mode == StoredMode {
		return parseDescriptor("", raw, 1)
	}
	name, pos := raw, ""
	if idx := strings.Index(raw, ":"); idx >= 0 {
		name, pos = raw[:idx], raw[idx+1:]
	}
	return parseDescriptor(name, pos, HomophoneUnspecified)
}

// ParseQuery is Parse(q, QueryMode).
func ParseQuery(q string) (EntryDescriptor, []Diagnostic) {
	return Parse(q, QueryMode)
}

// ParseRecord builds the descriptor of a stored record.
func ParseRecord(r Record) (EntryDescriptor, []Diagnostic) {
	return parseDescriptor(r.Name, r.PartOfSpeech, 1)
}

// parseDescriptor mirrors the metadata pass shared by both modes.
func parseDescriptor(name, pos string, homophone int) (EntryDescriptor, []Diagnostic) {
	e := EntryDescriptor{
		Name:            name,
		RawPartOfSpeech: pos,
		Homophone:       homophone,
	}
	var diags []Diagnostic

	base := pos
	var attrs []string
	if idx := strings.Index(pos, ":"); idx >= 0 {
		base = pos[:idx]
		attrs = strings.Split(pos[idx+1:], ",")
	}

	// An empty base is a plain search and is not reported.
	if base != "" {
		for _, a := range posAbbreviations {
			if base == a.abbr {
				e.PartOfSpeech = a.pos
				break
			}
		}
		if e.PartOfSpeech == POSUnknown {
			diags = append(diags, Diagnostic{Kind: DiagUnknownPartOfSpeech, Entry: name, Token: pos})
		}
	}

	for _, attr := range attrs {
		if !e.applyAttribute(attr) {
			diags = append(diags, Diagnostic{Kind: DiagUnknownAttribute, Entry: name, Token: attr})
		}
	}
	return e, diags
}

// applyAttribute records one attribute token and reports whether it was
// recognised.
func (e *EntryDescriptor) applyAttribute(attr string) bool {
	if attr == "" {
		return false
	}
	if t, ok := transitivityTokens[attr]; ok {
		e.Transitivity = t
		return true
	}
	if n, ok := nounTypeTokens[attr]; ok {
		e.NounType = n
		return true
	}
	if s, ok := sentenceTypeTokens[attr]; ok {
		e.SentenceType = s
		return true
	}
	if c, ok := categoryTokens[attr]; ok {
		e.Categories |= c
		return true
	}
	if m, ok := metaTokens[attr]; ok {
		e.Meta |= m
		return true
	}
	if h, ok := homophoneTokens[attr]; ok {
		e.Homophone = h
		return true
	}
	switch attr {
	case "inhpl":
		e.InherentPlural = true
		return true
	case "inhps":
		e.SingularOfInherentPlural = true
		return true
	case "plural":
		e.Plural = true
		return true
	}
	// For a source the remaining attribute is its URL.
	if e.PartOfSpeech == POSSource {
		e.SourceURL = attr
		return true
	}
	return false
}

// IsNoun reports whether the base part of speech is noun.
func (e EntryDescriptor) IsNoun() bool { return e.PartOfSpeech == POSNoun }

// IsVerb reports whether the base part of speech is verb.
func (e EntryDescriptor) IsVerb() bool { return e.PartOfSpeech == POSVerb }

// IsSentence reports whether the entry is a sentence or phrase.
func (e EntryDescriptor) IsSentence() bool { return e.PartOfSpeech == POSSentence }

// IsSource reports whether the entry describes a canon source.
func (e EntryDescriptor) IsSource() bool { return e.PartOfSpeech == POSSource }

// IsPronoun reports whether the entry is a pronoun noun.
func (e EntryDescriptor) IsPronoun() bool { return e.IsNoun() && e.NounType == NounPronoun }

// IsName reports whether the entry is a proper name.
func (e EntryDescriptor) IsName() bool { return e.IsNoun() && e.NounType == NounName }

// IsNumber reports whether the entry is a number noun.
func (e EntryDescriptor) IsNumber() bool { return e.IsNoun() && e.NounType == NounNumber }

// IsArchaic reports whether the entry carries the archaic marker.
func (e EntryDescriptor) IsArchaic() bool { return e.Categories.Has(CategoryArchaic) }

// IsRegional reports whether the entry carries the regional marker.
func (e EntryDescriptor) IsRegional() bool { return e.Categories.Has(CategoryRegional) }

// IsSlang reports whether the entry carries the slang marker.
func (e EntryDescriptor) IsSlang() bool { return e.Categories.Has(CategorySlang) }

// IsIndented reports whether the entry is an affix, which result lists
// indent under their stem.
func (e EntryDescriptor) IsIndented() bool {
	return e.Categories&(CategoryPrefix|CategorySuffix) != 0
}

// SpecificPartOfSpeech returns the base abbreviation, refined to "num",
// "name" or "pro" for those noun subtypes.
func (e EntryDescriptor) SpecificPartOfSpeech() string {
	if e.IsNoun() {
		switch e.NounType {
		case NounNumber:
			return "num"
		case NounName:
			return "name"
		case NounPronoun:
			return "pro"
		}
	}
	return e.PartOfSpeech.Abbreviation()
}

// FormattedEntryName returns the name with its usage markers, e.g.
// "?Qong (archaic, slang)". Hypothetical and extended-canon entries are
// flagged with a leading "?".
func (e EntryDescriptor) FormattedEntryName() string {
	var markers []string
	if e.IsArchaic() {
		markers = append(markers, "archaic")
	}
	if e.IsRegional() {
		markers = append(markers, "regional")
	}
	if e.IsSlang() {
		markers = append(markers, "slang")
	}
	name := e.Name
	if len(markers) > 0 {
		name += " (" + strings.Join(markers, ", ") + ")"
	}
	if e.Meta.Has(MetaHypothetical) || e.Meta.Has(MetaExtendedCanon) {
		name = "?" + name
	}
	return name
}

// BracketedPartOfSpeech returns " (v)" style text used after linked
// entries, or "" for entries whose part of speech is not shown.
func (e EntryDescriptor) BracketedPartOfSpeech() string {
	switch e.PartOfSpeech {
	case POSSentence, POSExclamation, POSSource, POSUnknown:
		return ""
	}
	if e.IsName() {
		return ""
	}
	return " (" + e.SpecificPartOfSpeech() + ")"
}
