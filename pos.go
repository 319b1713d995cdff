package klingon

// PartOfSpeech is the base part of speech of a dictionary entry.
type PartOfSpeech int

const (
	POSUnknown PartOfSpeech = iota
	POSNoun
	POSVerb
	POSAdverbial
	POSConjunction
	POSQuestion
	POSSentence
	POSExclamation
	POSSource
)

// posAbbreviations is matched in order against the base tag.
var posAbbreviations = []struct {
	abbr string
	pos  PartOfSpeech
}{
	{"n", POSNoun},
	{"v", POSVerb},
	{"adv", POSAdverbial},
	{"conj", POSConjunction},
	{"ques", POSQuestion},
	{"sen", POSSentence},
	{"excl", POSExclamation},
	{"src", POSSource},
}

// Abbreviation returns the tag used in part-of-speech strings, "???" when
// unknown.
func (p PartOfSpeech) Abbreviation() string {
	for _, a := range posAbbreviations {
		if a.pos == p {
			return a.abbr
		}
	}
	return "???"
}

func (p PartOfSpeech) String() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSVerb:
		return "verb"
	case POSAdverbial:
		return "adverbial"
	case POSConjunction:
		return "conjunction"
	case POSQuestion:
		return "question"
	case POSSentence:
		return "sentence"
	case POSExclamation:
		return "exclamation"
	case POSSource:
		return "source"
	default:
		return "unknown"
	}
}

// Transitivity of a verb.
type Transitivity int

const (
	TransitivityUnknown Transitivity = iota
	Transitive
	Intransitive
	Stative
	Ambitransitive
)

func (t Transitivity) String() string {
	switch t {
	case Transitive:
		return "transitive"
	case Intransitive:
		return "intransitive"
	case Stative:
		return "stative"
	case Ambitransitive:
		return "ambitransitive"
	default:
		return "unknown"
	}
}

// Description is the wording shown on a verb's entry page.
func (t Transitivity) Description() string {
	switch t {
	case Ambitransitive:
		return "both transitive and intransitive"
	case Intransitive:
		return "intransitive"
	case Stative:
		return "intransitive (state or quality)"
	case Transitive:
		return "transitive"
	default:
		return "unknown"
	}
}

// NounType refines a noun entry.
type NounType int

const (
	NounGeneral NounType = iota
	NounNumber
	NounName
	NounPronoun
)

func (n NounType) String() string {
	switch n {
	case NounNumber:
		return "number"
	case NounName:
		return "name"
	case NounPronoun:
		return "pronoun"
	default:
		return "general"
	}
}

// SentenceType categorises sentence entries.
type SentenceType int

const (
	SentencePhrase SentenceType = iota
	SentenceEmpireUnionDay
	SentenceCurseWarfare
	SentenceIdiom
	SentenceNentay
	SentenceProverb
	SentenceMilitaryCelebration
	SentenceRejection
	SentenceReplacementProverb
	SentenceSecrecyProverb
	SentenceToast
	SentenceLyrics
)

func (s SentenceType) String() string {
	switch s {
	case SentenceEmpireUnionDay:
		return "Empire Union Day"
	case SentenceCurseWarfare:
		return "curse warfare"
	case SentenceIdiom:
		return "idiom"
	case SentenceNentay:
		return "nentay"
	case SentenceProverb:
		return "proverb"
	case SentenceMilitaryCelebration:
		return "military celebration"
	case SentenceRejection:
		return "rejection"
	case SentenceReplacementProverb:
		return "replacement proverb"
	case SentenceSecrecyProverb:
		return "secrecy proverb"
	case SentenceToast:
		return "toast"
	case SentenceLyrics:
		return "lyrics"
	default:
		return "phrase"
	}
}

// Category is a set of semantic category flags.
type Category uint16

const (
	CategoryAnimal Category = 1 << iota
	CategoryArchaic
	CategoryBeingCapableOfLanguage
	CategoryBodyPart
	CategoryDerivative
	CategoryRegional
	CategoryFoodRelated
	CategoryInvective
	CategoryPlaceName
	CategoryPrefix
	CategorySlang
	CategorySuffix
	CategoryWeaponsRelated
)

// Has reports whether every flag in c2 is set in c.
func (c Category) Has(c2 Category) bool { return c&c2 == c2 }

// Meta is a set of editorial flags.
type Meta uint8

const (
	MetaAlternativeSpelling Meta = 1 << iota
	MetaFictional
	MetaHypothetical
	MetaExtendedCanon
	MetaDoNotLink
)

// Has reports whether every flag in m2 is set in m.
func (m Meta) Has(m2 Meta) bool { return m&m2 == m2 }

var transitivityTokens = map[string]Transitivity{
	"ambi": Ambitransitive,
	"i":    Intransitive,
	"is":   Stative,
	"t":    Transitive,
}

var nounTypeTokens = map[string]NounType{
	"name": NounName,
	"num":  NounNumber,
	"pro":  NounPronoun,
}

var sentenceTypeTokens = map[string]SentenceType{
	"eu":    SentenceEmpireUnionDay,
	"mv":    SentenceCurseWarfare,
	"idiom": SentenceIdiom,
	"nt":    SentenceNentay,
	"phr":   SentencePhrase,
	"prov":  SentenceProverb,
	"Ql":    SentenceMilitaryCelebration,
	"rej":   SentenceRejection,
	"rp":    SentenceReplacementProverb,
	"sp":    SentenceSecrecyProverb,
	"toast": SentenceToast,
	"lyr":   SentenceLyrics,
}

var categoryTokens = map[string]Category{
	"anim":    CategoryAnimal,
	"archaic": CategoryArchaic,
	"being":   CategoryBeingCapableOfLanguage,
	"body":    CategoryBodyPart,
	"deriv":   CategoryDerivative,
	"reg":     CategoryRegional,
	"food":    CategoryFoodRelated,
	"inv":     CategoryInvective,
	"place":   CategoryPlaceName,
	"pref":    CategoryPrefix,
	"slang":   CategorySlang,
	"suff":    CategorySuffix,
	"weap":    CategoryWeaponsRelated,
}

var metaTokens = map[string]Meta{
	"alt":    MetaAlternativeSpelling,
	"fic":    MetaFictional,
	"hyp":    MetaHypothetical,
	"extcan": MetaExtendedCanon,
	"nolink": MetaDoNotLink,
}

var homophoneTokens = map[string]int{"1": 1, "2": 2, "3": 3, "4": 4}
