package klingon

import "fmt"

// WordClass is the grammatical class a surface form is analysed as.
type WordClass rune

const (
	Noun WordClass = 'n'
	Verb WordClass = 'v'
)

// Tag returns the part-of-speech abbreviation used in filter strings.
func (c WordClass) Tag() string {
	switch c {
	case Noun:
		return "n"
	case Verb:
		return "v"
	default:
		return ""
	}
}

func (c WordClass) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	default:
		return fmt.Sprintf("WordClass(%q)", rune(c))
	}
}

// Valid reports whether c is a class the decomposition engine supports.
func (c WordClass) Valid() bool {
	return c == Noun || c == Verb
}

// ParseWordClass accepts "n"/"noun" and "v"/"verb".
func ParseWordClass(s string) (WordClass, error) {
	switch s {
	case "n", "noun":
		return Noun, nil
	case "v", "verb":
		return Verb, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedWordClass, s)
	}
}

// Slot identifies one suffix category. Slots of both classes share one
// closed enumeration so a candidate can carry noun and verb suffixes at
// once (a nominalised verb keeps its verb suffixes).
type Slot int

const (
	NounType1 Slot = iota
	NounType2
	NounType3
	NounType4
	NounType5
	VerbUndo
	VerbType1
	VerbType2
	VerbType3
	VerbType4
	VerbType5
	VerbType6
	VerbType7
	VerbType8
	VerbRefusal
	VerbType9

	slotCount
)

// NoSlot marks a rover that was not attached.
const NoSlot Slot = -1

// AffixSlot is the literal inventory of one affix category.
// Literals[0] is always "" and stands for "absent".
type AffixSlot struct {
	// Name is the grammatical category, e.g. "plural".
	Name string
	// Class is the word class the slot belongs to.
	Class WordClass
	// Literals holds the affixes in matching order.
	Literals []string
}

// suffixTable maps each slot to its inventory.
var suffixTable = map[Slot]AffixSlot{
	NounType1: {"augmentative/diminutive", Noun, []string{"", "'a'", "Hom", "oy"}},
	NounType2: {"plural", Noun, []string{"", "pu'", "Du'", "mey"}},
	NounType3: {"qualification", Noun, []string{"", "qoq", "Hey", "na'"}},
	NounType4: {"possession/specification", Noun, []string{
		"", "wIj", "wI'", "maj", "ma'", "lIj", "lI'", "raj", "ra'", "Daj", "chaj", "vam", "vetlh",
	}},
	NounType5: {"syntactic marker", Noun, []string{"", "Daq", "vo'", "mo'", "vaD", "'e'"}},

	// {-Ha'} always occurs immediately after the verb.
	VerbUndo:  {"undo", Verb, []string{"", "Ha'"}},
	VerbType1: {"oneself/one another", Verb, []string{"", "'egh", "chuq"}},
	VerbType2: {"volition/predisposition", Verb, []string{"", "nIS", "qang", "rup", "beH", "vIp"}},
	VerbType3: {"change", Verb, []string{"", "choH", "qa'"}},
	VerbType4: {"cause", Verb, []string{"", "moH"}},
	VerbType5: {"indefinite subject/ability", Verb, []string{"", "lu'", "laH"}},
	VerbType6: {"qualification", Verb, []string{"", "chu'", "bej", "ba'", "law'"}},
	VerbType7: {"aspect", Verb, []string{"", "pu'", "ta'", "taH", "lI'"}},
	VerbType8: {"honorific", Verb, []string{"", "neS"}},
	// {-Qo'} always occurs last, unless followed by a type 9 suffix.
	VerbRefusal: {"refusal", Verb, []string{"", "Qo'"}},
	VerbType9: {"syntactic marker", Verb, []string{
		"", "DI'", "chugh", "pa'", "vIS", "mo'", "bogh", "meH", "'a'", "jaj", "wI'", "ghach",
	}},
}

// slotOrder lists each class's slots from the stem outwards.
var slotOrder = map[WordClass][]Slot{
	Noun: {NounType1, NounType2, NounType3, NounType4, NounType5},
	Verb: {
		VerbUndo, VerbType1, VerbType2, VerbType3, VerbType4,
		VerbType5, VerbType6, VerbType7, VerbType8, VerbRefusal, VerbType9,
	},
}

var verbPrefixes = AffixSlot{
	Name:  "pronominal prefix",
	Class: Verb,
	Literals: []string{
		"", "bI", "bo", "che", "cho", "Da", "DI", "Du",
		"gho", "HI", "jI", "ju", "lI", "lu", "ma", "mu",
		"nI", "nu", "pe", "pI", "qa", "re",
		"Sa", "Su", "tI", "tu", "vI", "wI", "yI",
	},
}

// The two true rovers, which may follow any verb suffix slot.
const (
	negationRover = "be'"
	emphaticRover = "qu'"
)

// nominalizers are the verb suffixes that turn a verb into a noun.
var nominalizers = []string{"ghach", "wI'"}

// Slots returns the slots of class c from the stem outwards.
func Slots(c WordClass) []Slot {
	return append([]Slot(nil), slotOrder[c]...)
}

// SlotCount returns the number of suffix slots of class c.
func SlotCount(c WordClass) int {
	return len(slotOrder[c])
}

// SuffixLiterals returns the inventory of the i-th slot (0 = nearest the
// stem) of class c, or nil if there is no such slot.
func SuffixLiterals(c WordClass, i int) []string {
	order := slotOrder[c]
	if i < 0 || i >= len(order) {
		return nil
	}
	return order[i].Literals()
}

// VerbPrefixes returns the verb prefix inventory; index 0 is "".
func VerbPrefixes() []string {
	return append([]string(nil), verbPrefixes.Literals...)
}

// Literals returns a copy of the slot's inventory.
func (s Slot) Literals() []string {
	return append([]string(nil), suffixTable[s].Literals...)
}

// Literal returns the affix at index i, or "" when i is out of range.
func (s Slot) Literal(i int) string {
	lits := suffixTable[s].Literals
	if i < 0 || i >= len(lits) {
		return ""
	}
	return lits[i]
}

// Name returns the slot's grammatical category.
func (s Slot) Name() string {
	return suffixTable[s].Name
}

// Class returns the word class the slot belongs to.
func (s Slot) Class() WordClass {
	return suffixTable[s].Class
}

func (s Slot) String() string {
	switch {
	case s == NoSlot:
		return "none"
	case s == VerbUndo:
		return "v:undo"
	case s == VerbRefusal:
		return "v:refusal"
	case s >= NounType1 && s <= NounType5:
		return fmt.Sprintf("n%d", int(s-NounType1)+1)
	case s >= VerbType1 && s <= VerbType8:
		return fmt.Sprintf("v%d", int(s-VerbType1)+1)
	case s == VerbType9:
		return "v9"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}
