package klingon

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// apostropheReplacer folds the apostrophe look-alikes that keyboards and
// word processors produce into the ASCII apostrophe, which is a letter
// (the glottal stop) in Klingon spelling.
var apostropheReplacer = strings.NewReplacer(
	"’", "'", // ’ right single quotation mark
	"‘", "'", // ‘ left single quotation mark
	"ʼ", "'", // ʼ modifier letter apostrophe
	"´", "'", // ´ acute accent
	"`", "'",
)

// NormalizeQuery prepares user input for lookup: NFC composition,
// apostrophe folding and surrounding space removal. Case is significant
// in Klingon spelling and is preserved.
func NormalizeQuery(s string) string {
	s = norm.NFC.String(s)
	s = apostropheReplacer.Replace(s)
	return strings.TrimSpace(s)
}
