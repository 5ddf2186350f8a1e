package intro

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Triggers are the boilerplate phrases that mark an intro for replacement.
// Apostrophes are written as ASCII; matching folds the typographic variants.
var Triggers = []string{
	"Haqiqat shuki",
	"Bir misolni ko'rib chiqamiz",
}

var apostropheFolder = strings.NewReplacer(
	"\u2018", "'", // left single quotation mark
	"\u2019", "'", // right single quotation mark
	"\u02bb", "'", // modifier letter turned comma
	"\u02bc", "'", // modifier letter apostrophe
	"`", "'",
)

// foldText normalizes s to NFC and folds apostrophe variants to '.
func foldText(s string) string {
	return apostropheFolder.Replace(norm.NFC.String(s))
}

// ContainsTrigger reports whether text contains any trigger phrase.
func ContainsTrigger(text string) bool {
	folded := foldText(text)
	for _, t := range Triggers {
		if strings.Contains(folded, foldText(t)) {
			return true
		}
	}
	return false
}
