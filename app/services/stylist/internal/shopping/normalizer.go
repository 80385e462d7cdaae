package shopping

import (
	"regexp"
	"strings"

	"AtelierAI/app/services/stylist/plan"
)

// genderTokens matches existing gender qualifiers and their trivial
// inflections so a description can be re-qualified from scratch.
var genderTokens = regexp.MustCompile(`(?i)\b(?:men|women|male|female|unisex)(?:'s|s)?\b`)

var spaceRuns = regexp.MustCompile(`\s+`)

type substitution struct {
	re   *regexp.Regexp
	repl string
}

func wholeWord(word, repl string) substitution {
	return substitution{
		re:   regexp.MustCompile(`(?i)\b` + word + `\b`),
		repl: repl,
	}
}

// Feminine-coded nouns and their masculine equivalents, applied for a male
// preference. The inverse table below applies for a female preference.
var maleSubstitutions = []substitution{
	wholeWord("blouse", "shirt"),
	wholeWord("dress", "suit"),
	wholeWord("skirt", "pants"),
	wholeWord("earrings", "watch"),
	wholeWord("necklace", "chain"),
	wholeWord("handbag", "bag"),
	wholeWord("purse", "wallet"),
	wholeWord("heels", "shoes"),
}

var femaleSubstitutions = []substitution{
	wholeWord("suit", "dress"),
	wholeWord("tie", "necklace"),
	wholeWord("suspenders", "belt"),
	wholeWord("cufflinks", "bracelet"),
}

var (
	genericAccessories = regexp.MustCompile(`(?i)\b(?:jewelry|accessories)\b`)
	feminineJewelry    = regexp.MustCompile(`(?i)\b(?:earrings|necklace)\b`)
)

// Normalize rewrites a garment description into a gender-aligned search
// phrase. It strips existing gender tokens, applies the whole-word
// substitution table for the preference, disambiguates generic accessory
// wording, and prefixes a gender qualifier plus the category name. The
// function is pure and idempotent: normalizing its own output yields the
// same phrase.
func Normalize(description, category, gender string) string {
	clean := genderTokens.ReplaceAllString(description, " ")

	switch gender {
	case plan.GenderMale:
		for _, s := range maleSubstitutions {
			clean = s.re.ReplaceAllString(clean, s.repl)
		}
	case plan.GenderFemale:
		for _, s := range femaleSubstitutions {
			clean = s.re.ReplaceAllString(clean, s.repl)
		}
	}

	if category == plan.SlotAccessories && gender != plan.GenderAny {
		if gender == plan.GenderMale {
			clean = genericAccessories.ReplaceAllString(clean, "men's accessories")
			clean = feminineJewelry.ReplaceAllString(clean, "watch")
		} else {
			clean = genericAccessories.ReplaceAllString(clean, "women's accessories")
		}
	}

	terms := make([]string, 0, 3)
	switch gender {
	case plan.GenderMale:
		terms = append(terms, "men's")
	case plan.GenderFemale:
		terms = append(terms, "women's")
	}
	clean = strings.TrimSpace(spaceRuns.ReplaceAllString(clean, " "))
	if clean != "" {
		terms = append(terms, clean)
	}
	// Accessories are already disambiguated above; other categories carry
	// their name unless the description mentions it on its own.
	if category != plan.SlotAccessories && !containsWord(clean, category) {
		terms = append(terms, category)
	}

	return strings.Join(terms, " ")
}

func containsWord(text, word string) bool {
	if word == "" {
		return true
	}
	for _, t := range strings.Fields(strings.ToLower(text)) {
		if t == strings.ToLower(word) {
			return true
		}
	}
	return false
}
