package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// quantityPattern matches a number followed by a unit token, e.g. "2kg",
// "500 g", "1.5 l", "2 pints". Longer unit spellings come first so the
// alternation never truncates them.
var quantityPattern = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(litres?|pints?|kg|lbs?|ml|oz|pt|l|g)\b`)

// leadingCountPattern matches a bare count at the start of a line, e.g.
// "3 onions". Only tried when no unit-bearing quantity was found.
var leadingCountPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+`)

// knownBrands is scanned whole-word. Multi-word brands precede their
// single-word prefixes so "coca cola" wins over a bare "cola" brand entry.
var knownBrands = []string{
	"coca cola",
	"heinz",
	"kelloggs",
	"nestle",
	"cadbury",
	"hovis",
	"kingsmill",
	"warburtons",
	"muller",
	"hellmanns",
	"anchor",
	"lurpak",
	"osem",
	"telma",
	"yarden",
	"elite",
	"bnei brak",
	"kedem",
	"rakusen",
	"snowcrest",
}

// descriptiveQuantityWords are size/amount descriptors removed from the
// phrase whether or not a numeric quantity was found.
var descriptiveQuantityWords = []string{
	"extra large",
	"large",
	"medium",
	"small",
	"mini",
	"jumbo",
	"big",
	"half dozen",
	"dozen",
	"pack of",
	"pack",
	"punnet",
	"bunch",
	"tin of",
	"tin",
	"jar of",
	"jar",
	"bottle of",
	"bottle",
	"bag of",
	"bag",
	"box of",
	"box",
	"loaf of",
	"slice of",
	"sliced",
}

// BrandExtraction is the outcome of stripping a known brand from a phrase.
type BrandExtraction struct {
	Brand     string
	CleanText string
}

// QuantityExtraction is the outcome of stripping quantity/size tokens.
type QuantityExtraction struct {
	Quantity  float64 // defaults to 1 when no numeric quantity is present
	Unit      string  // defaults to "item"
	Token     string  // the raw matched token, e.g. "2kg"
	CleanText string
}

// brandWordPatterns caches the compiled whole-word pattern per brand.
var brandWordPatterns = buildWordPatterns(knownBrands)

// descriptiveWordPatterns caches the compiled pattern per descriptor word.
var descriptiveWordPatterns = buildWordPatterns(descriptiveQuantityWords)

func buildWordPatterns(words []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(words))
	for _, w := range words {
		patterns[w] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}

// ExtractBrand removes the first known brand found in the text and reports
// it. If removing the brand would leave nothing, the original text is kept so
// a line like "heinz" still has something to match on.
func ExtractBrand(text string) BrandExtraction {
	result := BrandExtraction{CleanText: text}
	if text == "" {
		return result
	}

	for _, brand := range knownBrands {
		pattern := brandWordPatterns[brand]
		if !pattern.MatchString(text) {
			continue
		}

		cleaned := pattern.ReplaceAllString(text, " ")
		cleaned = multipleSpacesRegex.ReplaceAllString(cleaned, " ")
		cleaned = strings.TrimSpace(cleaned)

		result.Brand = brand
		if cleaned != "" {
			result.CleanText = cleaned
		}
		return result
	}

	return result
}

// ExtractQuantity pulls a numeric quantity+unit token out of the text, then
// removes descriptive size words regardless of whether the numeric pattern
// matched. Falls back to the original text if stripping leaves nothing.
func ExtractQuantity(text string) QuantityExtraction {
	result := QuantityExtraction{Quantity: 1, Unit: "item", CleanText: text}
	if text == "" {
		return result
	}

	cleaned := text
	if m := quantityPattern.FindStringSubmatch(cleaned); m != nil {
		if qty, err := strconv.ParseFloat(m[1], 64); err == nil {
			result.Quantity = qty
			result.Unit = m[2]
			result.Token = strings.TrimSpace(m[0])
			cleaned = quantityPattern.ReplaceAllString(cleaned, " ")
		}
	} else if m := leadingCountPattern.FindStringSubmatch(cleaned); m != nil {
		if qty, err := strconv.ParseFloat(m[1], 64); err == nil {
			result.Quantity = qty
			result.Token = strings.TrimSpace(m[1])
			cleaned = leadingCountPattern.ReplaceAllString(cleaned, "")
		}
	}

	for _, word := range descriptiveQuantityWords {
		cleaned = descriptiveWordPatterns[word].ReplaceAllString(cleaned, " ")
	}

	cleaned = multipleSpacesRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		cleaned = text
	}
	result.CleanText = cleaned

	return result
}
