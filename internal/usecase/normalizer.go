package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// typoCorrections maps common misspellings to their corrections.
// Applied whole-word on already-lowercased text.
var typoCorrections = map[string]string{
	"chiken":    "chicken",
	"chicen":    "chicken",
	"tomatos":   "tomatoes",
	"tomatoe":   "tomato",
	"potatos":   "potatoes",
	"potatoe":   "potato",
	"bannana":   "banana",
	"bananna":   "banana",
	"avacado":   "avocado",
	"avocardo":  "avocado",
	"brocoli":   "broccoli",
	"brocolli":  "broccoli",
	"letuce":    "lettuce",
	"lettace":   "lettuce",
	"cofee":     "coffee",
	"coffe":     "coffee",
	"yoghurt":   "yogurt",
	"spagetti":  "spaghetti",
	"spagheti":  "spaghetti",
	"cucmber":   "cucumber",
	"onoin":     "onion",
	"sasuage":   "sausage",
	"sausege":   "sausage",
	"humous":    "hummus",
	"houmous":   "hummus",
	"challa":    "challah",
	"hallah":    "challah",
	"chala":     "challah",
	"margerine": "margarine",
	"majonaise": "mayonnaise",
	"mayonaise": "mayonnaise",
	"cerial":    "cereal",
}

// pluralToSingular maps known plural tokens to their singular form.
// Only exact token matches are rewritten; no stemming guesswork.
var pluralToSingular = map[string]string{
	"tomatoes":   "tomato",
	"potatoes":   "potato",
	"eggs":       "egg",
	"apples":     "apple",
	"bananas":    "banana",
	"oranges":    "orange",
	"lemons":     "lemon",
	"onions":     "onion",
	"carrots":    "carrot",
	"peppers":    "pepper",
	"cucumbers":  "cucumber",
	"grapes":     "grape",
	"mushrooms":  "mushroom",
	"avocados":   "avocado",
	"breasts":    "breast",
	"thighs":     "thigh",
	"rolls":      "roll",
	"bagels":     "bagel",
	"biscuits":   "biscuit",
	"crackers":   "cracker",
	"sausages":   "sausage",
	"olives":     "olive",
	"pickles":    "pickle",
	"beans":      "bean",
	"lentils":    "lentil",
	"chickpeas":  "chickpea",
	"noodles":    "noodle",
	"yogurts":    "yogurt",
	"cheeses":    "cheese",
	"loaves":     "loaf",
	"challahs":   "challah",
	"candles":    "candle",
	"napkins":    "napkin",
	"tissues":    "tissue",
	"strawberries": "strawberry",
	"blueberries":  "blueberry",
	"raspberries":  "raspberry",
	"cherries":     "cherry",
}

// Normalize lowercases text, strips everything that is not a letter, digit or
// whitespace, collapses whitespace runs and trims the ends. It never fails:
// empty input yields "". Idempotent by construction.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	result := strings.ToLower(text)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// FixTypos rewrites known misspellings token by token. Expects lowercased
// input; anything not in the correction table passes through unchanged.
func FixTypos(text string) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	for i, word := range words {
		if fixed, ok := typoCorrections[word]; ok {
			words[i] = fixed
		}
	}
	return strings.Join(words, " ")
}

// HandlePlurals replaces each token that exactly matches a known plural with
// its singular form, preserving token order.
func HandlePlurals(text string) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	for i, word := range words {
		if singular, ok := pluralToSingular[word]; ok {
			words[i] = singular
		}
	}
	return strings.Join(words, " ")
}
