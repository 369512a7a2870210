package usecase

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "lowercases", input: "Whole MILK", want: "whole milk"},
		{name: "strips punctuation", input: "ben & jerry's!", want: "ben jerrys"},
		{name: "collapses whitespace", input: "  chicken \t breast  ", want: "chicken breast"},
		{name: "keeps digits", input: "2pt Milk", want: "2pt milk"},
		{name: "only punctuation", input: "?!...", want: ""},
		{name: "unicode punctuation removed", input: "challah — for shabbat", want: "challah for shabbat"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "Whole MILK", "  2pt   milk!! ", "chiken breast", "£1.50 of grapes",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestFixTypos(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "known typo", input: "chiken breast", want: "chicken breast"},
		{name: "multiple typos", input: "chiken and avacado", want: "chicken and avocado"},
		{name: "no typos pass through", input: "whole milk", want: "whole milk"},
		{name: "typo must be whole word", input: "chikenish", want: "chikenish"},
		{name: "tomatos", input: "2kg tomatos", want: "2kg tomatoes"},
		{name: "challah spellings", input: "challa for shabbat", want: "challah for shabbat"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FixTypos(tc.input)
			if got != tc.want {
				t.Errorf("FixTypos(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestHandlePlurals(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "known plural", input: "tomatoes", want: "tomato"},
		{name: "plural in phrase keeps order", input: "cherry tomatoes and eggs", want: "cherry tomato and egg"},
		{name: "unknown plural preserved", input: "milks", want: "milks"},
		{name: "irregular plural", input: "loaves", want: "loaf"},
		{name: "singular untouched", input: "tomato", want: "tomato"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := HandlePlurals(tc.input)
			if got != tc.want {
				t.Errorf("HandlePlurals(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
