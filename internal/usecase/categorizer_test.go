package usecase

import "testing"

func TestCategoryOf(t *testing.T) {
	testCases := []struct {
		name   string
		phrase string
		want   string
	}{
		{name: "empty string", phrase: "", want: CategoryOther},
		{name: "dairy keyword", phrase: "whole milk", want: "dairy"},
		{name: "bakery wins over dairy for challah", phrase: "challah", want: "bakery"},
		{name: "meat", phrase: "chicken breast", want: "meat"},
		{name: "produce", phrase: "cherry tomato", want: "produce"},
		{name: "phrase inside keyword", phrase: "tomat", want: "produce"},
		{name: "household", phrase: "shabbat candle", want: "household"},
		{name: "no category", phrase: "xyzznotreal", want: CategoryOther},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CategoryOf(tc.phrase)
			if got != tc.want {
				t.Errorf("CategoryOf(%q) = %q, want %q", tc.phrase, got, tc.want)
			}
		})
	}
}

// First-match-wins ordering is part of the contract: bakery sits above
// pantry, so "bread sauce" is bakery even though "sauce" is a pantry keyword.
func TestCategoryOrderIsSignificant(t *testing.T) {
	if got := CategoryOf("bread sauce"); got != "bakery" {
		t.Errorf("CategoryOf(\"bread sauce\") = %q, want bakery (first definition wins)", got)
	}
}
