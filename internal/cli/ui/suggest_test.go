package ui

import (
	"reflect"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"Customer", "Custmer", 1},
		{"Straße", "Strasse", 2},
		{"été", "ete", 2},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Customer", "Customers", "Country", "Currency", "Invoice"}

	tests := []struct {
		name   string
		target string
		opts   *SuggestOptions
		want   []string
	}{
		{"typo", "Custmer", nil, []string{"Customer", "Customers"}},
		{"case insensitive", "customer", nil, []string{"Customer", "Customers"}},
		{"case sensitive", "customer", &SuggestOptions{CaseSensitive: true, MaxDistance: 1}, []string{"Customer"}},
		{"limit", "Cu", &SuggestOptions{MaxDistance: 10, MaxSuggestions: 2}, []string{"Country", "Currency"}},
		{"nothing close", "Warehouse", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.target, candidates, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}
