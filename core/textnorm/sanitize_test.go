// core/textnorm/sanitize_test.go
package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "EGFR L858R", "EGFR L858R"},
		{"control chars deleted", "\tEGFR L858R \n", "EGFR L858R"},
		{"bom stripped", "\uFEFFTP53", "TP53"},
		{"zero width space", "histamine​receptor", "histamine receptor"},
		{"whitespace collapsed", "  a   b c  ", "a b c"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Sanitize(tc.in), tc.name)
	}
}

func TestNormalizeUnicode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Histamine H3", "histamine h3"},
		{"typographic quotes", "“receptor”", "'receptor'"},
		{"long dash", "beta2–adrenergic", "beta2-adrenergic"},
		{"nfkc micro sign", "µ opioid", "μ opioid"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeUnicode(tc.in), tc.name)
	}
}

func TestFoldSpecials(t *testing.T) {
	assert.Equal(t, "beta2 adrenergic", FoldSpecials("β2 adrenergic"))
	assert.Equal(t, "alpha1 gamma", FoldSpecials("α1 γ"))
	assert.Equal(t, "p2x7", FoldSpecials("p2x₇"))
	assert.Equal(t, "delta f508", FoldSpecials("δ f508"))
}

func TestFoldRoman(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ii", "urotensin ii receptor", "urotensin 2 receptor"},
		{"xviii longest first", "type xviii collagen", "type 18 collagen"},
		{"embedded untouched", "angiotensin", "angiotensin"},
		{"single letters excluded", "factor x annexin v", "factor x annexin v"},
		{"idempotent", "urotensin 2 receptor", "urotensin 2 receptor"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FoldRoman(tc.in), tc.name)
	}
}

func TestExtractParentheticals(t *testing.T) {
	out, groups, keep := ExtractParentheticals("histamine receptor (h3)")
	assert.Equal(t, "histamine receptor", strings.TrimSpace(out))
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Retained)
	assert.Equal(t, []string{"h3"}, keep)

	out, groups, keep = ExtractParentheticals("brain [long descriptive fragment]")
	assert.Equal(t, "brain", strings.TrimSpace(out))
	require.Len(t, groups, 1)
	assert.False(t, groups[0].Retained)
	assert.Empty(t, keep)

	_, _, keep = ExtractParentheticals("serotonin (5-ht1a) receptor")
	assert.Equal(t, []string{"5-ht1a"}, keep)

	out, groups, keep = ExtractParentheticals("no brackets here")
	assert.Equal(t, "no brackets here", out)
	assert.Empty(t, groups)
	assert.Empty(t, keep)
}
