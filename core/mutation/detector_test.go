// core/mutation/detector_test.go
package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSubstitutions(t *testing.T) {
	d := New(Config{})

	tests := []struct {
		name     string
		in       string
		wantText []string
	}{
		{"simple substitution", "EGFR L858R", []string{"L858R"}},
		{"no mutation", "Histamine H3 receptor", nil},
		{"same flanking letter skipped", "probe A123A region", nil},
		{"hgvs protein", "KRAS p.G12D", []string{"p.G12D"}},
		{"hgvs three letter", "KRAS p.Gly12Asp", []string{"p.Gly12Asp"}},
		{"bare three letter", "BRAF Val600Glu", []string{"Val600Glu"}},
		{"delta deletion", "CFTR ΔF508", []string{"ΔF508"}},
		{"suffix deletion", "CFTR F508del", []string{"F508del"}},
		{"frameshift", "TP53 p.R210fs", []string{"p.R210fs"}},
		{"nucleotide", "BRCA1 c.68_69del", []string{"c.68_69del"}},
		{"keyword", "EGFR mutant", []string{"mutant"}},
	}
	for _, tc := range tests {
		got := d.Find(tc.in)
		var texts []string
		for _, m := range got {
			texts = append(texts, m.Text)
		}
		assert.Equal(t, tc.wantText, texts, tc.name)
	}
}

func TestFindMergesContainedMatches(t *testing.T) {
	d := New(Config{})
	got := d.Find("BRAF V600E/V600K")
	require.Len(t, got, 1)
	assert.Equal(t, "V600E/V600K", got[0].Text)
	assert.Equal(t, "multi-substitution", got[0].Rule)
}

func TestWhitelist(t *testing.T) {
	d := New(Config{})
	assert.True(t, d.Whitelisted("h3"))
	assert.True(t, d.Whitelisted("P2X7"))
	assert.False(t, d.Whitelisted("l858r"))

	// Whitelisted spellings never surface as matches.
	assert.Empty(t, d.Find("muscarinic m2"))

	d = New(Config{ExtraWhitelist: []string{"L858R"}})
	assert.Empty(t, d.Find("EGFR L858R"))
}

func TestOracle(t *testing.T) {
	oracle := func(tok string) bool { return tok == "q12rr" }
	d := New(Config{Oracle: oracle})

	got := d.Find("XYZ q12rr")
	require.Len(t, got, 1)
	assert.Equal(t, "q12rr", got[0].Text)
	assert.Equal(t, "oracle", got[0].Rule)

	// Tokens already covered by a regex match are not re-asked.
	got = d.Find("EGFR L858R")
	require.Len(t, got, 1)
	assert.Equal(t, "aa-substitution", got[0].Rule)

	// Nil oracle is a clean degradation.
	assert.Equal(t, got, New(Config{}).Find("EGFR L858R"))
}

func TestStripSet(t *testing.T) {
	d := New(Config{})
	set := d.StripSet([]Match{
		{Text: "V600E", Rule: "aa-substitution"},
		{Text: "ΔF508", Rule: "deletion-delta"},
	})
	assert.Contains(t, set, "v600e")
	assert.Contains(t, set, "deltaf508")
}
