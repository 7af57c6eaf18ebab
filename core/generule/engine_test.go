// core/generule/engine_test.go
package generule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferTokenRules(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"histamine", []string{"histamine", "h3"}, []string{"hrh3"}},
		{"dopamine", []string{"dopamine", "d2"}, []string{"drd2"}},
		{"p2x", []string{"p2x3"}, []string{"p2rx3"}},
		{"serotonin split", []string{"5", "ht1a"}, []string{"htr1a"}},
		{"serotonin hyphen", []string{"5-ht1a"}, []string{"htr1a"}},
		{"gaba", []string{"gaba", "a", "alpha1"}, []string{"gabra1"}},
		{"trp channel", []string{"trpv1"}, []string{"trpv1"}},
		{"mglur subtype", []string{"mglur5"}, []string{"grm5"}},
		{"chemokine full form", []string{"chemokine", "cc", "5"}, []string{"ccr5"}},
		{"multiple expansions", []string{"ccr2", "ccr5"}, []string{"ccr2", "ccr5"}},
		{"alias rantes", []string{"rantes"}, []string{"ccr1", "ccr3", "ccr5"}},
		{"alias sdf1", []string{"sdf-1"}, []string{"cxcr4"}},
		{"nothing", []string{"egfr"}, nil},
	}
	for _, tc := range tests {
		got, _ := e.Infer("", tc.tokens)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestInferFamilyFallback(t *testing.T) {
	e := NewEngine()

	// Family term alone falls back to every subunit.
	got, _ := e.Infer("", []string{"ampa"})
	assert.Equal(t, []string{"gria1", "gria2", "gria3", "gria4"}, got)

	// A firing subtype rule suppresses the family fallback.
	got, _ = e.Infer("", []string{"ampa", "glua2"})
	assert.Equal(t, []string{"gria2"}, got)

	got, _ = e.Infer("", []string{"nmda"})
	assert.Len(t, got, 7)

	got, _ = e.Infer("", []string{"nmda", "nr2b"})
	assert.Equal(t, []string{"grin2b"}, got)

	// Metabotropic requires the glutamate context.
	got, _ = e.Infer("", []string{"metabotropic", "glutamate"})
	assert.Len(t, got, 8)
	got, _ = e.Infer("", []string{"metabotropic", "signaling"})
	assert.Empty(t, got)
}

func TestInferCleanRules(t *testing.T) {
	e := NewEngine()

	got, fired := e.Infer("adenosine receptor", nil)
	assert.Equal(t, []string{"adora1", "adora2a", "adora2b", "adora3"}, got)
	require.Len(t, fired, 1)
	assert.Equal(t, "adenosine-family", fired[0].ID)

	// Subtype beats family.
	got, _ = e.Infer("adenosine a2a receptor", nil)
	assert.Equal(t, []string{"a2a", "adora2a"}, got)

	// Subtype token without its context stays silent.
	got, _ = e.Infer("a2a antagonist", nil)
	assert.Empty(t, got)

	got, _ = e.Infer("prostaglandin ep4", nil)
	assert.Equal(t, []string{"ep4", "ptger4"}, got)

	got, _ = e.Infer("melanocortin-4 receptor", nil)
	assert.Contains(t, got, "mc4r")

	got, _ = e.Infer("cgrp receptor", nil)
	assert.Equal(t, []string{"calcrl", "ramp1", "ramp2", "ramp3"}, got)

	got, _ = e.Infer("ghrelin receptor", nil)
	assert.Equal(t, []string{"ghsr"}, got)

	got, _ = e.Infer("free fatty acid receptor", nil)
	assert.Equal(t, []string{"ffar1", "ffar2", "ffar3", "ffar4", "gpr84"}, got)

	got, _ = e.Infer("gpr120 agonist", nil)
	assert.Equal(t, []string{"ffar4", "gpr120"}, got)

	got, _ = e.Infer("taar1", nil)
	assert.Equal(t, []string{"taar1"}, got)

	got, _ = e.Infer("urotensin 2 receptor", nil)
	assert.Equal(t, []string{"uts2r"}, got)
}

func TestInferDeduplicatesAcrossRules(t *testing.T) {
	e := NewEngine()
	// Token rule and alias rule both contribute cxcr1.
	got, _ := e.Infer("", []string{"cxcr1", "il-8"})
	assert.Equal(t, []string{"cxcr1", "cxcr2"}, got)
}

func TestNewEngineWithRules(t *testing.T) {
	e := NewEngineWithRules(nil)
	got, fired := e.Infer("anything", []string{"anything"})
	assert.Empty(t, got)
	assert.Empty(t, fired)
}
