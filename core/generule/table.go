// core/generule/table.go
package generule

import "regexp"

// defaultRules is the built-in inference table, evaluated top to bottom.
// Clean-input rules see receptor phrases with stop words retained; token-input
// rules see the no-stop-word pool (originals plus generated variants).
var defaultRules = []Rule{
	// --- Adenosine ---
	{
		ID: "adenosine-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\badenosine\s+receptor\b`),
		Symbols:  []string{"adora1", "adora2a", "adora2b", "adora3"},
		Family:   "adora", Fallback: true,
	},
	{
		ID: "adenosine-a1", Input: InputClean,
		Pattern: regexp.MustCompile(`\badenosine\s+a\s*1\b|\ba1\b`),
		Context: regexp.MustCompile(`\badenosine\b`),
		Symbols: []string{"a1", "adora1"},
		Family:  "adora",
	},
	{
		ID: "adenosine-a2a", Input: InputClean,
		Pattern: regexp.MustCompile(`\badenosine\s+a\s*2\s*a\b|\ba2a\b`),
		Context: regexp.MustCompile(`\badenosine\b`),
		Symbols: []string{"a2a", "adora2a"},
		Family:  "adora",
	},
	{
		ID: "adenosine-a2b", Input: InputClean,
		Pattern: regexp.MustCompile(`\badenosine\s+a\s*2\s*b\b|\ba2b\b`),
		Context: regexp.MustCompile(`\badenosine\b`),
		Symbols: []string{"a2b", "adora2b"},
		Family:  "adora",
	},
	{
		ID: "adenosine-a3", Input: InputClean,
		Pattern: regexp.MustCompile(`\badenosine\s+a\s*3\b|\ba3\b`),
		Context: regexp.MustCompile(`\badenosine\b`),
		Symbols: []string{"a3", "adora3"},
		Family:  "adora",
	},
	// --- Nociceptin / ORL1 ---
	{
		ID: "nociceptin", Input: InputClean,
		Pattern: regexp.MustCompile(`\bnociceptin\s+receptor\b|\borphanin\s*fq\s+receptor\b|\bnop\b|\borl1\b`),
		Symbols: []string{"nop", "orl1", "oprl1"},
	},
	// --- Neuropeptide Y ---
	{
		ID: "npy-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bneuropeptide\s*y\s+receptor\b|\bnpy\s+receptor\b`),
		Symbols:  []string{"npy1r", "npy2r", "npy4r", "npy5r"},
		Family:   "npy", Fallback: true,
	},
	{
		ID: "npy-y1", Input: InputClean,
		Pattern: regexp.MustCompile(`\b(y\s*1|npy\s*1)\b`),
		Symbols: []string{"y1", "npy1r"}, Family: "npy",
	},
	{
		ID: "npy-y2", Input: InputClean,
		Pattern: regexp.MustCompile(`\b(y\s*2|npy\s*2)\b`),
		Symbols: []string{"y2", "npy2r"}, Family: "npy",
	},
	{
		ID: "npy-y4", Input: InputClean,
		Pattern: regexp.MustCompile(`\b(y\s*4|npy\s*4)\b`),
		Symbols: []string{"y4", "npy4r"}, Family: "npy",
	},
	{
		ID: "npy-y5", Input: InputClean,
		Pattern: regexp.MustCompile(`\b(y\s*5|npy\s*5)\b`),
		Symbols: []string{"y5", "npy5r"}, Family: "npy",
	},
	// --- Melanocortin ---
	{
		ID: "melanocortin-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bmelanocortin\s+receptor\b|\bmcr\b`),
		Symbols:  []string{"mc1r", "mc2r", "mc3r", "mc4r", "mc5r"},
		Family:   "mc", Fallback: true,
	},
	{
		ID: "melanocortin-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\bmc\s*([1-5])\s*r?\b`),
		Expand:  []string{"mc${1}r"}, Family: "mc",
	},
	{
		ID: "melanocortin-numbered", Input: InputClean,
		Pattern: regexp.MustCompile(`\bmelanocortin\s*-?\s*([1-5])\s+receptor\b`),
		Expand:  []string{"mc${1}r"}, Family: "mc",
	},
	// --- Prostaglandin (EP/DP/FP/IP/TP) ---
	{
		ID: "prostaglandin-family", Input: InputClean,
		Pattern: regexp.MustCompile(`\bprostaglandin\s+receptor\b`),
		Symbols: []string{
			"ptger1", "ptger2", "ptger3", "ptger4",
			"ptgdr", "ptgdr2", "ptgfr", "ptgir", "tbxa2r",
		},
		Family: "prostaglandin", Fallback: true,
	},
	{
		ID: "prostaglandin-ep", Input: InputClean,
		Pattern: regexp.MustCompile(`\bep\s*([1-4])\b`),
		Expand:  []string{"ep${1}", "ptger${1}"}, Family: "prostaglandin",
	},
	{
		ID: "prostaglandin-dp1", Input: InputClean,
		Pattern: regexp.MustCompile(`\bdp\s*1\b`),
		Symbols: []string{"dp1", "ptgdr"}, Family: "prostaglandin",
	},
	{
		ID: "prostaglandin-dp2", Input: InputClean,
		Pattern: regexp.MustCompile(`\bdp\s*2\b|\bcrth2\b|\bgpr44\b`),
		Symbols: []string{"dp2", "crth2", "ptgdr2"}, Family: "prostaglandin",
	},
	{
		ID: "prostaglandin-fp", Input: InputClean,
		Pattern: regexp.MustCompile(`\bfp\b|\bpgf\s*2\s*a\b`),
		Symbols: []string{"fp", "ptgfr"}, Family: "prostaglandin",
	},
	{
		ID: "prostaglandin-ip", Input: InputClean,
		Pattern: regexp.MustCompile(`\bip\b|\bprostacyclin\s+receptor\b`),
		Symbols: []string{"ip", "ptgir"}, Family: "prostaglandin",
	},
	{
		ID: "prostaglandin-tp", Input: InputClean,
		Pattern: regexp.MustCompile(`\btp\b|\bthromboxane\s+receptor\b`),
		Symbols: []string{"tp", "tbxa2r"}, Family: "prostaglandin",
	},
	// --- Calcitonin / CGRP / Amylin ---
	{
		ID: "calcitonin-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\b(calcitonin|cgrp|amylin)\s+receptor\b|\bcalcrl?\b`),
		Symbols:  []string{"calcr", "calcrl", "ramp1", "ramp2", "ramp3"},
		Family:   "calcitonin", Fallback: true,
	},
	{
		ID: "cgrp", Input: InputClean,
		Pattern: regexp.MustCompile(`\bcgrp\b`),
		Symbols: []string{"calcrl", "ramp1", "ramp2", "ramp3"}, Family: "calcitonin",
	},
	{
		ID: "amylin", Input: InputClean,
		Pattern: regexp.MustCompile(`\bamylin\b`),
		Symbols: []string{"calcr", "ramp1", "ramp2", "ramp3"}, Family: "calcitonin",
	},
	// --- Parathyroid hormone ---
	{
		ID: "pth-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bparathyroid\s+hormone\s+receptor\b|\bpth\s*receptor\b`),
		Symbols:  []string{"pth1r", "pth2r"},
		Family:   "pth", Fallback: true,
	},
	{
		ID: "pth1r", Input: InputClean,
		Pattern: regexp.MustCompile(`\bpth\s*1\s*r?\b`),
		Symbols: []string{"pth1r"}, Family: "pth",
	},
	{
		ID: "pth2r", Input: InputClean,
		Pattern: regexp.MustCompile(`\bpth\s*2\s*r?\b`),
		Symbols: []string{"pth2r"}, Family: "pth",
	},
	// --- Neuropeptide S ---
	{
		ID: "nps", Input: InputClean,
		Pattern: regexp.MustCompile(`\bneuropeptide\s*s\s+receptor\b|\bnps\s*receptor\b|\bnpsr1\b`),
		Symbols: []string{"npsr1"},
	},
	// --- Neuropeptide FF ---
	{
		ID: "npff-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bneuropeptide\s*ff\s+receptor\b|\bnpffr\b`),
		Symbols:  []string{"npffr1", "npffr2"},
		Family:   "npff", Fallback: true,
	},
	{
		ID: "npff-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\bnpffr\s*([12])\b`),
		Expand:  []string{"npffr${1}"}, Family: "npff",
	},
	// --- Neuropeptide B/W ---
	{
		ID: "npbw-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bneuropeptide\s*(b|w)\s+receptor\b|\bnpbwr\b`),
		Symbols:  []string{"npbwr1", "npbwr2"},
		Family:   "npbw", Fallback: true,
	},
	{
		ID: "npbw-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\bnpbwr\s*([12])\b`),
		Expand:  []string{"npbwr${1}"}, Family: "npbw",
	},
	// --- Neuromedin U ---
	{
		ID: "nmu-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bneuromedin\s*u\s+receptor\b|\bnmur\b`),
		Symbols:  []string{"nmur1", "nmur2"},
		Family:   "nmu", Fallback: true,
	},
	{
		ID: "nmu-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\bnmur\s*([12])\b`),
		Expand:  []string{"nmur${1}"}, Family: "nmu",
	},
	// --- Single-target GPCR aliases ---
	{
		ID: "kisspeptin", Input: InputClean,
		Pattern: regexp.MustCompile(`\bkisspeptin\s+receptor\b|\bgpr54\b|\bkiss1r\b`),
		Symbols: []string{"kiss1r", "gpr54"},
	},
	{
		ID: "ghrelin", Input: InputClean,
		Pattern: regexp.MustCompile(`\bghrelin\s+receptor\b|\bghsr\b`),
		Symbols: []string{"ghsr"},
	},
	{
		ID: "motilin", Input: InputClean,
		Pattern: regexp.MustCompile(`\bmotilin\s+receptor\b|\bmlnr\b|\bgpr38\b`),
		Symbols: []string{"mlnr", "gpr38"},
	},
	{
		ID: "prolactin-releasing-peptide", Input: InputClean,
		Pattern: regexp.MustCompile(`\bprolactin-?releasing\s+peptide\s+receptor\b|\bprlhr\b|\bgpr10\b`),
		Symbols: []string{"prlhr", "gpr10"},
	},
	// --- Melanin-concentrating hormone ---
	{
		ID: "mch-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bmelanin-?concentrating\s+hormone\s+receptor\b|\bmchr\b`),
		Symbols:  []string{"mchr1", "mchr2"},
		Family:   "mch", Fallback: true,
	},
	{
		ID: "mch-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\bmchr\s*([12])\b`),
		Expand:  []string{"mchr${1}"}, Family: "mch",
	},
	{
		ID: "fractalkine-receptor", Input: InputClean,
		Pattern: regexp.MustCompile(`\bfractalkine\s+receptor\b|\bcx3cr1\b`),
		Symbols: []string{"cx3cr1"},
	},
	{
		ID: "xcr1", Input: InputClean,
		Pattern: regexp.MustCompile(`\bxcr\s*1\b|\bxc\s*chemokine\s+receptor\s*1\b`),
		Symbols: []string{"xcr1"},
	},
	{
		ID: "platelet-activating-factor", Input: InputClean,
		Pattern: regexp.MustCompile(`\bplatelet-?activating\s+factor\s+receptor\b|\bptafr\b`),
		Symbols: []string{"ptafr"},
	},
	// --- Formyl peptide ---
	{
		ID: "fpr-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bformyl\s+peptide\s+receptor\b|\bfpr\b`),
		Symbols:  []string{"fpr1", "fpr2", "fpr3"},
		Family:   "fpr", Fallback: true,
	},
	{
		ID: "fpr-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\bfpr\s*([1-3])\b`),
		Expand:  []string{"fpr${1}"}, Family: "fpr",
	},
	{
		ID: "fpr-alx", Input: InputClean,
		Pattern: regexp.MustCompile(`\balx\b`),
		Symbols: []string{"fpr2"}, Family: "fpr",
	},
	// --- Free fatty acid ---
	{
		ID: "ffar-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bfree\s+fatty\s+acid\s+receptor\b|\bffar\b`),
		Symbols:  []string{"ffar1", "ffar2", "ffar3", "ffar4", "gpr84"},
		Family:   "ffar", Fallback: true,
	},
	{
		ID: "ffar-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\bffar\s*([1-4])\b`),
		Expand:  []string{"ffar${1}"}, Family: "ffar",
	},
	{
		ID: "gpr120", Input: InputClean,
		Pattern: regexp.MustCompile(`\bgpr\s*120\b`),
		Symbols: []string{"ffar4", "gpr120"}, Family: "ffar",
	},
	{
		ID: "gpr40", Input: InputClean,
		Pattern: regexp.MustCompile(`\bgpr\s*40\b`),
		Symbols: []string{"ffar1", "gpr40"}, Family: "ffar",
	},
	{
		ID: "gpr41", Input: InputClean,
		Pattern: regexp.MustCompile(`\bgpr\s*41\b`),
		Symbols: []string{"ffar3", "gpr41"}, Family: "ffar",
	},
	{
		ID: "gpr43", Input: InputClean,
		Pattern: regexp.MustCompile(`\bgpr\s*43\b`),
		Symbols: []string{"ffar2", "gpr43"}, Family: "ffar",
	},
	{
		ID: "gpr84", Input: InputClean,
		Pattern: regexp.MustCompile(`\bgpr\s*84\b`),
		Symbols: []string{"gpr84"}, Family: "ffar",
	},
	// --- Hydroxycarboxylic acid ---
	{
		ID: "hcar-family", Input: InputClean,
		Pattern:  regexp.MustCompile(`\bhydroxycarboxylic\s+acid\s+receptor\b|\bhcar\b`),
		Symbols:  []string{"hcar1", "hcar2", "hcar3"},
		Family:   "hcar", Fallback: true,
	},
	{
		ID: "hcar-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\bhcar\s*([1-3])\b`),
		Expand:  []string{"hcar${1}"}, Family: "hcar",
	},
	{
		ID: "gpr81", Input: InputClean,
		Pattern: regexp.MustCompile(`\bgpr\s*81\b`),
		Symbols: []string{"hcar1", "gpr81"}, Family: "hcar",
	},
	{
		ID: "gpr109a", Input: InputClean,
		Pattern: regexp.MustCompile(`\bgpr\s*109\s*a\b`),
		Symbols: []string{"hcar2", "gpr109a"}, Family: "hcar",
	},
	{
		ID: "gpr109b", Input: InputClean,
		Pattern: regexp.MustCompile(`\bgpr\s*109\s*b\b`),
		Symbols: []string{"hcar3", "gpr109b"}, Family: "hcar",
	},
	// --- Trace amine ---
	{
		ID: "taar-family", Input: InputClean,
		Pattern: regexp.MustCompile(`\btrace\s+amine-?associated\s+receptor\b|\btaar\b`),
		Symbols: []string{
			"taar1", "taar2", "taar3", "taar4", "taar5",
			"taar6", "taar7", "taar8", "taar9",
		},
		Family: "taar", Fallback: true,
	},
	{
		ID: "taar-subtype", Input: InputClean,
		Pattern: regexp.MustCompile(`\btaar\s*([1-9])\b`),
		Expand:  []string{"taar${1}"}, Family: "taar",
	},
	// --- Bile acid / urotensin / apelin ---
	{
		ID: "bile-acid", Input: InputClean,
		Pattern: regexp.MustCompile(`\bbile\s+acid\s+receptor\b|\btgr5\b|\bgpbar1\b`),
		Symbols: []string{"gpbar1", "tgr5"},
	},
	{
		ID: "urotensin-2", Input: InputClean,
		Pattern: regexp.MustCompile(`\burotensin\s+(?:ii|2)\s+receptor\b|\buts2r\b`),
		Symbols: []string{"uts2r"},
	},
	{
		ID: "apelin", Input: InputClean,
		Pattern: regexp.MustCompile(`\bapelin\s+receptor\b|\baplnr\b|\bagtrl1\b`),
		Symbols: []string{"aplnr"},
	},

	// --- Aminergic and ionotropic subtype expansions (token input) ---
	{
		ID: "histamine-h", Input: InputTokens,
		Pattern: regexp.MustCompile(`histamine\s+h(\d+)`),
		Expand:  []string{"hrh${1}"},
	},
	{
		ID: "dopamine-d", Input: InputTokens,
		Pattern: regexp.MustCompile(`dopamine\s+d(\d+)`),
		Expand:  []string{"drd${1}"},
	},
	{
		ID: "adrenergic-beta", Input: InputTokens,
		Pattern: regexp.MustCompile(`adrenergic\s+beta(\d+)`),
		Expand:  []string{"adrb${1}"},
	},
	{
		ID: "p2x", Input: InputTokens,
		Pattern: regexp.MustCompile(`p2x(\d+)`),
		Expand:  []string{"p2rx${1}"},
	},
	{
		ID: "serotonin-5ht", Input: InputTokens,
		Pattern: regexp.MustCompile(`5[- ]?ht(\d+[a-z]?)`),
		Expand:  []string{"htr${1}"},
	},
	{
		ID: "gaba-a-alpha", Input: InputTokens,
		Pattern: regexp.MustCompile(`gaba\s+a\s+alpha(\d+)`),
		Expand:  []string{"gabra${1}"},
	},
	{
		ID: "trp-channel", Input: InputTokens,
		Pattern: regexp.MustCompile(`trp\s*([vmcak])\s*(\d+)`),
		Expand:  []string{"trp${1}${2}"},
	},
	{
		ID: "glua-subtype", Input: InputTokens,
		Pattern: regexp.MustCompile(`glua(\d)`),
		Expand:  []string{"gria${1}"}, Family: "gria",
	},
	{
		ID: "gluk-subtype", Input: InputTokens,
		Pattern: regexp.MustCompile(`gluk(\d)`),
		Expand:  []string{"grik${1}"}, Family: "grik",
	},
	{
		ID: "nmda-nr-subtype", Input: InputTokens,
		Pattern: regexp.MustCompile(`nr(1|2[a-d]|3[a-b])`),
		Expand:  []string{"grin${1}"}, Family: "grin",
	},
	{
		ID: "mglur-subtype", Input: InputTokens,
		Pattern: regexp.MustCompile(`mglur(\d)`),
		Expand:  []string{"grm${1}"}, Family: "grm",
	},
	{
		ID: "ccr", Input: InputTokens,
		Pattern: regexp.MustCompile(`ccr\s*(\d+)`),
		Expand:  []string{"ccr${1}"},
	},
	{
		ID: "cxcr", Input: InputTokens,
		Pattern: regexp.MustCompile(`cxcr\s*(\d+)`),
		Expand:  []string{"cxcr${1}"},
	},
	{
		ID: "chemokine-cc", Input: InputTokens,
		Pattern: regexp.MustCompile(`chemokine\s+cc\s*(\d+)`),
		Expand:  []string{"ccr${1}"},
	},
	{
		ID: "chemokine-cxc", Input: InputTokens,
		Pattern: regexp.MustCompile(`chemokine\s+cxc\s*(\d+)`),
		Expand:  []string{"cxcr${1}"},
	},

	// --- Ionotropic/metabotropic glutamate family fallbacks ---
	{
		ID: "ampa-family", Input: InputTokens,
		Pattern:  regexp.MustCompile(`\bampa\b`),
		Symbols:  []string{"gria1", "gria2", "gria3", "gria4"},
		Family:   "gria", Fallback: true,
	},
	{
		ID: "nmda-family", Input: InputTokens,
		Pattern: regexp.MustCompile(`\bnmda\b`),
		Symbols: []string{
			"grin1", "grin2a", "grin2b", "grin2c", "grin2d", "grin3a", "grin3b",
		},
		Family: "grin", Fallback: true,
	},
	{
		ID: "kainate-family", Input: InputTokens,
		Pattern:  regexp.MustCompile(`\bkainate\b`),
		Symbols:  []string{"grik1", "grik2", "grik3", "grik4", "grik5"},
		Family:   "grik", Fallback: true,
	},
	{
		ID: "mglur-family", Input: InputTokens,
		Pattern: regexp.MustCompile(`\bmetabotropic\b`),
		Context: regexp.MustCompile(`\bglutamate\b`),
		Symbols: []string{
			"grm1", "grm2", "grm3", "grm4", "grm5", "grm6", "grm7", "grm8",
		},
		Family: "grm", Fallback: true,
	},

	// --- Ligand-name aliases ---
	{
		ID: "alias-sdf1", Input: InputTokens,
		Pattern: regexp.MustCompile(`sdf[- ]?1`),
		Symbols: []string{"cxcr4"},
	},
	{
		ID: "alias-il8", Input: InputTokens,
		Pattern: regexp.MustCompile(`il[- ]?8`),
		Symbols: []string{"cxcr1", "cxcr2"},
	},
	{
		ID: "alias-rantes", Input: InputTokens,
		Pattern: regexp.MustCompile(`rantes`),
		Symbols: []string{"ccr1", "ccr3", "ccr5"},
	},
	{
		ID: "alias-fractalkine", Input: InputTokens,
		Pattern: regexp.MustCompile(`fractalkine`),
		Symbols: []string{"cx3cr1"},
	},
}
