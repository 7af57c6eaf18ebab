// internal/app/app_test.go
package app

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func runApp(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunEndToEndCSV(t *testing.T) {
	in := writeInput(t, "id,target_name\n1,Histamine H3 receptor\n2,EGFR L858R kinase\n3,\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	code, _, stderr := runApp(t, "--input", in, "--output", out)
	require.Equal(t, 0, code, stderr)

	rows := readCSV(t, out)
	require.Len(t, rows, 4)
	assert.Equal(t, "clean_text", rows[0][2])

	assert.Equal(t, "histamine h3", rows[1][2])
	assert.Equal(t, "hrh3", rows[1][5])
	assert.Equal(t, "9606", rows[1][9])

	// Mutation stripped, class recorded.
	assert.Equal(t, "egfr kinase", rows[2][2])
	assert.Equal(t, "aa-substitution", rows[2][6])

	// Blank names stay valid empty records.
	assert.Equal(t, "", rows[3][2])
}

func TestRunJSONL(t *testing.T) {
	in := writeInput(t, "target_name\nDopamine D2 receptor\n")
	out := filepath.Join(t.TempDir(), "out.jsonl")

	code, _, stderr := runApp(t, "--input", in, "--output", out, "--format", "jsonl")
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var rec struct {
		Result struct {
			CleanText      string   `json:"clean_text"`
			GeneCandidates []string `json:"gene_like_candidates"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "dopamine d2", rec.Result.CleanText)
	assert.Equal(t, []string{"drd2"}, rec.Result.GeneCandidates)
}

func TestRunThreadsDeterministic(t *testing.T) {
	var b strings.Builder
	b.WriteString("target_name\n")
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, "Histamine H%d receptor\n", i%9+1)
	}
	in := writeInput(t, b.String())

	out1 := filepath.Join(t.TempDir(), "a.csv")
	out2 := filepath.Join(t.TempDir(), "b.csv")

	code, _, _ := runApp(t, "--input", in, "--output", out1, "--threads", "1")
	require.Equal(t, 0, code)
	code, _, _ = runApp(t, "--input", in, "--output", out2, "--threads", "8")
	require.Equal(t, 0, code)

	d1, _ := os.ReadFile(out1)
	d2, _ := os.ReadFile(out2)
	assert.Equal(t, string(d1), string(d2))
}

func TestRunKeepAndNoMutations(t *testing.T) {
	in := writeInput(t, "target_name\nEGFR L858R kinase\n")

	out := filepath.Join(t.TempDir(), "keep.csv")
	code, _, _ := runApp(t, "--input", in, "--output", out, "--keep-mutations")
	require.Equal(t, 0, code)
	rows := readCSV(t, out)
	assert.Contains(t, rows[1][3], "l858r")

	out = filepath.Join(t.TempDir(), "nomut.csv")
	code, _, _ = runApp(t, "--input", in, "--output", out, "--no-mutations")
	require.Equal(t, 0, code)
	rows = readCSV(t, out)
	assert.Equal(t, "", rows[1][5]) // no mutation classes recorded
}

func TestRunMutationWhitelistFile(t *testing.T) {
	wl := filepath.Join(t.TempDir(), "wl.txt")
	require.NoError(t, os.WriteFile(wl, []byte("L858R\n"), 0o644))
	in := writeInput(t, "target_name\nEGFR L858R kinase\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	code, _, _ := runApp(t, "--input", in, "--output", out, "--mutation-whitelist", wl)
	require.Equal(t, 0, code)

	rows := readCSV(t, out)
	assert.Contains(t, rows[1][3], "l858r")
}

func TestRunUniProtValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/uniprotkb/Q9Y5N1.json" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{
		  "proteinDescription": {"recommendedName": {"fullName": {"value": "Histamine H3 receptor"}}},
		  "genes": [{"geneName": {"value": "HRH3"}}]
		}`)
	}))
	defer srv.Close()
	t.Setenv("TARGETNORM_UNIPROT_BASE_URL", srv.URL)

	in := writeInput(t, "accession,target_name\nQ9Y5N1,Histamine H3 receptor\nBAD,EGFR\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	code, _, _ := runApp(t, "--input", in, "--output", out, "--id-column", "accession")
	require.Equal(t, 0, code)

	rows := readCSV(t, out)
	assert.Equal(t, "uniprot_match", rows[0][len(rows[0])-1])
	assert.Equal(t, "true", rows[1][len(rows[1])-1])
	assert.Equal(t, "false", rows[2][len(rows[2])-1])
}

func TestRunUsageErrors(t *testing.T) {
	in := writeInput(t, "target_name\nEGFR\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	code, _, _ := runApp(t)
	assert.Equal(t, 2, code)

	code, _, _ = runApp(t, "--input", in, "--output", out, "--format", "xml")
	assert.Equal(t, 2, code)

	code, _, _ = runApp(t, "--input", in, "--output", out, "--column", "missing")
	assert.Equal(t, 2, code)

	code, _, _ = runApp(t, "--input", in, "--output", out, "--unknown-flag")
	assert.Equal(t, 2, code)
}

func TestRunIOErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	code, _, _ := runApp(t, "--input", filepath.Join(t.TempDir(), "absent.csv"), "--output", out)
	assert.Equal(t, 3, code)
}

func TestRunConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("column: name\n"), 0o644))
	in := writeInput(t, "name\nHistamine H3 receptor\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	code, _, stderr := runApp(t, "--input", in, "--output", out, "--config", cfgPath)
	require.Equal(t, 0, code, stderr)

	rows := readCSV(t, out)
	assert.Equal(t, "histamine h3", rows[1][1])
}
