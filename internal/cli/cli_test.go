package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given arguments against
// isolated config and data directories, returning stdout and the error.
func runCLI(t *testing.T, configDir, dataDir string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", configDir, "--data-dir", dataDir}, args...))

	err := root.Execute()
	return out.String(), err
}

// writeDatasetFile writes a JSON dataset description to a temp file.
func writeDatasetFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleDataset = `{
	"name": "pbmc-mini",
	"row_extent": 3,
	"column_extent": 2,
	"row_labels": ["ENSG1", "ENSG2", "ENSG2"],
	"column_labels": ["cell-1", "cell-2"],
	"row_annotations": {"symbol": ["CD4", "CD8A", "CD8A"]}
}`

// importSample imports the sample dataset and returns its generated ID.
func importSample(t *testing.T, configDir, dataDir string) string {
	t.Helper()

	path := writeDatasetFile(t, t.TempDir(), sampleDataset)
	out, err := runCLI(t, configDir, dataDir, "--json", "import", path)
	require.NoError(t, err)

	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp["dataset_id"])
	return resp["dataset_id"]
}

func TestInitCreatesConfigAndData(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()

	out, err := runCLI(t, configDir, dataDir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized")

	assert.FileExists(t, filepath.Join(configDir, "config.yaml"))
	assert.FileExists(t, filepath.Join(dataDir, "datasets.jsonl"))
}

func TestImportShowRoundtrip(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	out, err := runCLI(t, configDir, dataDir, "show", id)
	require.NoError(t, err)

	var view datasetView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "pbmc-mini", view.Name)
	assert.Equal(t, 3, view.Rows.Extent)
	assert.Equal(t, 2, view.Columns.Extent)
	assert.Equal(t, []string{"ENSG1", "ENSG2", "ENSG2"}, view.Rows.Labels)
	assert.Equal(t, []string{"CD4", "CD8A", "CD8A"}, view.Rows.Annotations["symbol"])
}

func TestListReportsImportedDatasets(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	out, err := runCLI(t, configDir, dataDir, "--json", "list")
	require.NoError(t, err)

	var summaries []datasetSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, id, summaries[0].DatasetID)
	assert.Equal(t, "pbmc-mini", summaries[0].Name)
	assert.Equal(t, 3, summaries[0].RowExtent)
}

func TestResolveExactAndPartial(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	out, err := runCLI(t, configDir, dataDir, "--json", "resolve", id, "ENSG1", "ENSG9")
	require.NoError(t, err)

	var res resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []int{0}, res.Indices)
	assert.Equal(t, []string{"ENSG9"}, res.NotFound)

	// Partial matching over the annotation column finds both CD8A rows.
	out, err = runCLI(t, configDir, dataDir, "--json", "resolve", id, "CD8", "--by", "symbol", "--partial", "--all")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []int{1, 2}, res.Indices)
	assert.Empty(t, res.NotFound)
}

func TestDedupRewritesRowLabels(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	_, err := runCLI(t, configDir, dataDir, "dedup", id, "--axis", "row")
	require.NoError(t, err)

	out, err := runCLI(t, configDir, dataDir, "show", id)
	require.NoError(t, err)

	var view datasetView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, []string{"ENSG1", "ENSG2-1", "ENSG2-2"}, view.Rows.Labels)
}

func TestDedupAnnotateKeepsLiveLabels(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	_, err := runCLI(t, configDir, dataDir, "dedup", id, "--axis", "row", "--annotate")
	require.NoError(t, err)

	out, err := runCLI(t, configDir, dataDir, "show", id)
	require.NoError(t, err)

	var view datasetView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, []string{"ENSG1", "ENSG2", "ENSG2"}, view.Rows.Labels)
	assert.Equal(t, []string{"ENSG1", "ENSG2-1", "ENSG2-2"}, view.Rows.Annotations["rownames.uniq"])
}

func TestSetLabelsFromAnnotationColumn(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	_, err := runCLI(t, configDir, dataDir, "set-labels", id, "--axis", "row", "--column", "symbol")
	require.NoError(t, err)

	out, err := runCLI(t, configDir, dataDir, "show", id)
	require.NoError(t, err)

	var view datasetView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	// Dedup is on by default, so the repeated CD8A values are suffixed.
	assert.Equal(t, []string{"CD4", "CD8A-1", "CD8A-2"}, view.Rows.Labels)
}

func TestSetLabelsFromFile(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	path := filepath.Join(t.TempDir(), "labels.json")
	require.NoError(t, os.WriteFile(path, []byte(`["g1", "g2", "g3"]`), 0o644))

	_, err := runCLI(t, configDir, dataDir, "set-labels", id, "--axis", "row", "--from", path)
	require.NoError(t, err)

	out, err := runCLI(t, configDir, dataDir, "show", id)
	require.NoError(t, err)

	var view datasetView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, []string{"g1", "g2", "g3"}, view.Rows.Labels)
}

func TestSetLabelsLengthMismatch(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	path := filepath.Join(t.TempDir(), "labels.json")
	require.NoError(t, os.WriteFile(path, []byte(`["only-one"]`), 0o644))

	_, err := runCLI(t, configDir, dataDir, "set-labels", id, "--axis", "row", "--from", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestSetLabelsRequiresExactlyOneSource(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	_, err := runCLI(t, configDir, dataDir, "set-labels", id, "--axis", "row")
	require.Error(t, err)

	_, err = runCLI(t, configDir, dataDir, "set-labels", id, "--axis", "row", "--column", "symbol", "--from", "x.json")
	require.Error(t, err)
}

func TestDeleteRemovesDataset(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	_, err := runCLI(t, configDir, dataDir, "delete", id)
	require.NoError(t, err)

	_, err = runCLI(t, configDir, dataDir, "show", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveUnknownDataset(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	_, err := runCLI(t, configDir, dataDir, "init")
	require.NoError(t, err)

	_, err = runCLI(t, configDir, dataDir, "resolve", "no-such-id", "g1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestInvalidAxisFlag(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	id := importSample(t, configDir, dataDir)

	_, err := runCLI(t, configDir, dataDir, "dedup", id, "--axis", "diagonal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --axis")
}
