package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() *Result {
	return &Result{
		Notes: []Note{
			{String: 5, Fret: 0, Pitch: 64, Name: "E4", Duration: 0.5},
			{String: 1, Fret: 3, Pitch: 48, Name: "C3", Duration: 1.0},
		},
		Score:          55,
		Tempo:          120,
		Generations:    200,
		ElapsedSeconds: 1.25,
	}
}

func TestWriteResultJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "melody.json")
	require.NoError(t, WriteResultJSON(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Result
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, 55.0, loaded.Score)
	require.Len(t, loaded.Notes, 2)
	assert.Equal(t, "E4", loaded.Notes[0].Name)
	assert.Equal(t, 1.0, loaded.Notes[1].Duration)
}

func TestWriteResultXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "melody.xlsx")
	require.NoError(t, NewDefaultExcelReporter().WriteResultXLSX(sampleResult(), path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	name, err := fx.GetCellValue("Melody", "E2")
	require.NoError(t, err)
	assert.Equal(t, "E4", name)

	score, err := fx.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "55", score)
}
