package scenario

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"algoeconomics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	v, err := Values(model.ParamInflation, 11)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3.5, 7, 10.5, 14, 17.5, 21, 24.5, 28, 31.5, 35}, v)

	v, err = Values(model.ParamFDI, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10, 12.5, 15}, v)

	v, err = Values(model.ParamCommodity, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{-50, 0, 50}, v)

	_, err = Values(model.ParamInflation, 1)
	assert.Error(t, err)
	_, err = Values(model.ParamInflation, MaxSteps+1)
	assert.Error(t, err)
	_, err = Values("gdp", 5)
	assert.ErrorIs(t, err, model.ErrUnknownParam)
}

func TestSweep_Inflation(t *testing.T) {
	res, err := New().Sweep(model.BaseInputs(), model.ParamInflation, 11)
	require.NoError(t, err)
	require.Len(t, res.Rows, 11)

	for i, r := range res.Rows {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, model.ParamInflation, r.Param)
		assert.Equal(t, r.Value, r.Inputs.Inflation)
		assert.Equal(t, model.BaseInputs().Stability, r.Inputs.Stability, "other inputs stay at base")
		assert.Equal(t, model.Derive(r.Inputs).GDPGrowth, r.GDPGrowth)
	}

	assert.Equal(t, 0.0, res.MaxGDP().Value, "lower inflation means higher growth")
	assert.Equal(t, 35.0, res.MinGDP().Value)
	assert.Equal(t, model.Positive, res.MaxGDP().GDPClass)
	assert.Equal(t, model.Negative, res.MinGDP().GDPClass)
}

func TestSweep_InterestHasNoEffect(t *testing.T) {
	res, err := New().Sweep(model.BaseInputs(), model.ParamInterest, 5)
	require.NoError(t, err)
	for _, r := range res.Rows {
		assert.Equal(t, res.Rows[0].GDPGrowth, r.GDPGrowth)
		assert.Equal(t, res.Rows[0].ClimateScore, r.ClimateScore)
	}
	assert.Equal(t, 0, res.MaxGDPIndex)
	assert.Equal(t, 0, res.MinGDPIndex)
}

func TestSweepValues_ClampsAndValidates(t *testing.T) {
	res, err := New().SweepValues(model.BaseInputs(), model.ParamStability, []float64{-10, 50, 400})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 50, 100}, []float64{res.Rows[0].Value, res.Rows[1].Value, res.Rows[2].Value})

	_, err = New().SweepValues(model.BaseInputs(), model.ParamStability, nil)
	assert.Error(t, err)
	_, err = New().SweepValues(model.BaseInputs(), "gdp", []float64{1})
	assert.ErrorIs(t, err, model.ErrUnknownParam)
}

func TestWriteRowsCSV(t *testing.T) {
	res, err := New().Sweep(model.BaseInputs(), model.ParamCommodity, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRowsCSV(&buf, res.Rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"0", "commodity", "-50.000000"}, records[1][:3])
	assert.Equal(t, "negative", records[1][len(records[1])-1])
}

func TestWriteRowsCSVFile(t *testing.T) {
	res, err := New().Sweep(model.BaseInputs(), model.ParamFDI, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sweep.csv")
	require.NoError(t, WriteRowsCSVFile(path, res.Rows))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(raw, []byte("\n")))
}
