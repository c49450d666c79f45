package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"algoeconomics/internal/analysis"
	"algoeconomics/internal/api/models"
	"algoeconomics/internal/chart"
	"algoeconomics/internal/display"
	"algoeconomics/internal/model"
	"algoeconomics/internal/scenario"
	"algoeconomics/internal/widget"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ModelHandler serves the stateless economic model endpoints
type ModelHandler struct {
	presets  widget.PresetSource
	recorder widget.Recorder
	engine   *scenario.Engine
	logger   *zap.Logger
}

// NewModelHandler creates a new model handler. recorder may be nil.
func NewModelHandler(presets widget.PresetSource, recorder widget.Recorder, logger *zap.Logger) *ModelHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModelHandler{presets: presets, recorder: recorder, engine: scenario.New(), logger: logger}
}

// ListInputs handles GET /api/v1/model/inputs
func (h *ModelHandler) ListInputs(c *gin.Context) {
	base := h.basePreset()
	specs := make([]models.InputSpec, 0, len(model.Params))
	for _, p := range model.Params {
		b := model.BoundsOf(p)
		v, _ := base.Inputs.Get(p)
		specs = append(specs, models.InputSpec{
			Param:    p,
			SliderID: widget.SliderID(p),
			LabelID:  widget.LabelID(p),
			Min:      b.Min,
			Max:      b.Max,
			Step:     b.Step,
			Default:  v,
			Label:    display.Label(p, v),
		})
	}
	c.JSON(http.StatusOK, models.InputsResponse{
		Inputs: specs,
		ResultIDs: []string{
			widget.GDPResult, widget.GDPChange,
			widget.TradeResult, widget.TradeChange,
			widget.ClimateResult, widget.ClimateChange,
		},
		ChartID: widget.ModelChart,
	})
}

// ListPresets handles GET /api/v1/model/presets
func (h *ModelHandler) ListPresets(c *gin.Context) {
	all := h.presets.Presets().All()
	out := make([]models.PresetInfo, 0, len(all))
	for _, p := range all {
		out = append(out, models.PresetInfo{
			Name:        p.Name,
			Description: p.Description,
			Inputs:      p.Inputs,
			Labels:      display.Labels(p.Inputs),
		})
	}
	c.JSON(http.StatusOK, models.PresetsResponse{Presets: out})
}

// Recompute handles POST /api/v1/model/recompute
func (h *ModelHandler) Recompute(c *gin.Context) {
	var req models.RecomputeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
			return
		}
	}

	presetName := strings.TrimSpace(req.Preset)
	if presetName == "" {
		presetName = model.PresetBase
	}
	preset, err := h.presets.Presets().Get(presetName)
	if err != nil {
		h.unknownPreset(c, presetName)
		return
	}

	raw := overlay(preset.Inputs, req.Inputs)
	in := raw.Clamp()
	u := display.Compute(in)

	if h.recorder != nil {
		trigger := widget.TriggerDirect
		if req.Inputs == nil {
			trigger = widget.TriggerPreset
			h.recorder.PresetApplied(preset.Name)
		}
		h.recorder.Recomputed(trigger)
	}

	resp := models.RecomputeResponse{
		Inputs:  in,
		Clamped: clampedParams(raw, in),
		Labels:  display.Labels(in),
		Metrics: u.Metrics,
		Display: u,
		Series:  projectedSeries(u.Metrics.GDPGrowth),
	}
	if req.Inputs == nil {
		resp.Preset = preset.Name
	}
	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/model/compare
func (h *ModelHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
			return
		}
	}
	by, err := analysis.ParseMetric(req.RankBy)
	if err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}

	set := h.presets.Presets()
	summaries, err := analysis.Compare(set, req.Presets)
	if err != nil {
		if errors.Is(err, model.ErrUnknownPreset) {
			respondError(c, http.StatusNotFound, models.CodeUnknownPreset, err.Error(),
				map[string]interface{}{"available": set.Names()})
			return
		}
		respondError(c, http.StatusInternalServerError, models.CodeInternalError, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		RankedBy:    by,
		Comparison:  analysis.Rank(summaries, by),
		Sensitivity: analysis.RankSensitivity(analysis.ComputeSensitivity(h.basePreset().Inputs), by),
	})
}

// Sweep handles GET /api/v1/model/sweep
func (h *ModelHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}
	param, err := model.ParseParam(req.Param)
	if err != nil {
		respondError(c, http.StatusBadRequest, models.CodeUnknownParam, err.Error(),
			map[string]interface{}{"available": model.Params})
		return
	}
	steps := req.Steps
	if steps == 0 {
		steps = scenario.DefaultSteps
	}
	presetName := req.Preset
	if presetName == "" {
		presetName = model.PresetBase
	}
	preset, err := h.presets.Presets().Get(presetName)
	if err != nil {
		h.unknownPreset(c, presetName)
		return
	}

	result, err := h.engine.Sweep(preset.Inputs, param, steps)
	if err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}

	if strings.EqualFold(req.Format, "csv") {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="sweep-%s-%s.csv"`, preset.Name, param))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := scenario.WriteRowsCSV(c.Writer, result.Rows); err != nil {
			h.logger.Error("writing sweep csv", zap.Error(err))
		}
		return
	}
	c.JSON(http.StatusOK, models.SweepResponse{Preset: preset.Name, Result: result})
}

// ModelChart handles GET /api/v1/charts/model
func (h *ModelHandler) ModelChart(c *gin.Context) {
	cfg := chart.ModelLine()
	cfg.Data.Datasets[0].Data[chart.ProjectedIndex] = model.Derive(h.basePreset().Inputs).GDPGrowth
	c.JSON(http.StatusOK, chart.Named{CanvasID: chart.ModelCanvasID, Config: cfg})
}

func (h *ModelHandler) unknownPreset(c *gin.Context, name string) {
	respondError(c, http.StatusNotFound, models.CodeUnknownPreset,
		fmt.Sprintf("unknown preset %q", name),
		map[string]interface{}{"available": h.presets.Presets().Names()})
}

func (h *ModelHandler) basePreset() model.Preset {
	p, err := h.presets.Presets().Get(model.PresetBase)
	if err != nil {
		return model.BuiltinPresets()[0]
	}
	return p
}

func overlay(in model.Inputs, p *models.InputsPayload) model.Inputs {
	if p == nil {
		return in
	}
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&in.Inflation, p.Inflation)
	set(&in.Interest, p.Interest)
	set(&in.Commodity, p.Commodity)
	set(&in.Stability, p.Stability)
	set(&in.FDI, p.FDI)
	return in
}

func clampedParams(raw, clamped model.Inputs) []model.Param {
	var out []model.Param
	for _, p := range model.Params {
		a, _ := raw.Get(p)
		b, _ := clamped.Get(p)
		if a != b {
			out = append(out, p)
		}
	}
	return out
}

func projectedSeries(gdp float64) []float64 {
	return append(chart.ModelHistory(), gdp)
}
