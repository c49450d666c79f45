package handlers

import (
	"fmt"
	"net/http"

	"algoeconomics/internal/api/models"
	"algoeconomics/internal/chart"
	"algoeconomics/internal/sections"

	"github.com/gin-gonic/gin"
)

// SectionsHandler serves the chart configurations of each page section
type SectionsHandler struct{}

// NewSectionsHandler creates a new sections handler
func NewSectionsHandler() *SectionsHandler {
	return &SectionsHandler{}
}

// List handles GET /api/v1/sections
func (h *SectionsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sections": sections.IDs(),
		"regions":  chart.Regions(),
	})
}

// Get handles GET /api/v1/sections/:id. ?region= selects a regional bloc
// for the regional-analysis section.
func (h *SectionsHandler) Get(c *gin.Context) {
	id, err := sections.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, models.CodeUnknownSection, err.Error(),
			map[string]interface{}{"available": sections.IDs()})
		return
	}

	if region := c.Query("region"); region != "" {
		if id != sections.RegionalAnalysis {
			respondError(c, http.StatusBadRequest, models.CodeInvalidRequest,
				fmt.Sprintf("section %q has no regions", id), nil)
			return
		}
		r, ok := chart.Regional(region)
		if !ok {
			respondError(c, http.StatusNotFound, models.CodeUnknownSection,
				fmt.Sprintf("unknown region %q", region),
				map[string]interface{}{"available": chart.Regions()})
			return
		}
		c.JSON(http.StatusOK, models.SectionResponse{ID: string(id), Charts: []chart.Named{r}})
		return
	}

	charts, err := sections.Charts(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, models.CodeInternalError, err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, models.SectionResponse{ID: string(id), Charts: charts})
}
