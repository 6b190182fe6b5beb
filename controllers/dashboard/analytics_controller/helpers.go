package analytics_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dgeast/jeju-sale1/config"
	"github.com/dgeast/jeju-sale1/models"
	"github.com/dgeast/jeju-sale1/pipeline"
	"github.com/dgeast/jeju-sale1/services"
	"github.com/gin-gonic/gin"
)

// parseFilter reads the common query params shared by every dashboard view:
// start / end (YYYY-MM-DD, inclusive) and the Top-10-relabeled seller and
// variety multi-selects (comma separated).
func parseFilter(c *gin.Context) pipeline.Filter {
	f := pipeline.Filter{}
	if v := c.Query("start"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.From = t
		}
	}
	if v := c.Query("end"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.To = t
		}
	}
	f.Sellers = splitParam(c.Query("sellers"))
	f.Varieties = splitParam(c.Query("varieties"))
	return f
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// loadFiltered runs one rendering pass: cached dataset -> filter -> derive.
// On a missing primary dataset it writes the error response itself and
// reports false; optional inputs are the callers' concern.
func loadFiltered(c *gin.Context, tag string) (all []models.OrderRow, filtered []models.DerivedRow, ok bool) {
	all, _, err := services.LoadDataset(config.DataDir(), config.PipelineOptions())
	if err != nil {
		log.Printf("[%s] ERROR dataset load err=%v", tag, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sales dataset is not available"))
		return nil, nil, false
	}

	subset := pipeline.ApplyFilter(all, parseFilter(c))
	return all, pipeline.DeriveRows(subset), true
}
