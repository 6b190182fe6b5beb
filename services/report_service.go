package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgeast/jeju-sale1/models"
)

var ErrNoReport = errors.New("report file not found")
var ErrNoSegmentFile = errors.New("no precomputed segment file found")

// Markdown strategy reports the dashboard serves verbatim. Whitelist: the
// name is a lookup key, never a path fragment.
var reportFiles = map[string]string{
	"marketing-strategy": "marketing_strategy_report.md",
	"eda-comprehensive":  "eda_comprehensive_report.md",
}

// ReportNames lists the available report keys
func ReportNames() []string {
	names := make([]string, 0, len(reportFiles))
	for k := range reportFiles {
		names = append(names, k)
	}
	return names
}

// LoadMarkdownReport returns a strategy report's raw markdown
func LoadMarkdownReport(reportDir, name string) (string, error) {
	file, ok := reportFiles[name]
	if !ok {
		return "", ErrNoReport
	}
	data, err := os.ReadFile(filepath.Join(reportDir, file))
	if err != nil {
		return "", ErrNoReport
	}
	return string(data), nil
}

// LoadSegmentDistribution consumes an optional precomputed customer-segment
// file (customer_segments.csv: one row per customer with a segment column),
// bypassing the RFM computation when present.
func LoadSegmentDistribution(dataDir string) ([]models.SegmentCount, error) {
	path := filepath.Join(dataDir, "customer_segments.csv")
	if _, err := os.Stat(path); err != nil {
		return nil, ErrNoSegmentFile
	}
	records, err := ReadCSVRecords(path)
	if err != nil {
		return nil, ErrNoSegmentFile
	}

	counts := map[string]int{}
	order := []string{}
	total := 0
	for _, rec := range records {
		seg := strings.TrimSpace(firstNonEmpty(rec["segment"], rec["세그먼트"]))
		if seg == "" {
			continue
		}
		if _, seen := counts[seg]; !seen {
			order = append(order, seg)
		}
		counts[seg]++
		total++
	}
	if total == 0 {
		return nil, ErrNoSegmentFile
	}

	out := make([]models.SegmentCount, len(order))
	for i, seg := range order {
		share := 0.0
		if total > 0 {
			share = float64(counts[seg]) / float64(total) * 100
		}
		out[i] = models.SegmentCount{Segment: seg, Customers: counts[seg], SharePct: share}
	}
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
