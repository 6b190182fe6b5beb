package config

import (
	"os"

	"github.com/dgeast/jeju-sale1/pipeline"
)

// DataDir holds the sales exports and marketing logs
func DataDir() string {
	return getEnv("DATA_DIR", "data")
}

// ReportDir holds the markdown strategy reports
func ReportDir() string {
	return getEnv("REPORT_DIR", "docs/analysis")
}

// AnalysisDir receives the batch generator's CSV summaries
func AnalysisDir() string {
	return getEnv("ANALYSIS_DIR", "data/analysis")
}

func Port() string {
	return getEnv("PORT", "8081")
}

// PipelineOptions selects the active cleaning-policy variant from the
// environment. One parameterized pipeline replaces the historical dashboard
// copies that disagreed on these policies.
func PipelineOptions() pipeline.Options {
	return pipeline.Options{
		PreferUnifiedAmount: getEnv("PREFER_UNIFIED_AMOUNT", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
