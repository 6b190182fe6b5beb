package services

import (
	"errors"
	"testing"
)

func TestLoadMarkdownReport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "marketing_strategy_report.md", "# 전략 리포트\n내용")

	body, err := LoadMarkdownReport(dir, "marketing-strategy")
	if err != nil {
		t.Fatal(err)
	}
	if body != "# 전략 리포트\n내용" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestLoadMarkdownReportUnknownName(t *testing.T) {
	dir := t.TempDir()
	// a name outside the whitelist never touches the filesystem
	if _, err := LoadMarkdownReport(dir, "../../etc/passwd"); !errors.Is(err, ErrNoReport) {
		t.Fatalf("err = %v, want ErrNoReport", err)
	}
	if _, err := LoadMarkdownReport(dir, "eda-comprehensive"); !errors.Is(err, ErrNoReport) {
		t.Fatalf("missing file: err = %v, want ErrNoReport", err)
	}
}

func TestLoadSegmentDistribution(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "customer_segments.csv",
		"customer_id,segment\nc1,VIP\nc2,VIP\nc3,Regular\nc4,\n")

	dist, err := LoadSegmentDistribution(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(dist) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(dist))
	}
	if dist[0].Segment != "VIP" || dist[0].Customers != 2 {
		t.Errorf("dist[0] = %+v, want VIP with 2 customers", dist[0])
	}
	want := 2.0 / 3 * 100
	if diff := dist[0].SharePct - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("VIP share = %v, want %v", dist[0].SharePct, want)
	}
}

func TestLoadSegmentDistributionKoreanHeader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "customer_segments.csv", "UID,세그먼트\nc1,Loyal\n")

	dist, err := LoadSegmentDistribution(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(dist) != 1 || dist[0].Segment != "Loyal" {
		t.Fatalf("unexpected distribution: %+v", dist)
	}
}

func TestLoadSegmentDistributionMissing(t *testing.T) {
	if _, err := LoadSegmentDistribution(t.TempDir()); !errors.Is(err, ErrNoSegmentFile) {
		t.Fatalf("err = %v, want ErrNoSegmentFile", err)
	}
}
