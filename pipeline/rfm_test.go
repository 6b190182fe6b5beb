package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/dgeast/jeju-sale1/models"
)

// one order per customer, each on its own day with its own spend
func rfmFixture(n int) []models.DerivedRow {
	rows := make([]models.OrderRow, 0, n)
	for i := 0; i < n; i++ {
		r := orderRow("A", fmt.Sprintf("c%02d", i), float64((i+1)*1000))
		r.OrderDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		rows = append(rows, r)
	}
	return DeriveRows(rows)
}

func TestBuildRFMQuintilesAllPopulated(t *testing.T) {
	rfm := BuildRFM(rfmFixture(10))
	if len(rfm) != 10 {
		t.Fatalf("expected 10 customers, got %d", len(rfm))
	}
	rCounts := map[int]int{}
	for _, r := range rfm {
		if r.RScore < 1 || r.RScore > 5 || r.FScore < 1 || r.FScore > 5 || r.MScore < 1 || r.MScore > 5 {
			t.Fatalf("score out of range for %s: %+v", r.CustomerID, r)
		}
		rCounts[r.RScore]++
	}
	// 10 customers with distinct recencies: every quintile holds exactly 2
	for s := 1; s <= 5; s++ {
		if rCounts[s] != 2 {
			t.Errorf("recency quintile %d holds %d customers, want 2", s, rCounts[s])
		}
	}
}

func TestBuildRFMRecencyInverted(t *testing.T) {
	rfm := BuildRFM(rfmFixture(10))
	byID := map[string]models.CustomerRFM{}
	for _, r := range rfm {
		byID[r.CustomerID] = r
	}
	// c09 ordered last (most recent), c00 first
	if byID["c09"].RScore != 5 {
		t.Errorf("most recent customer RScore = %d, want 5", byID["c09"].RScore)
	}
	if byID["c00"].RScore != 1 {
		t.Errorf("least recent customer RScore = %d, want 1", byID["c00"].RScore)
	}
	// reference date is subset max + 1: the freshest recency is still positive
	if byID["c09"].RecencyDays != 1 {
		t.Errorf("freshest recency = %d days, want 1", byID["c09"].RecencyDays)
	}
}

// Duplicate raw values must not collapse quintile boundaries: the stable
// rank gives every customer a distinct position first.
func TestBuildRFMDuplicateValuesStillBucket(t *testing.T) {
	rows := make([]models.OrderRow, 0, 10)
	for i := 0; i < 10; i++ {
		r := orderRow("A", fmt.Sprintf("c%02d", i), 5000) // identical spend
		r.OrderDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		rows = append(rows, r)
	}
	rfm := BuildRFM(DeriveRows(rows))
	mCounts := map[int]int{}
	for _, r := range rfm {
		mCounts[r.MScore]++
	}
	for s := 1; s <= 5; s++ {
		if mCounts[s] != 2 {
			t.Errorf("monetary quintile %d holds %d customers, want 2", s, mCounts[s])
		}
	}
}

func TestSegmentRules(t *testing.T) {
	cases := []struct {
		total, r int
		want     string
	}{
		{15, 5, models.SegmentVIP},
		{13, 1, models.SegmentVIP},
		{12, 1, models.SegmentLoyal},
		{10, 3, models.SegmentLoyal},
		{9, 5, models.SegmentNew},
		{9, 4, models.SegmentNew},
		{9, 2, models.SegmentAtRisk},
		{9, 1, models.SegmentAtRisk},
		{9, 3, models.SegmentRegular},
	}
	for _, c := range cases {
		if got := Segment(c.total, c.r); got != c.want {
			t.Errorf("Segment(%d, %d) = %q, want %q", c.total, c.r, got, c.want)
		}
	}
}

// Segmentation is total: every customer lands in exactly one segment.
func TestSegmentDistributionCoversEveryCustomer(t *testing.T) {
	rfm := BuildRFM(rfmFixture(17))
	dist := SegmentDistribution(rfm)
	sum := 0
	for _, d := range dist {
		sum += d.Customers
	}
	if sum != len(rfm) {
		t.Fatalf("segment counts sum to %d, want %d", sum, len(rfm))
	}
}

func TestBuildRFMEmptySubset(t *testing.T) {
	if got := BuildRFM(nil); got != nil {
		t.Fatalf("expected nil for empty subset, got %v", got)
	}
}

func TestCustomerSummaryRepeatRate(t *testing.T) {
	rows := derivedRows(
		orderRow("A", "c1", 100),
		orderRow("A", "c1", 100),
		orderRow("A", "c2", 100),
		orderRow("A", "c3", 100),
	)
	s := CustomerSummary(rows)
	if s.UniqueCustomers != 3 || s.RepeatCustomers != 1 {
		t.Fatalf("unique=%d repeat=%d, want 3 and 1", s.UniqueCustomers, s.RepeatCustomers)
	}
	want := 100.0 / 3
	if diff := s.RepeatCustomerRate - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("repeat rate = %v, want %v", s.RepeatCustomerRate, want)
	}
}

func TestFrequencyDistributionAscending(t *testing.T) {
	rows := derivedRows(
		orderRow("A", "c1", 100),
		orderRow("A", "c1", 100),
		orderRow("A", "c1", 100),
		orderRow("A", "c2", 100),
	)
	dist := FrequencyDistribution(rows)
	if len(dist) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(dist))
	}
	if dist[0].Orders != 1 || dist[0].Customers != 1 {
		t.Errorf("bucket 0 = %+v, want 1 order / 1 customer", dist[0])
	}
	if dist[1].Orders != 3 || dist[1].Customers != 1 {
		t.Errorf("bucket 1 = %+v, want 3 orders / 1 customer", dist[1])
	}
}
