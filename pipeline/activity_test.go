package pipeline

import (
	"testing"
	"time"

	"github.com/dgeast/jeju-sale1/models"
)

func TestRiskBucketBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, models.RiskStable},
		{7, models.RiskStable},
		{8, models.RiskCaution},
		{14, models.RiskCaution},
		{15, models.RiskAtRisk},
		{30, models.RiskAtRisk},
		{31, models.RiskChurnedLikely},
		{365, models.RiskChurnedLikely},
	}
	for _, c := range cases {
		if got := RiskBucket(c.days); got != c.want {
			t.Errorf("RiskBucket(%d) = %q, want %q", c.days, got, c.want)
		}
	}
}

func TestSellerActivityDormancy(t *testing.T) {
	base := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	onDay := func(seller string, daysBefore int) models.OrderRow {
		r := orderRow(seller, "c1", 100)
		r.OrderDate = base.AddDate(0, 0, -daysBefore)
		return r
	}
	rows := []models.OrderRow{
		onDay("fresh", 0),
		onDay("fresh", 40), // old order must not matter, last order wins
		onDay("drifting", 12),
		onDay("gone", 60),
	}

	activity := SellerActivity(rows)
	byName := map[string]models.SellerActivity{}
	for _, a := range activity {
		byName[a.SellerName] = a
	}

	if a := byName["fresh"]; a.DormantDays != 0 || a.RiskBucket != models.RiskStable {
		t.Errorf("fresh = %+v, want 0 dormant days, stable", a)
	}
	if a := byName["drifting"]; a.DormantDays != 12 || a.RiskBucket != models.RiskCaution {
		t.Errorf("drifting = %+v, want 12 dormant days, caution", a)
	}
	if a := byName["gone"]; a.DormantDays != 60 || a.RiskBucket != models.RiskChurnedLikely {
		t.Errorf("gone = %+v, want 60 dormant days, churned-suspect", a)
	}
	if byName["fresh"].OrderCount != 2 {
		t.Errorf("fresh order count = %d, want 2", byName["fresh"].OrderCount)
	}
}

func TestSortByDormantDesc(t *testing.T) {
	activity := []models.SellerActivity{
		{SellerName: "a", DormantDays: 3},
		{SellerName: "b", DormantDays: 45},
		{SellerName: "c", DormantDays: 10},
	}
	sorted := SortByDormantDesc(activity)
	if sorted[0].SellerName != "b" || sorted[1].SellerName != "c" || sorted[2].SellerName != "a" {
		t.Fatalf("got %q %q %q, want b c a", sorted[0].SellerName, sorted[1].SellerName, sorted[2].SellerName)
	}
	if activity[0].SellerName != "a" {
		t.Fatal("input slice was mutated")
	}
}
