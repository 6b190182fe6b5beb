package pipeline

import (
	"testing"

	"github.com/dgeast/jeju-sale1/models"
)

func TestExtractLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"16649 1551 (9.32%)", 16649},
		{"780 (89)", 780},
		{"12,345", 12345},
		{" 42 ", 42},
		{"", 0},
		{"n/a", 0},
		{"(9.32%)", 0},
	}
	for _, c := range cases {
		if got := ExtractLeadingInt(c.in); got != c.want {
			t.Errorf("ExtractLeadingInt(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFunnelRates(t *testing.T) {
	f := FunnelRates(1000, 100, 5)
	if f.VisitToClickPct != 10 {
		t.Errorf("visit->click = %v, want 10", f.VisitToClickPct)
	}
	if f.ClickToOrderPct != 5 {
		t.Errorf("click->order = %v, want 5", f.ClickToOrderPct)
	}
	if f.VisitToOrderPct != 0.5 {
		t.Errorf("visit->order = %v, want 0.5", f.VisitToOrderPct)
	}
}

func TestFunnelRatesZeroStages(t *testing.T) {
	f := FunnelRates(0, 0, 7)
	if f.VisitToClickPct != 0 || f.ClickToOrderPct != 0 || f.VisitToOrderPct != 0 {
		t.Fatalf("zero-denominator rates must be 0, got %+v", f)
	}
}

func TestSellerCVRs(t *testing.T) {
	all := []models.OrderRow{
		orderRow("s1", "c1", 100),
		orderRow("s2", "c2", 100),
		orderRow("s3", "c3", 100),
	}
	all[0].ProductCode = "P1"
	all[1].ProductCode = "P2"
	// s3 has no product code, so no clicks can join to it

	filtered := DeriveRows(all)
	clicks := []ClickCount{
		{ProductCode: "P1", Clicks: 50},
		{ProductCode: "P2", Clicks: 10},
		{ProductCode: "P9", Clicks: 999}, // unknown product, ignored
	}

	cvrs := SellerCVRs(all, filtered, clicks)
	if len(cvrs) != 2 {
		t.Fatalf("expected 2 sellers with clicks, got %d", len(cvrs))
	}
	// s2: 1 order / 10 clicks = 10%, s1: 1/50 = 2%; sorted by CVR desc
	if cvrs[0].SellerName != "s2" || cvrs[0].CVRPct != 10 {
		t.Errorf("cvrs[0] = %+v, want s2 at 10%%", cvrs[0])
	}
	if cvrs[1].SellerName != "s1" || cvrs[1].CVRPct != 2 {
		t.Errorf("cvrs[1] = %+v, want s1 at 2%%", cvrs[1])
	}
}

// Product-to-seller mapping keeps the first seller seen per product code.
func TestSellerCVRsFirstSeenProductMapping(t *testing.T) {
	all := []models.OrderRow{
		orderRow("first", "c1", 100),
		orderRow("second", "c2", 100),
	}
	all[0].ProductCode = "P1"
	all[1].ProductCode = "P1"

	cvrs := SellerCVRs(all, DeriveRows(all), []ClickCount{{ProductCode: "P1", Clicks: 10}})
	if len(cvrs) != 1 {
		t.Fatalf("expected 1 seller, got %d", len(cvrs))
	}
	if cvrs[0].SellerName != "first" {
		t.Fatalf("clicks joined to %q, want the first-seen seller", cvrs[0].SellerName)
	}
}
