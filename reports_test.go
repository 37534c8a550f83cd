package gestao

import (
	"testing"
	"time"
)

func TestBuildDashboard(t *testing.T) {
	store := storeWithCatalog(t)
	if err := store.AddFixedCost("Rent", M(2000)); err != nil {
		t.Fatal(err)
	}
	if err := store.SetTarget(M(20000)); err != nil {
		t.Fatal(err)
	}
	// March 2025: 2 weddings at 5000/3000 -> revenue 10000, variable 6000.
	if _, err := store.RecordSale("Wedding", 2, MustParseDate("2025-03-15")); err != nil {
		t.Fatal(err)
	}
	// Noise in another month and year, must not leak into March.
	if _, err := store.RecordSale("Kids Party", 5, MustParseDate("2025-04-01")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordSale("Kids Party", 1, MustParseDate("2024-03-15")); err != nil {
		t.Fatal(err)
	}

	d := store.BuildDashboard(2025, time.March)

	if !d.Revenue.Equal(M(10000)) || !d.VariableCost.Equal(M(6000)) {
		t.Errorf("period figures = %s/%s, want 10000/6000", d.Revenue, d.VariableCost)
	}
	if !d.TotalCost.Equal(M(8000)) {
		t.Errorf("TotalCost = %s, want 8000", d.TotalCost)
	}
	if !d.Profit.Equal(M(2000)) {
		t.Errorf("Profit = %s, want 2000", d.Profit)
	}
	if !d.NetMargin.Equal(Percent(20)) {
		t.Errorf("NetMargin = %s, want 20%%", d.NetMargin)
	}

	// margin ratio 0.4: breakeven at 2000/0.4 = 5000, March is 5000 above it
	if !d.Breakeven.Achievable || !d.Breakeven.Value.Equal(M(5000)) {
		t.Errorf("Breakeven = %+v, want 5000 achievable", d.Breakeven)
	}
	if !d.AboveBreakeven.Equal(M(5000)) {
		t.Errorf("AboveBreakeven = %s, want 5000", d.AboveBreakeven)
	}

	if !d.TargetAttainment.Equal(Percent(50)) {
		t.Errorf("TargetAttainment = %s, want 50%%", d.TargetAttainment)
	}

	// the yearly series covers the dashboard's year only
	if !d.MonthlyRevenue[2].Equal(M(10000)) || !d.MonthlyRevenue[3].Equal(M(4000)) {
		t.Errorf("MonthlyRevenue = %v, want March 10000 April 4000", d.MonthlyRevenue)
	}
}

func TestBuildDashboard_NoSales(t *testing.T) {
	store := NewStore()
	if err := store.AddFixedCost("Rent", M(2000)); err != nil {
		t.Fatal(err)
	}

	d := store.BuildDashboard(2025, time.March)

	// with nothing sold the month loses exactly the fixed structure
	if !d.Profit.Equal(M(-2000)) {
		t.Errorf("Profit = %s, want -2000", d.Profit)
	}
	if !d.NetMargin.Equal(Percent(0)) {
		t.Errorf("NetMargin = %s, want 0 on zero revenue", d.NetMargin)
	}
	if d.Breakeven.Achievable {
		t.Error("breakeven achievable without a margin ratio")
	}
	if !d.AboveBreakeven.IsZero() {
		t.Errorf("AboveBreakeven = %s, want zero when unachievable", d.AboveBreakeven)
	}
	if !d.TargetAttainment.Equal(Percent(0)) {
		t.Errorf("TargetAttainment = %s, want 0", d.TargetAttainment)
	}
}

func TestBuildDashboard_ZeroTarget(t *testing.T) {
	store := storeWithCatalog(t)
	if err := store.SetTarget(M(0)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordSale("Kids Party", 1, MustParseDate("2025-03-15")); err != nil {
		t.Fatal(err)
	}

	// the divisor is floored at 1 so attainment stays finite
	d := store.BuildDashboard(2025, time.March)
	if !d.TargetAttainment.Equal(Percent(80000)) {
		t.Errorf("TargetAttainment = %s, want 800/1 as a percentage", d.TargetAttainment)
	}
}

func TestBuildFixedCostAnalysis(t *testing.T) {
	store := NewStore()
	for _, fc := range []FixedCost{
		{Description: "Utilities", MonthlyAmount: M(450)},
		{Description: "Rent", MonthlyAmount: M(2000)},
		{Description: "Insurance", MonthlyAmount: M(450)},
		{Description: "Internet", MonthlyAmount: M(120)},
	} {
		if err := store.AddFixedCost(fc.Description, fc.MonthlyAmount); err != nil {
			t.Fatal(err)
		}
	}

	a := store.BuildFixedCostAnalysis()
	if !a.MonthlyTotal.Equal(M(3020)) {
		t.Errorf("MonthlyTotal = %s, want 3020", a.MonthlyTotal)
	}
	if !a.AnnualTotal.Equal(M(36240)) {
		t.Errorf("AnnualTotal = %s, want 36240", a.AnnualTotal)
	}

	got := make([]string, len(a.Ranking))
	for i, fc := range a.Ranking {
		got[i] = fc.Description
	}
	// descending by amount; ties keep insertion order
	want := []string{"Rent", "Utilities", "Insurance", "Internet"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ranking = %v, want %v", got, want)
		}
	}
}
