package gestao

import (
	"testing"
	"time"
)

func TestBuildStatement(t *testing.T) {
	totals := Totals{Revenue: M(10000), CostTotal: M(6000), Margin: M(4000)}
	st := BuildStatement(totals, M(1500), 2)

	if !st.Meaningful {
		t.Error("statement with revenue flagged not meaningful")
	}
	if st.ActiveMonths != 2 {
		t.Errorf("ActiveMonths = %d, want 2", st.ActiveMonths)
	}

	wantAmounts := []Money{M(10000), M(-6000), M(4000), M(-3000), M(1000)}
	wantVerticals := []Percent{100, -60, 40, -30, 10}
	for i, line := range st.Lines {
		if !line.Amount.Equal(wantAmounts[i]) {
			t.Errorf("line %d amount = %s, want %s", i+1, line.Amount, wantAmounts[i])
		}
		if !line.Vertical.Equal(wantVerticals[i]) {
			t.Errorf("line %d vertical = %s, want %s", i+1, line.Vertical, wantVerticals[i])
		}
	}

	// each subtotal is the sum of the lines above it
	if !st.ContributionMargin().Equal(st.Lines[0].Amount.Add(st.Lines[1].Amount)) {
		t.Error("contribution margin is not revenue plus variable costs")
	}
	if !st.NetResult().Equal(st.ContributionMargin().Add(st.Lines[3].Amount)) {
		t.Error("net result is not contribution margin plus fixed costs")
	}

	// breakeven accumulates the charged fixed cost: 3000 / 0.4
	if !st.Breakeven.Achievable || !st.Breakeven.Value.Equal(M(7500)) {
		t.Errorf("statement breakeven = %+v, want 7500 achievable", st.Breakeven)
	}
}

func TestBuildStatement_EmptyPeriod(t *testing.T) {
	st := BuildStatement(Totals{}, M(1500), 0)

	if st.Meaningful {
		t.Error("statement without revenue flagged meaningful")
	}
	// the fixed cost is still charged for one month
	if st.ActiveMonths != 1 {
		t.Errorf("ActiveMonths = %d, want floor of 1", st.ActiveMonths)
	}
	if !st.Lines[3].Amount.Equal(M(-1500)) {
		t.Errorf("fixed cost line = %s, want -1500", st.Lines[3].Amount)
	}
	if !st.NetResult().Equal(M(-1500)) {
		t.Errorf("net result = %s, want -1500", st.NetResult())
	}
	if st.Breakeven.Achievable {
		t.Error("breakeven achievable without any margin")
	}
}

func TestBuildStatement_NegativeMargin(t *testing.T) {
	totals := Totals{Revenue: M(1000), CostTotal: M(1400), Margin: M(-400)}
	st := BuildStatement(totals, M(500), 1)

	if !st.ContributionMargin().Equal(M(-400)) {
		t.Errorf("contribution margin = %s, want -400", st.ContributionMargin())
	}
	if !st.NetResult().Equal(M(-900)) {
		t.Errorf("net result = %s, want -900", st.NetResult())
	}
	if !st.Lines[2].Vertical.Equal(Percent(-40)) {
		t.Errorf("margin vertical = %s, want -40%%", st.Lines[2].Vertical)
	}
	if st.Breakeven.Achievable {
		t.Error("breakeven achievable with a negative contribution margin")
	}
}

func TestStoreStatement_Periods(t *testing.T) {
	store := storeWithCatalog(t)
	if err := store.AddFixedCost("Rent", M(1100)); err != nil {
		t.Fatal(err)
	}
	// Wedding: price 5000 cost 3000; Kids Party: price 800 cost 300.
	if _, err := store.RecordSale("Wedding", 1, MustParseDate("2025-01-10")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordSale("Kids Party", 2, MustParseDate("2025-02-05")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordSale("Kids Party", 1, MustParseDate("2024-11-05")); err != nil {
		t.Fatal(err)
	}

	// single month: one active month of fixed costs
	jan := store.Statement(2025, time.January)
	if !jan.GrossRevenue().Equal(M(5000)) {
		t.Errorf("January revenue = %s, want 5000", jan.GrossRevenue())
	}
	if !jan.NetResult().Equal(M(900)) {
		t.Errorf("January net = %s, want 5000-3000-1100", jan.NetResult())
	}

	// whole year: two active months, fixed charged twice
	year := store.Statement(2025, 0)
	if year.ActiveMonths != 2 {
		t.Errorf("2025 active months = %d, want 2", year.ActiveMonths)
	}
	if !year.GrossRevenue().Equal(M(6600)) {
		t.Errorf("2025 revenue = %s, want 6600", year.GrossRevenue())
	}
	if !year.NetResult().Equal(M(800)) {
		t.Errorf("2025 net = %s, want 6600-3600-2200", year.NetResult())
	}

	// full history: three active months across both years
	all := store.Statement(0, 0)
	if all.ActiveMonths != 3 {
		t.Errorf("full-history active months = %d, want 3", all.ActiveMonths)
	}
	if !all.GrossRevenue().Equal(M(7400)) {
		t.Errorf("full-history revenue = %s, want 7400", all.GrossRevenue())
	}

	// empty month: standing structure only, not meaningful
	empty := store.Statement(2025, time.July)
	if empty.Meaningful {
		t.Error("empty month flagged meaningful")
	}
	if !empty.NetResult().Equal(M(-1100)) {
		t.Errorf("empty month net = %s, want -1100", empty.NetResult())
	}
}
