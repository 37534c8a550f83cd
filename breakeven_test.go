package gestao

import "testing"

func TestContributionMarginRatio(t *testing.T) {
	testCases := []struct {
		name   string
		totals Totals
		want   Quantity
	}{
		{name: "no revenue", totals: Totals{}, want: Q(0)},
		{
			name:   "forty percent",
			totals: Totals{Revenue: M(10000), CostTotal: M(6000)},
			want:   Q(0.4),
		},
		{
			name:   "costs above revenue",
			totals: Totals{Revenue: M(1000), CostTotal: M(1500)},
			want:   Q(-0.5),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ContributionMarginRatio(tc.totals)
			if !got.Equal(tc.want) {
				t.Errorf("ContributionMarginRatio() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestBreakevenRevenue(t *testing.T) {
	got := BreakevenRevenue(M(3000), Q(0.4))
	if !got.Achievable {
		t.Fatal("breakeven reported unachievable with a positive margin ratio")
	}
	if !got.Value.Equal(M(7500)) {
		t.Errorf("breakeven revenue = %s, want 7500", got.Value)
	}

	// margin ratio at or below zero: unachievable, value stays zero
	for _, ratio := range []Quantity{Q(0), Q(-0.2)} {
		got := BreakevenRevenue(M(3000), ratio)
		if got.Achievable {
			t.Errorf("BreakevenRevenue(3000, %s) reported achievable", ratio)
		}
		if !got.Value.IsZero() {
			t.Errorf("unachievable breakeven carries a value: %s", got.Value)
		}
	}
}

func TestBreakevenQuantity(t *testing.T) {
	units, ok := BreakevenQuantity(M(3000), M(500))
	if !ok {
		t.Fatal("breakeven units reported unachievable with a positive margin")
	}
	if !units.Equal(Q(6)) {
		t.Errorf("breakeven units = %s, want 6", units)
	}

	// fractional results are not rounded, the label boundaries handle them
	units, _ = BreakevenQuantity(M(1000), M(300))
	if units.LessThan(Q(3.33)) || units.GreaterThan(Q(3.34)) {
		t.Errorf("breakeven units = %s, want 1000/300", units)
	}

	if _, ok := BreakevenQuantity(M(3000), M(0)); ok {
		t.Error("zero unit margin reported achievable")
	}
	if _, ok := BreakevenQuantity(M(3000), M(-50)); ok {
		t.Error("negative unit margin reported achievable")
	}
	// even with no fixed costs, a non-positive margin stays unachievable
	if _, ok := BreakevenQuantity(M(0), M(0)); ok {
		t.Error("zero fixed costs with zero margin reported achievable")
	}
}

func TestDifficultyFor(t *testing.T) {
	testCases := []struct {
		name       string
		units      Quantity
		achievable bool
		want       Difficulty
	}{
		{name: "well below ten", units: Q(3), achievable: true, want: Low},
		{name: "just under ten", units: Q(9.9), achievable: true, want: Low},
		{name: "exactly ten", units: Q(10), achievable: true, want: Medium},
		{name: "fifteen", units: Q(15), achievable: true, want: Medium},
		{name: "exactly thirty", units: Q(30), achievable: true, want: Medium},
		{name: "just above thirty", units: Q(30.1), achievable: true, want: High},
		{name: "hundreds", units: Q(400), achievable: true, want: High},
		{name: "unachievable", units: Q(0), achievable: false, want: Impossible},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DifficultyFor(tc.units, tc.achievable); got != tc.want {
				t.Errorf("DifficultyFor(%s, %t) = %s, want %s", tc.units, tc.achievable, got, tc.want)
			}
		})
	}
}

func TestBreakevenByProduct(t *testing.T) {
	// fixed costs 3000: Wedding margin 500 -> 6 units, Kids Party margin
	// 200 -> 15 units, Charity margin 0 -> unachievable.
	products := []Product{
		{Name: "Kids Party", SalePrice: M(500), TotalUnitCost: M(300), UnitMargin: M(200)},
		{Name: "Charity Event", SalePrice: M(100), TotalUnitCost: M(100), UnitMargin: M(0)},
		{Name: "Wedding", SalePrice: M(2000), TotalUnitCost: M(1500), UnitMargin: M(500)},
	}

	entries := BreakevenByProduct(products, M(3000))
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// sorted ascending by units, unachievable last
	if entries[0].Product != "Wedding" || entries[1].Product != "Kids Party" || entries[2].Product != "Charity Event" {
		t.Fatalf("entry order = %q, %q, %q", entries[0].Product, entries[1].Product, entries[2].Product)
	}

	wedding := entries[0]
	if !wedding.Units.Equal(Q(6)) || wedding.Difficulty != Low {
		t.Errorf("Wedding = %s units %s, want 6 units Low", wedding.Units, wedding.Difficulty)
	}
	if !wedding.RevenueTarget.Equal(M(12000)) {
		t.Errorf("Wedding revenue target = %s, want 12000", wedding.RevenueTarget)
	}

	kids := entries[1]
	if !kids.Units.Equal(Q(15)) || kids.Difficulty != Medium {
		t.Errorf("Kids Party = %s units %s, want 15 units Medium", kids.Units, kids.Difficulty)
	}

	charity := entries[2]
	if charity.Achievable || charity.Difficulty != Impossible {
		t.Errorf("Charity Event = achievable %t %s, want unachievable Impossible", charity.Achievable, charity.Difficulty)
	}
	if !charity.RevenueTarget.IsZero() {
		t.Errorf("unachievable entry carries a revenue target: %s", charity.RevenueTarget)
	}
}
