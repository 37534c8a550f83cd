package gestao

import "sort"

// Breakeven is the tri-state result of a breakeven computation. A zero value
// with Achievable=false means the breakeven cannot be reached (margin at or
// below zero); a plain zero would be ambiguous with "already profitable".
type Breakeven struct {
	Value      Money
	Achievable bool
}

// ContributionMarginRatio returns (revenue − variableCost) / revenue, or
// zero when there is no revenue. The explicit zero keeps division-by-zero
// from propagating as a non-finite value.
func ContributionMarginRatio(t Totals) Quantity {
	if !t.Revenue.IsPositive() {
		return Q(0)
	}
	return t.Revenue.Sub(t.CostTotal).DivPrice(t.Revenue)
}

// BreakevenRevenue returns the revenue at which the contribution margin
// exactly covers the fixed costs. It is unachievable when the margin ratio
// is not strictly positive.
func BreakevenRevenue(fixedCosts Money, marginRatio Quantity) Breakeven {
	if !marginRatio.IsPositive() {
		return Breakeven{}
	}
	return Breakeven{Value: fixedCosts.Div(marginRatio), Achievable: true}
}

// BreakevenQuantity returns the number of units covering the fixed costs at
// the given unit margin. It is unachievable when the unit margin is not
// strictly positive, regardless of the fixed costs.
func BreakevenQuantity(fixedCosts, unitMargin Money) (Quantity, bool) {
	if !unitMargin.IsPositive() {
		return Q(0), false
	}
	return fixedCosts.DivPrice(unitMargin), true
}

// Difficulty is the qualitative label for a breakeven quantity.
type Difficulty int

const (
	Low Difficulty = iota
	Medium
	High
	Impossible
)

func (d Difficulty) String() string {
	switch d {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	case Impossible:
		return "Impossible"
	default:
		return "unknown"
	}
}

// DifficultyFor labels a breakeven quantity: below 10 units is Low, up to 30
// is Medium, above is High. An unachievable breakeven is Impossible.
func DifficultyFor(units Quantity, achievable bool) Difficulty {
	switch {
	case !achievable:
		return Impossible
	case units.LessThan(Q(10)):
		return Low
	case !units.GreaterThan(Q(30)):
		return Medium
	default:
		return High
	}
}

// ProductBreakeven answers, for one product, how many units must be sold to
// cover the whole fixed cost structure, and what revenue that represents.
type ProductBreakeven struct {
	Product       string
	SalePrice     Money
	UnitCost      Money
	UnitMargin    Money
	Units         Quantity
	RevenueTarget Money // Units × SalePrice, zero when unachievable
	Achievable    bool
	Difficulty    Difficulty
}

// BreakevenByProduct computes the per-product breakeven table against the
// given fixed costs, sorted by ascending unit count with unachievable
// entries last.
func BreakevenByProduct(products []Product, fixedCosts Money) []ProductBreakeven {
	entries := make([]ProductBreakeven, 0, len(products))
	for _, p := range products {
		units, achievable := BreakevenQuantity(fixedCosts, p.UnitMargin)
		entry := ProductBreakeven{
			Product:    p.Name,
			SalePrice:  p.SalePrice,
			UnitCost:   p.TotalUnitCost,
			UnitMargin: p.UnitMargin,
			Units:      units,
			Achievable: achievable,
			Difficulty: DifficultyFor(units, achievable),
		}
		if achievable {
			entry.RevenueTarget = p.SalePrice.Mul(units)
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Achievable != entries[j].Achievable {
			return entries[i].Achievable
		}
		return entries[i].Units.LessThan(entries[j].Units)
	})
	return entries
}
