package gestao

// DefaultMarginRatio is the contribution margin ratio assumed by the
// simulator when no sale history exists to derive one from.
const DefaultMarginRatio = 0.40

// DeriveMarginRatio computes the historical contribution margin ratio from
// aggregated totals, falling back to DefaultMarginRatio when there is no
// revenue. The boolean reports whether the ratio came from actual data.
func DeriveMarginRatio(t Totals) (Quantity, bool) {
	if !t.Revenue.IsPositive() {
		return Q(DefaultMarginRatio), false
	}
	return t.Margin.DivPrice(t.Revenue), true
}

// Scenario is a what-if adjustment over a baseline month: percentage shifts
// in sales volume, selling price and operating cost.
type Scenario struct {
	BaselineRevenue Money
	MarginRatio     Quantity // contribution margin ratio of the baseline, 0..1
	FixedCosts      Money
	VolumePct       float64
	PricePct        float64
	CostPct         float64
}

// ScenarioResult is the recomputed month under the scenario's adjustments.
type ScenarioResult struct {
	Revenue      Money
	VariableCost Money
	Margin       Money
	Profit       Money
	NetMargin    Percent // zero when the simulated revenue is zero
}

// Simulate recomputes revenue, variable cost and profit under the scenario.
// Volume scales both revenue and variable cost; price scales only revenue;
// cost scales only the variable cost.
func (sc Scenario) Simulate() ScenarioResult {
	volume := Q(1 + sc.VolumePct/100)
	price := Q(1 + sc.PricePct/100)
	cost := Q(1 + sc.CostPct/100)

	revenue := sc.BaselineRevenue.Mul(volume).Mul(price)
	baseVariable := sc.BaselineRevenue.Mul(Q(1).Sub(sc.MarginRatio))
	variable := baseVariable.Mul(volume).Mul(cost)
	margin := revenue.Sub(variable)
	profit := margin.Sub(sc.FixedCosts)

	res := ScenarioResult{
		Revenue:      revenue,
		VariableCost: variable,
		Margin:       margin,
		Profit:       profit,
	}
	if revenue.IsPositive() {
		res.NetMargin = Percent(100 * profit.AsFloat() / revenue.AsFloat())
	}
	return res
}

// BaselineProfit is the profit of the unadjusted baseline, used to show the
// delta a scenario produces.
func (sc Scenario) BaselineProfit() Money {
	return sc.BaselineRevenue.Mul(sc.MarginRatio).Sub(sc.FixedCosts)
}
