package gestao

import (
	"sort"
	"time"
)

// Dashboard is the monthly overview: the headline figures of one
// (year, month) against the fixed cost structure and the revenue target.
type Dashboard struct {
	Year  int
	Month time.Month

	Revenue      Money
	VariableCost Money
	FixedCost    Money
	TotalCost    Money
	Profit       Money // with no sales this is minus the fixed cost
	NetMargin    Percent

	Breakeven      Breakeven
	AboveBreakeven Money // revenue minus breakeven revenue, when achievable

	Target           Money
	TargetAttainment Percent // revenue over target, target floored at 1

	MonthlyRevenue [12]Money // the year's realized-versus-target series
}

// BuildDashboard assembles the overview for the given month. Every figure is
// recomputed from the store; nothing is cached between calls.
func (s *Store) BuildDashboard(year int, month time.Month) Dashboard {
	fixed := s.TotalFixedCost()
	totals := AggregateTotals(FilterByPeriod(s.sales, year, month))

	d := Dashboard{
		Year:           year,
		Month:          month,
		Revenue:        totals.Revenue,
		VariableCost:   totals.CostTotal,
		FixedCost:      fixed,
		TotalCost:      fixed.Add(totals.CostTotal),
		Profit:         totals.Revenue.Sub(totals.CostTotal).Sub(fixed),
		Target:         s.target,
		MonthlyRevenue: MonthlyRevenue(s.sales, year),
	}

	if totals.Revenue.IsPositive() {
		d.NetMargin = Percent(100 * d.Profit.AsFloat() / totals.Revenue.AsFloat())
	}

	d.Breakeven = BreakevenRevenue(fixed, ContributionMarginRatio(totals))
	if d.Breakeven.Achievable {
		d.AboveBreakeven = totals.Revenue.Sub(d.Breakeven.Value)
	}

	goal := s.target
	if !goal.IsPositive() {
		goal = M(1)
	}
	d.TargetAttainment = Percent(100 * totals.Revenue.AsFloat() / goal.AsFloat())

	return d
}

// FixedCostAnalysis is the standing cost report: the committed monthly
// total, its annual projection, and the per-account ranking.
type FixedCostAnalysis struct {
	MonthlyTotal Money
	AnnualTotal  Money // MonthlyTotal × 12
	Ranking      []FixedCost
}

// BuildFixedCostAnalysis ranks the fixed costs by descending amount.
func (s *Store) BuildFixedCostAnalysis() FixedCostAnalysis {
	ranking := s.FixedCosts()
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].MonthlyAmount.GreaterThan(ranking[j].MonthlyAmount)
	})
	monthly := s.TotalFixedCost()
	return FixedCostAnalysis{
		MonthlyTotal: monthly,
		AnnualTotal:  monthly.Mul(Q(12)),
		Ranking:      ranking,
	}
}
