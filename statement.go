package gestao

import "time"

// StatementLine is one line of the managerial income statement, with its
// vertical-analysis share of gross revenue.
type StatementLine struct {
	Label    string
	Amount   Money
	Vertical Percent
}

// Statement is the five-line DRE built from aggregated totals over a period:
// gross revenue, variable costs, contribution margin, fixed costs and net
// result. Costs carry a negative sign so each line is the sum of the lines
// above it.
type Statement struct {
	Lines        [5]StatementLine
	ActiveMonths int       // distinct months with sales the fixed cost was charged for
	Breakeven    Breakeven // accumulated breakeven revenue over the period
	Meaningful   bool      // false when there is no revenue; percentages are then not trustworthy
}

// GrossRevenue returns line 1 of the statement.
func (st Statement) GrossRevenue() Money { return st.Lines[0].Amount }

// ContributionMargin returns line 3 of the statement.
func (st Statement) ContributionMargin() Money { return st.Lines[2].Amount }

// NetResult returns line 5 of the statement.
func (st Statement) NetResult() Money { return st.Lines[4].Amount }

// BuildStatement assembles the DRE from period totals. The monthly fixed
// cost is charged once per active month, floored at one month so an empty
// period still carries the standing structure. Vertical percentages divide
// by gross revenue floored at 1; when there is no revenue they are flagged
// as not meaningful rather than trusted.
func BuildStatement(t Totals, fixedMonthly Money, activeMonths int) Statement {
	if activeMonths < 1 {
		activeMonths = 1
	}
	fixed := fixedMonthly.Mul(Q(activeMonths))
	margin := t.Revenue.Sub(t.CostTotal)
	net := margin.Sub(fixed)

	st := Statement{
		ActiveMonths: activeMonths,
		Meaningful:   t.Revenue.IsPositive(),
	}

	divisor := t.Revenue
	if !divisor.IsPositive() {
		divisor = M(1)
	}
	vertical := func(amount Money) Percent {
		return Percent(100 * amount.AsFloat() / divisor.AsFloat())
	}

	st.Lines = [5]StatementLine{
		{Label: "1. Gross Revenue", Amount: t.Revenue, Vertical: vertical(t.Revenue)},
		{Label: "2. (-) Variable Costs", Amount: t.CostTotal.Neg(), Vertical: vertical(t.CostTotal.Neg())},
		{Label: "= 3. Contribution Margin", Amount: margin, Vertical: vertical(margin)},
		{Label: "4. (-) Fixed Costs", Amount: fixed.Neg(), Vertical: vertical(fixed.Neg())},
		{Label: "= 5. Net Result", Amount: net, Vertical: vertical(net)},
	}

	st.Breakeven = BreakevenRevenue(fixed, ContributionMarginRatio(t))
	return st
}

// Statement builds the DRE for a span of the sale history: a single month,
// a whole year (zero month), or the full history (zero year).
func (s *Store) Statement(year int, month time.Month) Statement {
	sales := s.sales
	if year != 0 {
		sales = FilterByPeriod(sales, year, month)
	}
	return BuildStatement(AggregateTotals(sales), s.TotalFixedCost(), ActiveMonths(sales))
}
