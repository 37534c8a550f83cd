package gestao

import (
	"sort"
	"time"
)

// RecordSale appends a sale of the named product, freezing the product's
// current sale price and unit cost into the record. It fails with a
// ValidationError when the quantity is below one or the product is not in
// the catalog.
func (s *Store) RecordSale(product string, quantity int, on Date) (Sale, error) {
	if quantity < 1 {
		return Sale{}, invalidf("quantity must be at least 1, got %d", quantity)
	}
	p, ok := s.Product(product)
	if !ok {
		return Sale{}, invalidf("product %q is not in the catalog", product)
	}

	qty := Q(quantity)
	sale := Sale{
		ID:          s.nextSaleID(),
		Date:        on,
		Month:       int(on.Month()),
		Year:        on.Year(),
		Product:     p.Name,
		Quantity:    quantity,
		UnitPrice:   p.SalePrice,
		UnitCost:    p.TotalUnitCost,
		Revenue:     p.SalePrice.Mul(qty),
		CostTotal:   p.TotalUnitCost.Mul(qty),
		GrossMargin: p.SalePrice.Sub(p.TotalUnitCost).Mul(qty),
	}
	s.sales = append(s.sales, sale)
	return sale, nil
}

// nextSaleID derives a creation-timestamp identifier, bumped when two sales
// land on the same millisecond.
func (s *Store) nextSaleID() int64 {
	id := time.Now().UnixMilli()
	if n := len(s.sales); n > 0 && s.sales[n-1].ID >= id {
		id = s.sales[n-1].ID + 1
	}
	return id
}

// FilterByPeriod keeps the sales matching the given year and month.
// A zero month selects the whole year.
func FilterByPeriod(sales []Sale, year int, month time.Month) []Sale {
	kept := make([]Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.Year != year {
			continue
		}
		if month != 0 && sale.Month != int(month) {
			continue
		}
		kept = append(kept, sale)
	}
	return kept
}

// Totals is the aggregate of a list of sales.
type Totals struct {
	Revenue   Money
	CostTotal Money
	Margin    Money
}

// AggregateTotals sums revenue, variable cost and gross margin over the
// sales. An empty input yields an all-zero result.
func AggregateTotals(sales []Sale) Totals {
	var t Totals
	for _, sale := range sales {
		t.Revenue = t.Revenue.Add(sale.Revenue)
		t.CostTotal = t.CostTotal.Add(sale.CostTotal)
		t.Margin = t.Margin.Add(sale.GrossMargin)
	}
	return t
}

// Add combines two aggregates. Aggregation is additive: the aggregate of a
// concatenation equals the sum of the individual aggregates.
func (t Totals) Add(u Totals) Totals {
	return Totals{
		Revenue:   t.Revenue.Add(u.Revenue),
		CostTotal: t.CostTotal.Add(u.CostTotal),
		Margin:    t.Margin.Add(u.Margin),
	}
}

// ProductTotals is the per-product aggregate used by the ranking and
// efficiency reports.
type ProductTotals struct {
	Product   string
	Revenue   Money
	Margin    Money
	Quantity  int
	MarginPct Percent // margin as a share of revenue, 0 when revenue is 0
}

// AggregateByProduct groups the sales by product name, summing revenue,
// gross margin and quantity. The result is sorted by name so output is
// stable for a fixed input. A sale referencing a deleted product still
// aggregates through its frozen values.
func AggregateByProduct(sales []Sale) []ProductTotals {
	index := make(map[string]int)
	var groups []ProductTotals
	for _, sale := range sales {
		i, ok := index[sale.Product]
		if !ok {
			i = len(groups)
			index[sale.Product] = i
			groups = append(groups, ProductTotals{Product: sale.Product})
		}
		groups[i].Revenue = groups[i].Revenue.Add(sale.Revenue)
		groups[i].Margin = groups[i].Margin.Add(sale.GrossMargin)
		groups[i].Quantity += sale.Quantity
	}
	for i := range groups {
		if groups[i].Revenue.IsPositive() {
			groups[i].MarginPct = Percent(100 * groups[i].Margin.AsFloat() / groups[i].Revenue.AsFloat())
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Product < groups[j].Product })
	return groups
}

// ActiveMonths counts the distinct (year, month) pairs with at least one
// sale. Fixed costs are charged once per active month, not once per calendar
// month in range.
func ActiveMonths(sales []Sale) int {
	type ym struct{ y, m int }
	seen := make(map[ym]struct{})
	for _, sale := range sales {
		seen[ym{sale.Year, sale.Month}] = struct{}{}
	}
	return len(seen)
}

// MonthlyRevenue returns the revenue of each month of the given year, for
// the realized-versus-target evolution report.
func MonthlyRevenue(sales []Sale, year int) [12]Money {
	var months [12]Money
	for _, sale := range sales {
		if sale.Year == year {
			months[sale.Month-1] = months[sale.Month-1].Add(sale.Revenue)
		}
	}
	return months
}
