package gestao

import (
	"slices"
	"strings"
)

// DefaultTarget is the monthly revenue goal a fresh store starts with, and
// the value substituted when a snapshot document has no target field.
var DefaultTarget = M(35000)

// FixedCost is a recurring monthly expense independent of sales volume.
// It is not tied to any period; edits overwrite the whole list.
type FixedCost struct {
	Description   string `json:"description"`
	MonthlyAmount Money  `json:"monthlyAmount"`
}

// CostLine is one item of a product's cost breakdown. It is owned by its
// product and has no independent lifecycle.
type CostLine struct {
	Item   string `json:"item"`
	Amount Money  `json:"amount"`
}

// Product is a catalog entry. TotalUnitCost and UnitMargin are derived from
// CostLines and SalePrice at save time and never mutated independently.
type Product struct {
	Name          string     `json:"name"`
	SalePrice     Money      `json:"salePrice"`
	CostLines     []CostLine `json:"costLines"`
	TotalUnitCost Money      `json:"totalUnitCost"`
	UnitMargin    Money      `json:"unitMargin"`
}

// MarshalJSON implements the json.Marshaler interface for Product.
func (p Product) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Append("salePrice", p.SalePrice)
	w.Optional("costLines", p.CostLines)
	w.Append("totalUnitCost", p.TotalUnitCost)
	w.Append("unitMargin", p.UnitMargin)
	return w.MarshalJSON()
}

// Sale is one recorded sale. UnitPrice and UnitCost are frozen copies taken
// from the product at the moment of sale; deleting or editing the product
// later never alters them. Sales are append-only.
type Sale struct {
	ID          int64  `json:"id"`
	Date        Date   `json:"date"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Product     string `json:"product"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unitPrice"`
	UnitCost    Money  `json:"unitCost"`
	Revenue     Money  `json:"revenue"`
	CostTotal   Money  `json:"costTotal"`
	GrossMargin Money  `json:"grossMargin"`
}

// MarshalJSON implements the json.Marshaler interface for Sale.
func (s Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("date", s.Date)
	w.Append("month", s.Month)
	w.Append("year", s.Year)
	w.Append("product", s.Product)
	w.Append("quantity", s.Quantity)
	w.Append("unitPrice", s.UnitPrice)
	w.Append("unitCost", s.UnitCost)
	w.Append("revenue", s.Revenue)
	w.Append("costTotal", s.CostTotal)
	w.Append("grossMargin", s.GrossMargin)
	return w.MarshalJSON()
}

// Store holds the whole in-memory state: fixed costs, the product catalog,
// the sale history and the monthly revenue target. It is owned by the caller
// and passed explicitly to every engine operation; there are no globals.
//
// The store is not safe for concurrent use: the reference usage is a single
// session with a single writer.
type Store struct {
	fixedCosts []FixedCost
	products   []Product
	sales      []Sale
	target     Money
}

// NewStore creates an empty store with the default monthly revenue target.
func NewStore() *Store {
	return &Store{target: DefaultTarget}
}

// FixedCosts returns a copy of the fixed cost list, in insertion order.
func (s *Store) FixedCosts() []FixedCost {
	return slices.Clone(s.fixedCosts)
}

// ReplaceFixedCosts overwrites the whole fixed cost list, mirroring direct
// table editing. Rows with an empty description or a negative amount are
// silently discarded, the same policy applied to malformed cost lines.
func (s *Store) ReplaceFixedCosts(rows []FixedCost) {
	kept := make([]FixedCost, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Description) == "" || row.MonthlyAmount.IsNegative() {
			continue
		}
		kept = append(kept, row)
	}
	s.fixedCosts = kept
}

// AddFixedCost appends a fixed cost. It fails with a ValidationError when the
// description is empty or the amount is negative. An existing entry with the
// same description is overwritten.
func (s *Store) AddFixedCost(description string, amount Money) error {
	description = strings.TrimSpace(description)
	var errs []error
	if description == "" {
		errs = append(errs, errDescriptionEmpty)
	}
	if amount.IsNegative() {
		errs = append(errs, errAmountNegative)
	}
	if err := invalid(errs...); err != nil {
		return err
	}
	for i, fc := range s.fixedCosts {
		if fc.Description == description {
			s.fixedCosts[i].MonthlyAmount = amount
			return nil
		}
	}
	s.fixedCosts = append(s.fixedCosts, FixedCost{Description: description, MonthlyAmount: amount})
	return nil
}

// DeleteFixedCost removes the fixed cost with the given description.
// It returns ErrNotFound when no entry matches.
func (s *Store) DeleteFixedCost(description string) error {
	for i, fc := range s.fixedCosts {
		if fc.Description == description {
			s.fixedCosts = slices.Delete(s.fixedCosts, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

// TotalFixedCost sums the monthly amount over all fixed costs.
func (s *Store) TotalFixedCost() Money {
	var total Money
	for _, fc := range s.fixedCosts {
		total = total.Add(fc.MonthlyAmount)
	}
	return total
}

// Products returns a copy of the product catalog, in insertion order.
func (s *Store) Products() []Product {
	return slices.Clone(s.products)
}

// Product returns the catalog entry with the given name.
func (s *Store) Product(name string) (Product, bool) {
	for _, p := range s.products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// Sales returns a copy of the sale history, in recording order.
func (s *Store) Sales() []Sale {
	return slices.Clone(s.sales)
}

// DeleteLastSale removes and returns the most recently recorded sale. Only
// the last sale is deletable; it returns ErrNotFound on an empty history.
func (s *Store) DeleteLastSale() (Sale, error) {
	if len(s.sales) == 0 {
		return Sale{}, ErrNotFound
	}
	last := s.sales[len(s.sales)-1]
	s.sales = s.sales[:len(s.sales)-1]
	return last, nil
}

// Target returns the monthly revenue goal.
func (s *Store) Target() Money { return s.target }

// SetTarget updates the monthly revenue goal. It fails with a
// ValidationError when the value is negative.
func (s *Store) SetTarget(goal Money) error {
	if goal.IsNegative() {
		return invalidf("monthly revenue goal cannot be negative: %s", goal)
	}
	s.target = goal
	return nil
}

// Reset clears fixed costs, catalog and sales. The target is kept, matching
// the original reset behavior.
func (s *Store) Reset() {
	s.fixedCosts = nil
	s.products = nil
	s.sales = nil
}
