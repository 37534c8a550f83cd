package gestao

import (
	"slices"
	"strings"
)

// ComputeUnitCost sums the amount over all cost lines. An empty breakdown
// yields zero.
func ComputeUnitCost(lines []CostLine) Money {
	var total Money
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	return total
}

// ComputeMargin returns salePrice minus unitCost. A negative margin is an
// undesirable but valid state, not an error.
func ComputeMargin(salePrice, unitCost Money) Money {
	return salePrice.Sub(unitCost)
}

// ProductDraft is the strongly-typed edit buffer validated at the save
// boundary. PriorName identifies the catalog entry being replaced; it is
// empty when creating a new product.
type ProductDraft struct {
	PriorName string
	Name      string
	SalePrice Money
	CostLines []CostLine
}

// filterCostLines drops malformed rows: an empty item or a negative amount
// is discarded, not an error. This is the documented forgiving-editor policy.
func filterCostLines(lines []CostLine) []CostLine {
	kept := make([]CostLine, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.Item) == "" || line.Amount.IsNegative() {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// SaveProduct validates the draft and writes it into the catalog. It fails
// with a ValidationError when the name is empty or the sale price is not
// strictly positive, and when the name would collide with another product
// (names are unique keys). On success the product matched by PriorName is
// replaced, or a new one is appended; TotalUnitCost and UnitMargin are
// recomputed from the filtered cost lines.
func (s *Store) SaveProduct(draft ProductDraft) error {
	name := strings.TrimSpace(draft.Name)
	var errs []error
	if name == "" {
		errs = append(errs, errNameEmpty)
	}
	if !draft.SalePrice.IsPositive() {
		errs = append(errs, errPriceNotPositive)
	}
	if err := invalid(errs...); err != nil {
		return err
	}

	if name != draft.PriorName {
		if _, exists := s.Product(name); exists {
			return invalidf("product %q already exists", name)
		}
	}

	lines := filterCostLines(draft.CostLines)
	unitCost := ComputeUnitCost(lines)
	product := Product{
		Name:          name,
		SalePrice:     draft.SalePrice,
		CostLines:     lines,
		TotalUnitCost: unitCost,
		UnitMargin:    ComputeMargin(draft.SalePrice, unitCost),
	}

	if draft.PriorName != "" {
		for i, p := range s.products {
			if p.Name == draft.PriorName {
				s.products[i] = product
				return nil
			}
		}
		return ErrNotFound
	}
	s.products = append(s.products, product)
	return nil
}

// DeleteProduct removes the product with the given name. It returns
// ErrNotFound when no product matches; callers that prefer a no-op can
// ignore that error. Historical sales keep their frozen price and cost.
func (s *Store) DeleteProduct(name string) error {
	for i, p := range s.products {
		if p.Name == name {
			s.products = slices.Delete(s.products, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}
