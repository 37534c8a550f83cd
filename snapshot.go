package gestao

import (
	"encoding/json"
	"fmt"
	"io"
)

// Snapshot is the complete serializable state of the store at a point in
// time. It is the entire persistence surface of the engine: loading a
// snapshot replaces the store wholesale. Format versioning is not handled.
type Snapshot struct {
	FixedCosts []FixedCost `json:"fixedCosts"`
	Products   []Product   `json:"products"`
	Sales      []Sale      `json:"sales"`
	Target     Money       `json:"target"`
}

// ToSnapshot copies the whole store state into a snapshot document.
func (s *Store) ToSnapshot() Snapshot {
	return Snapshot{
		FixedCosts: s.FixedCosts(),
		Products:   s.Products(),
		Sales:      s.Sales(),
		Target:     s.target,
	}
}

// FromSnapshot replaces the whole store state with the document's.
// A zero target falls back to the default goal, matching the document
// defaulting rule.
func (s *Store) FromSnapshot(doc Snapshot) {
	s.fixedCosts = append([]FixedCost(nil), doc.FixedCosts...)
	s.products = append([]Product(nil), doc.Products...)
	s.sales = append([]Sale(nil), doc.Sales...)
	if doc.Target.IsZero() {
		s.target = DefaultTarget
	} else {
		s.target = doc.Target
	}
}

// EncodeSnapshot writes the snapshot as an indented JSON document.
func EncodeSnapshot(w io.Writer, snap Snapshot) error {
	// Keep the document diff-friendly: empty collections encode as [] and
	// top-level keys in a fixed order.
	if snap.FixedCosts == nil {
		snap.FixedCosts = []FixedCost{}
	}
	if snap.Products == nil {
		snap.Products = []Product{}
	}
	if snap.Sales == nil {
		snap.Sales = []Sale{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot document. Missing fields take their
// documented defaults: empty collections and the default revenue target.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var doc struct {
		FixedCosts []FixedCost `json:"fixedCosts"`
		Products   []Product   `json:"products"`
		Sales      []Sale      `json:"sales"`
		Target     *Money      `json:"target"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("cannot parse snapshot document: %w", err)
	}
	snap := Snapshot{
		FixedCosts: doc.FixedCosts,
		Products:   doc.Products,
		Sales:      doc.Sales,
		Target:     DefaultTarget,
	}
	if doc.Target != nil {
		snap.Target = *doc.Target
	}
	return snap, nil
}
