// Package gestao provides the financial engine for a small venue and events
// business: fixed costs, a product catalog with per-item cost breakdowns,
// recorded sales, and the profitability metrics derived from them.
//
// The core functionalities include:
//   - Record Store: in-memory collections of fixed costs, products, sales and
//     a monthly revenue target, owned by the caller and passed explicitly to
//     every operation.
//   - Catalog Engine: unit cost and unit margin computed from a product's
//     cost lines, with validation at the save boundary.
//   - Sales Aggregator: period and per-product aggregation of revenue,
//     variable cost and gross margin over the recorded sales.
//   - Breakeven Calculator: breakeven revenue and breakeven unit quantity
//     with an explicit achievability flag instead of sentinel zeros.
//   - DRE Builder: a five-line managerial income statement with vertical
//     (percentage-of-revenue) analysis.
//   - Scenario Simulator: what-if adjustments of volume, price and cost over
//     a baseline month.
//   - Data Persistence: encoding and decoding the whole store as a single
//     human-readable JSON snapshot document.
//
// This package serves as the foundational logic for the `gapp` command-line
// tool; rendering and interactive editing are the caller's concern.
package gestao
