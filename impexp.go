package gestao

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file handles the legacy backup format: the JSON documents produced by
// the original spreadsheet-style app, with Portuguese keys
// ("custos_fixos"/"descricao"/"valor", "produtos"/"nome"/"preco_venda",
// "vendas"/"faturamento", "meta"). ImportLegacy converts such a document
// into a Snapshot so old backups keep loading.

// ImportLegacy reads a legacy backup document from r and converts it into a
// snapshot. Missing sections take the same defaults as a native snapshot.
func ImportLegacy(r io.Reader) (Snapshot, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return Snapshot{}, fmt.Errorf("cannot parse legacy backup: %w", err)
	}

	snap := Snapshot{Target: DefaultTarget}

	for _, row := range jlist(jobj, "$.custos_fixos") {
		snap.FixedCosts = append(snap.FixedCosts, FixedCost{
			Description:   jstr(row, "descricao"),
			MonthlyAmount: jmoney(row, "valor"),
		})
	}

	for _, row := range jlist(jobj, "$.produtos") {
		product := Product{
			Name:          jstr(row, "nome"),
			SalePrice:     jmoney(row, "preco_venda"),
			TotalUnitCost: jmoney(row, "custo_total"),
		}
		for _, line := range jlist(row, "$.custos_lista") {
			product.CostLines = append(product.CostLines, CostLine{
				Item:   jstr(line, "item"),
				Amount: jmoney(line, "valor"),
			})
		}
		// The legacy document stores the margin too, but it is a derived
		// field: recompute it so the invariant holds after import.
		product.UnitMargin = ComputeMargin(product.SalePrice, product.TotalUnitCost)
		snap.Products = append(snap.Products, product)
	}

	for _, row := range jlist(jobj, "$.vendas") {
		day, err := ParseDate(jstr(row, "data"))
		if err != nil {
			return Snapshot{}, fmt.Errorf("legacy sale has an invalid date: %w", err)
		}
		sale := Sale{
			// legacy ids are fractional epoch seconds; keep millisecond precision
			ID:          int64(jfloat(row, "id_venda") * 1000),
			Date:        day,
			Month:       jint(row, "mes"),
			Year:        jint(row, "ano"),
			Product:     jstr(row, "produto"),
			Quantity:    jint(row, "qtd"),
			UnitPrice:   jmoney(row, "preco_unitario"),
			UnitCost:    jmoney(row, "custo_unitario"),
			Revenue:     jmoney(row, "faturamento"),
			CostTotal:   jmoney(row, "custo_total"),
			GrossMargin: jmoney(row, "margem_total"),
		}
		snap.Sales = append(snap.Sales, sale)
	}

	if meta := jfloat(jobj, "meta"); meta != 0 {
		snap.Target = M(meta)
	}
	return snap, nil
}

// jlist evaluates a jsonpath expression expected to yield a list; a missing
// section yields an empty list.
func jlist(jobj any, path string) []any {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	list, _ := jval.([]any)
	return list
}

// jfloat reads a numeric field, tolerating its absence as zero.
func jfloat(jobj any, key string) float64 {
	m, ok := jobj.(map[string]any)
	if !ok {
		return 0
	}
	val, _ := m[key].(float64)
	return val
}

func jint(jobj any, key string) int { return int(jfloat(jobj, key)) }

func jstr(jobj any, key string) string {
	m, ok := jobj.(map[string]any)
	if !ok {
		return ""
	}
	val, _ := m[key].(string)
	return val
}

func jmoney(jobj any, key string) Money {
	return M(decimal.NewFromFloat(jfloat(jobj, key)))
}
