package renderer

import (
	"strings"
	"testing"
	"time"

	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// headings parses a rendered document and returns its heading texts, so the
// tests can assert the document structure instead of the full byte output.
func headings(t *testing.T, doc string) []string {
	t.Helper()
	source := []byte(doc)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var found []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(source))
				}
			}
			found = append(found, b.String())
		}
		return ast.WalkContinue, nil
	})
	return found
}

func mustContain(t *testing.T, doc string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(doc, want) {
			t.Errorf("document is missing %q:\n%s", want, doc)
		}
	}
}

// demoStore builds a store with enough history to exercise every report.
func demoStore(t *testing.T) *gestao.Store {
	t.Helper()
	store := gestao.NewStore()
	if err := store.AddFixedCost("Rent", gestao.M(2000)); err != nil {
		t.Fatal(err)
	}
	if err := store.AddFixedCost("Utilities", gestao.M(500)); err != nil {
		t.Fatal(err)
	}
	err := store.SaveProduct(gestao.ProductDraft{
		Name:      "Wedding",
		SalePrice: gestao.M(5000),
		CostLines: []gestao.CostLine{{Item: "Buffet", Amount: gestao.M(3000)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	err = store.SaveProduct(gestao.ProductDraft{Name: "Kids Party", SalePrice: gestao.M(800)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordSale("Wedding", 2, gestao.MustParseDate("2025-03-15")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordSale("Kids Party", 3, gestao.MustParseDate("2025-03-20")); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestDashboardMarkdown(t *testing.T) {
	store := demoStore(t)
	doc := DashboardMarkdown(store.BuildDashboard(2025, time.March))

	got := headings(t, doc)
	want := []string{"Dashboard — March 2025", "Breakeven", "Revenue Target", "Revenue by Month — 2025"}
	if len(got) != len(want) {
		t.Fatalf("headings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading %d = %q, want %q", i, got[i], want[i])
		}
	}

	mustContain(t, doc, "Revenue", "Profit", "above breakeven", "Attainment", "March")
}

func TestStatementMarkdown(t *testing.T) {
	store := demoStore(t)
	doc := StatementMarkdown(store.Statement(2025, time.March), 2025, time.March)

	mustContain(t, doc,
		"# Income Statement — March 2025",
		"1. Gross Revenue",
		"(-) Variable Costs",
		"**3. Contribution Margin**",
		"(-) Fixed Costs",
		"**5. Net Result**",
		"% of Revenue",
	)

	// title variants for wider periods
	if doc := StatementMarkdown(store.Statement(2025, 0), 2025, 0); !strings.Contains(doc, "# Income Statement — 2025") {
		t.Error("yearly title missing")
	}
	if doc := StatementMarkdown(store.Statement(0, 0), 0, 0); !strings.Contains(doc, "Full History") {
		t.Error("full-history title missing")
	}

	// an empty period renders the warning
	doc = StatementMarkdown(store.Statement(2025, time.July), 2025, time.July)
	mustContain(t, doc, "not meaningful")
}

func TestBreakevenMarkdown(t *testing.T) {
	store := demoStore(t)
	fixed := store.TotalFixedCost()
	doc := BreakevenMarkdown(gestao.BreakevenByProduct(store.Products(), fixed), fixed)

	mustContain(t, doc, "# Breakeven by Product", "Wedding", "Kids Party", "Difficulty", "Low")

	empty := BreakevenMarkdown(nil, fixed)
	mustContain(t, empty, "catalog is empty")
}

func TestFixedCostsMarkdown(t *testing.T) {
	store := demoStore(t)
	doc := FixedCostsMarkdown(store.BuildFixedCostAnalysis())

	mustContain(t, doc, "# Fixed Costs", "Rent", "Utilities", "**Total**", "Annual commitment")

	empty := FixedCostsMarkdown(gestao.NewStore().BuildFixedCostAnalysis())
	mustContain(t, empty, "No fixed costs registered")
}

func TestProductsMarkdown(t *testing.T) {
	store := demoStore(t)
	doc := ProductsMarkdown(store.Products())

	mustContain(t, doc, "# Catalog", "Wedding", "Kids Party", "Margin %")
	// only products with a breakdown get a cost section
	mustContain(t, doc, "## Wedding — Cost Breakdown", "Buffet")
	if strings.Contains(doc, "## Kids Party — Cost Breakdown") {
		t.Error("breakdown section rendered for a product without cost lines")
	}

	empty := ProductsMarkdown(nil)
	mustContain(t, empty, "catalog is empty")
}

func TestSalesMarkdown(t *testing.T) {
	store := demoStore(t)
	doc := SalesMarkdown(gestao.FilterByPeriod(store.Sales(), 2025, time.March), 2025, time.March)

	mustContain(t, doc, "# Sales — March 2025", "2025-03-15", "Wedding", "## By Product", "**Total**")

	empty := SalesMarkdown(nil, 2025, time.July)
	mustContain(t, empty, "No sales in the period")
}

func TestSimulationMarkdown(t *testing.T) {
	sc := gestao.Scenario{
		BaselineRevenue: gestao.M(10000),
		MarginRatio:     gestao.Q(0.4),
		FixedCosts:      gestao.M(3000),
		VolumePct:       10,
	}
	doc := SimulationMarkdown(sc, sc.Simulate(), true)

	mustContain(t, doc, "# Scenario Simulation", "volume +10.0%", "Baseline", "Scenario", "Delta", "**Profit**")
	if strings.Contains(doc, "No sale history") {
		t.Error("fallback note rendered for a derived ratio")
	}

	doc = SimulationMarkdown(sc, sc.Simulate(), false)
	mustContain(t, doc, "No sale history", "40% contribution margin")
}

// Every rendered document must stay parseable markdown.
func TestReportsParse(t *testing.T) {
	store := demoStore(t)
	fixed := store.TotalFixedCost()
	sc := gestao.Scenario{BaselineRevenue: gestao.M(10000), MarginRatio: gestao.Q(0.4), FixedCosts: fixed}

	docs := map[string]string{
		"dashboard":  DashboardMarkdown(store.BuildDashboard(2025, time.March)),
		"statement":  StatementMarkdown(store.Statement(2025, time.March), 2025, time.March),
		"breakeven":  BreakevenMarkdown(gestao.BreakevenByProduct(store.Products(), fixed), fixed),
		"fixedcosts": FixedCostsMarkdown(store.BuildFixedCostAnalysis()),
		"products":   ProductsMarkdown(store.Products()),
		"sales":      SalesMarkdown(store.Sales(), 0, 0),
		"simulation": SimulationMarkdown(sc, sc.Simulate(), true),
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			if strings.TrimSpace(doc) == "" {
				t.Fatal("empty document")
			}
			if got := headings(t, doc); len(got) == 0 {
				t.Errorf("document has no headings:\n%s", doc)
			}
		})
	}
}
