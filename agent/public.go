package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	gestao "github.com/rogerbarbosa001-svg/GestaoApp"
	"github.com/rogerbarbosa001-svg/GestaoApp/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// SnapshotFile is the snapshot the experts read the business data from.
var SnapshotFile = "gestao.json"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user runs a small events business: fixed costs, a catalog of priced
			products, a sale history and a monthly revenue goal.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Always ground figures in the Controller's reports before
			giving advice on prices, costs or targets.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewConsultant returns the market expert, grounded through Google Search.
func NewConsultant() *Expert {
	return &Expert{
		Name: "Consultant",
		Description: `This is a small-business consultant,
		well aware of pricing practices, supplier costs and the events market.
		Ask the Consultant whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in running small service businesses: pricing, cost
			structures, seasonality of the events market. You leverage Google Search
			to ground your assertions in solid truth, and you know how to relate the
			latest news to the user's request.
				`}}},
		},
	}
}

// NewController returns the numbers expert. It is the only one reading the
// user's business data, through its report tools.
func NewController() *Expert {
	lib := []Function{Figures, Statement, BreakevenTable}

	return &Expert{
		Name: "Controller",
		Description: `This is the Controller. He is in charge of reading the user's business
		records: fixed costs, product catalog, sale history and revenue goal. He can
		produce the dashboard, the income statement and the breakeven analysis.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the controller of the user's business records.
				You know how to use the Tools to extract the relevant figures:
				  - the monthly dashboard
				  - the income statement of a period
				  - the breakeven analysis by product
				You are part of a team of experts; yours is everything about the user's
				own numbers. Pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

var periodSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"year": {
			Type:        genai.TypeInteger,
			Description: "The year to report on. The current year is the default.",
		},
		"month": {
			Type:        genai.TypeInteger,
			Description: "The month to report on, 1 to 12. The current month is the default.",
		},
	},
}

// Figures produces the monthly dashboard.
var Figures = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Figures",
		Description: `Figures returns the dashboard of one month: revenue, costs, profit,
		net margin, breakeven position and revenue target attainment.`,
		Parameters: periodSchema,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted dashboard of the month's figures.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		return respond(id, "Figures", func(store *gestao.Store) string {
			year, month := parsePeriod(args)
			return renderer.DashboardMarkdown(store.BuildDashboard(year, month))
		})
	},
}

// Statement produces the income statement of a period.
var Statement = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Statement",
		Description: `Statement returns the five-line managerial income statement of a
		period, with the vertical analysis of each line against gross revenue.`,
		Parameters: periodSchema,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted income statement.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		return respond(id, "Statement", func(store *gestao.Store) string {
			year, month := parsePeriod(args)
			return renderer.StatementMarkdown(store.Statement(year, month), year, month)
		})
	},
}

// BreakevenTable produces the breakeven analysis by product.
var BreakevenTable = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Breakeven",
		Description: `Breakeven returns, for each product of the catalog, how many units
		must be sold to cover the whole monthly fixed cost structure.`,
		Parameters: &genai.Schema{Type: genai.TypeObject},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted breakeven table.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		return respond(id, "Breakeven", func(store *gestao.Store) string {
			fixed := store.TotalFixedCost()
			return renderer.BreakevenMarkdown(gestao.BreakevenByProduct(store.Products(), fixed), fixed)
		})
	},
}

// respond loads the store and wraps the report in a function response.
func respond(id, name string, report func(*gestao.Store) string) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{},
	}
	store, err := DecodeStore()
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	fresp.Response["output"] = report(store)
	return fresp
}

// DecodeStore reads the snapshot file into a store. A missing file is an
// empty store.
func DecodeStore() (*gestao.Store, error) {
	store := gestao.NewStore()
	f, err := os.Open(SnapshotFile)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", SnapshotFile, err)
	}
	defer f.Close()

	snap, err := gestao.DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot file %q: %w", SnapshotFile, err)
	}
	store.FromSnapshot(snap)
	return store, nil
}

// parsePeriod reads the optional year/month arguments, defaulting to today.
func parsePeriod(args map[string]any) (int, time.Month) {
	today := gestao.Today()
	year, month := today.Year(), today.Month()
	if v, ok := args["year"].(float64); ok && v != 0 {
		year = int(v)
	}
	if v, ok := args["month"].(float64); ok && v >= 1 && v <= 12 {
		month = time.Month(v)
	}
	return year, month
}
