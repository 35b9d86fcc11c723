package agent

import (
	"context"
	"fmt"

	"github.com/lusw/portfolio"
	"github.com/lusw/portfolio/docs"
	"github.com/lusw/portfolio/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to get news or information about the positions
			in his portfolio, held in Taiwanese and US markets.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know about his tickers, check the portfolio first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader returns the expert with search access for market news and
// grounding information.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of all the financial products and institutions,
		about the latest news about the different funds or companies,
		on the Taiwanese market as well as the US one.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a expert in Trading, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of reading the user's portfolio
// snapshot. The snapshot is loaded lazily through load so the chat session
// always sees the latest synchronized state.
func NewAnalyst(load func() (*portfolio.Snapshot, error), display portfolio.Currency, rate decimal.Decimal) *Expert {

	lib := []Function{newPositionsFunc(load, display, rate), newHistoryFunc(load, display, rate)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's portfolio snapshot.
		He can report the current positions with their gain and loss, and the monthly
		history of the portfolio with its annualized returns.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's portfolio.
				You know how to use the Tools to extract relevant information about the user's positions and wealth.
				You are part of a team of experts, yours is everything about the user's portfolio. They might ask
				you questions about it, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's portfolio
				  - positions with their current value, cost and gain
				  - monthly history with annualized returns
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
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

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func newPositionsFunc(load func() (*portfolio.Snapshot, error), display portfolio.Currency, rate decimal.Decimal) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Positions",
			Description: `Positions lists all positions currently held in the portfolio,
			with their quantity, value, cost and gain, followed by the portfolio totals.
			`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"currency": {
						Type: genai.TypeString,
						Description: `The currency in which to report values, "USD" or "TWD".
						The user's display currency is the default.

						` + must(docs.GetTopic("currency")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all positions with a portfolio summary.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			cur, err := parseCurrency(args, display)
			if err != nil {
				return errorResponse(id, "Positions", err)
			}
			s, err := load()
			if err != nil {
				return errorResponse(id, "Positions", err)
			}
			report := portfolio.NewPositionsReport(s, cur, rate)
			out := renderer.PositionsMarkdown(report) + "\n" + renderer.SummaryMarkdown(report)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Positions",
				Response: map[string]any{
					"output": out,
				},
			}
		},
	}
}

func newHistoryFunc(load func() (*portfolio.Snapshot, error), display portfolio.Currency, rate decimal.Decimal) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History lists the month-by-month record of the portfolio,
			with per-month cost, balance, gain and annualized return, split between the
			Taiwanese and US sub-ledgers.
			`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"currency": {
						Type: genai.TypeString,
						Description: `The currency in which to report values, "USD" or "TWD".
						The user's display currency is the default.`,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the monthly history.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			cur, err := parseCurrency(args, display)
			if err != nil {
				return errorResponse(id, "History", err)
			}
			s, err := load()
			if err != nil {
				return errorResponse(id, "History", err)
			}
			report := portfolio.NewHistoryReport(s, cur, rate)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "History",
				Response: map[string]any{
					"output": renderer.HistoryMarkdown(report),
				},
			}
		},
	}
}

func parseCurrency(args map[string]any, fallback portfolio.Currency) (portfolio.Currency, error) {
	icur, has := args["currency"]
	if !has {
		return fallback, nil
	}
	scur, ok := icur.(string)
	if !ok {
		return fallback, fmt.Errorf("argument 'currency' is not a string as expected but %T", icur)
	}
	cur, err := portfolio.ParseCurrency(scur)
	if err != nil {
		return fallback, fmt.Errorf("argument 'currency' must be USD or TWD, got %q", scur)
	}
	return cur, nil
}
