package agent

import (
	"context"
	"fmt"
	"log"

	finans "github.com/nechh42/akilli-finans-asistan"
	"github.com/nechh42/akilli-finans-asistan/library"
	"google.golang.org/genai"
)

// Toolbox dispatches a function call to the matching tool.
type Toolbox func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is a tool the model can call.
type Function interface {
	// Declaration describes the function to the model.
	Declaration() *genai.FunctionDeclaration
	// Call runs the function.
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewToolbox returns a Toolbox calling functions by name.
func NewToolbox[T Function](functions []T) Toolbox {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			if f.Declaration().Name == call.Name {
				log.Printf("tool call %s(%v)", call.Name, call.Args)
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return errorResponse(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
	}
}

// NewDeclarations returns the declarations of functions.
func NewDeclarations[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		result = append(result, f.Declaration())
	}
	return result
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

// MarketPrices lets the model read the current market prices.
type MarketPrices struct {
	Catalog *finans.Catalog
}

func (*MarketPrices) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "market_prices",
		Description: "Returns the current price in Turkish lira and the daily change of every asset of the simulator.",
		Parameters:  &genai.Schema{Type: genai.TypeObject},
	}
}

func (m *MarketPrices) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	var assets []map[string]any
	for a := range m.Catalog.Assets() {
		assets = append(assets, map[string]any{
			"id":       int(a.ID),
			"symbol":   a.Symbol,
			"name":     a.Name,
			"kind":     a.Kind,
			"price":    a.Price.Decimal().String(),
			"currency": a.Price.Currency(),
			"change":   a.Change.String(),
		})
	}
	return &genai.FunctionResponse{
		ID:       id,
		Name:     m.Declaration().Name,
		Response: map[string]any{"output": assets},
	}
}

// SearchArticles lets the model search the education library.
type SearchArticles struct {
	Library *library.Library
}

func (*SearchArticles) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "search_articles",
		Description: "Searches the education articles by title, excerpt or category. An empty term lists every article.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"term": {
					Type:        genai.TypeString,
					Description: "The text to search for.",
				},
			},
			Required: []string{"term"},
		},
	}
}

func (s *SearchArticles) Call(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
	name := s.Declaration().Name
	term, ok := args["term"].(string)
	if !ok {
		return errorResponse(id, name, fmt.Errorf("invalid type got %T, expected string", args["term"]))
	}
	var articles []map[string]any
	for _, a := range s.Library.Search(term) {
		articles = append(articles, map[string]any{
			"title":        a.Title,
			"category":     a.Category,
			"read_minutes": a.ReadTime,
			"excerpt":      a.Excerpt,
			"body":         a.Body,
		})
	}
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": articles},
	}
}
