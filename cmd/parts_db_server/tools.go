package main

import (
	"context"

	"parthunter/internal/domain"
	"parthunter/internal/storage/pg"
	"parthunter/internal/tool"
)

const defaultResultLimit = 10

// catalogTools exposes the relational catalog as callable tools. Handlers
// return text content; lookup failures surface as tool-boundary error text.
func catalogTools(r *pg.Reader) []tool.Tool {
	return []tool.Tool{
		{
			Name:        "getPart",
			Description: "Look up a part by its part id or manufacturer part number (MPN).",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"description": "The part id or MPN to look up.",
					},
				},
				"required": []string{"id"},
			},
			Handler: func(ctx context.Context, args map[string]any) ([]string, error) {
				id, _ := args["id"].(string)
				parts, err := r.GetPart(ctx, id)
				if err != nil {
					return nil, err
				}
				return renderParts(parts, "No part found for id: "+id), nil
			},
		},
		{
			Name:        "searchParts",
			Description: "Search the parts catalog by part name, symptom, appliance type, or brand.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Free-text search over the parts catalog.",
					},
				},
				"required": []string{"query"},
			},
			Handler: func(ctx context.Context, args map[string]any) ([]string, error) {
				query, _ := args["query"].(string)
				parts, err := r.SearchParts(ctx, query, defaultResultLimit)
				if err != nil {
					return nil, err
				}
				return renderParts(parts, "No parts found for: "+query), nil
			},
		},
		{
			Name:        "searchRepairs",
			Description: "Search repair guides by appliance and symptom.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"appliance": map[string]any{
						"type":        "string",
						"description": "The appliance, e.g. refrigerator or dishwasher.",
					},
					"symptom": map[string]any{
						"type":        "string",
						"description": "The symptom or issue to repair.",
					},
				},
				"required": []string{"appliance", "symptom"},
			},
			Handler: func(ctx context.Context, args map[string]any) ([]string, error) {
				appliance, _ := args["appliance"].(string)
				symptom, _ := args["symptom"].(string)
				repairs, err := r.SearchRepairs(ctx, appliance, symptom, defaultResultLimit)
				if err != nil {
					return nil, err
				}
				return renderRepairs(repairs, "No repairs found for "+appliance+": "+symptom), nil
			},
		},
	}
}

func renderParts(parts []domain.Part, emptyMessage string) []string {
	if len(parts) == 0 {
		return []string{emptyMessage}
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Text()
	}
	return out
}

func renderRepairs(repairs []domain.Repair, emptyMessage string) []string {
	if len(repairs) == 0 {
		return []string{emptyMessage}
	}
	out := make([]string, len(repairs))
	for i, rep := range repairs {
		out[i] = rep.Text()
	}
	return out
}
