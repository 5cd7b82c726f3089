package rag

import (
	"context"
	"log/slog"

	"parthunter/internal/tool"
)

const searchToolDescription = `Search one of the tables for the query using RAG.
The tables are:
- repairs
    - appliance: The appliance that the repair is for.
    - symptom: The symptom or issue that the repair is for.
    - parts: The parts that are needed to fix the issue.
    - url: The URL to the repair guide.
    - difficulty: The difficulty level of the repair.
- blogs
    - title: The title of the blog post.
    - url: The URL to the blog post.`

// SearchTool exposes the filter as the searchRAG callable. The handler never
// returns an error: every failure is rendered into text content.
func SearchTool(f *Filter) tool.Tool {
	return tool.Tool{
		Name:        "searchRAG",
		Description: searchToolDescription,
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"table": map[string]any{
					"type":        "string",
					"description": "The table to search: repairs or blogs.",
				},
				"query": map[string]any{
					"type":        "string",
					"description": "The query to search the table for.",
				},
			},
			"required": []string{"table", "query"},
		},
		Handler: func(ctx context.Context, args map[string]any) ([]string, error) {
			table, _ := args["table"].(string)
			query, _ := args["query"].(string)

			result, err := f.Search(ctx, table, query)
			if err != nil {
				slog.Error("Error in searchRAG", "table", table, "error", err)
				return ErrorContent(table, err), nil
			}

			return result.Render(), nil
		},
	}
}
