// Package mcpserver exposes location search as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/nlpjobsfinder/jobs-finder/internal/common"
	"github.com/nlpjobsfinder/jobs-finder/internal/search"
	"github.com/urfave/cli/v2"
)

const (
	serverName    = "jobs-finder"
	serverVersion = "1.0.0"
)

// Handlers answers tool calls against one search service.
type Handlers struct {
	svc *search.Service
}

func NewHandlers(svc *search.Service) *Handlers {
	return &Handlers{svc: svc}
}

// NewServer registers the search_by_location, parse_location and
// match_resume tools.
func NewServer(h *Handlers) *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion)

	searchTool := mcp.NewTool("search_by_location",
		mcp.WithDescription("Find companies from the hiring-without-whiteboards list whose location matches a city, country or remote/hybrid/on-site term"),
	)
	searchTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"location":       map[string]interface{}{"type": "string", "description": "Location to search for, e.g. Kentucky, Germany or remote"},
			"companies_file": map[string]interface{}{"type": "string", "description": "Override the companies JSON file (optional)"},
		},
		Required: []string{"location"},
	}
	s.AddTool(searchTool, h.SearchByLocation)

	parseTool := mcp.NewTool("parse_location",
		mcp.WithDescription("Split a free-text location into countries, cities and custom terms"),
	)
	parseTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"text": map[string]interface{}{"type": "string", "description": "Location text, e.g. 'Berlin, Germany (hybrid)'"},
		},
		Required: []string{"text"},
	}
	s.AddTool(parseTool, h.ParseLocation)

	matchTool := mcp.NewTool("match_resume",
		mcp.WithDescription("Read the places from a resume's experience section and list the companies located there"),
	)
	matchTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"text":           map[string]interface{}{"type": "string", "description": "Plain resume text"},
			"include_remote": map[string]interface{}{"type": "boolean", "description": "Also list remote companies (optional)"},
			"companies_file": map[string]interface{}{"type": "string", "description": "Override the companies JSON file (optional)"},
		},
		Required: []string{"text"},
	}
	s.AddTool(matchTool, h.MatchResume)

	return s
}

// SearchByLocation returns the matching companies as a JSON array.
func (h *Handlers) SearchByLocation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	location, _ := args["location"].(string)
	if strings.TrimSpace(location) == "" {
		return mcp.NewToolResultError("missing required field: location"), nil
	}
	companiesFile, _ := args["companies_file"].(string)

	results, err := h.svc.Search(location, strings.TrimSpace(companiesFile))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Search failed: %v", err)), nil
	}
	return jsonResult(results)
}

// ParseLocation returns the classified Locations of the text argument.
func (h *Handlers) ParseLocation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	text, _ := args["text"].(string)
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("missing required field: text"), nil
	}

	locations, err := h.svc.Parse(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Parse failed: %v", err)), nil
	}
	return jsonResult(locations)
}

// MatchResume returns the resume's location profile and matching companies.
func (h *Handlers) MatchResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	text, _ := args["text"].(string)
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("missing required field: text"), nil
	}
	includeRemote, _ := args["include_remote"].(bool)
	companiesFile, _ := args["companies_file"].(string)

	result, err := h.svc.Match(text, strings.TrimSpace(companiesFile), includeRemote)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Match failed: %v", err)), nil
	}
	return jsonResult(result)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ServeAction runs the MCP server on stdin/stdout until the client disconnects.
func ServeAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	svc, err := search.OpenService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize search: %w", err)
	}
	defer svc.Close()

	logger.Info("serving MCP over stdio", "ner_model", cfg.NERModel, "companies_file", cfg.CompaniesFile)
	if err := server.ServeStdio(NewServer(NewHandlers(svc))); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
