package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nlpjobsfinder/jobs-finder/internal/search"
	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/location"
	"github.com/nlpjobsfinder/jobs-finder/pkg/match"
	"github.com/nlpjobsfinder/jobs-finder/pkg/ner"
	"github.com/nlpjobsfinder/jobs-finder/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlers(t *testing.T) *Handlers {
	t.Helper()

	path := filepath.Join(t.TempDir(), "companies.json")
	require.NoError(t, storage.WriteCompanies(path, []models.Company{
		{Name: "Acme", Location: "Louisville, Kentucky", Description: "Pairing"},
		{Name: "Globex", Location: "Berlin, Germany", Description: "Take-home"},
	}))

	cfg := &models.Config{CompaniesFile: path, NERModel: models.NERModelGazetteer}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parser := location.NewParser(ner.NewDefaultGazetteer(nil))
	return NewHandlers(search.NewService(cfg, logger, parser, nil))
}

func call(args any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestSearchByLocation(t *testing.T) {
	h := newHandlers(t)

	res, err := h.SearchByLocation(context.Background(), call(map[string]interface{}{"location": "Germany"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got []models.SearchResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].Company)
	assert.Equal(t, "Berlin, Germany", got[0].Location)
}

func TestSearchByLocation_NoMatches(t *testing.T) {
	h := newHandlers(t)

	res, err := h.SearchByLocation(context.Background(), call(map[string]interface{}{"location": "Tokyo"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "[]", resultText(t, res))
}

func TestSearchByLocation_Errors(t *testing.T) {
	h := newHandlers(t)

	tests := []struct {
		name string
		args any
	}{
		{name: "not a map", args: "Kentucky"},
		{name: "missing location", args: map[string]interface{}{}},
		{name: "blank location", args: map[string]interface{}{"location": "  "}},
		{name: "wrong type", args: map[string]interface{}{"location": 42}},
		{name: "missing file", args: map[string]interface{}{"location": "Kentucky", "companies_file": "/nonexistent/companies.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.SearchByLocation(context.Background(), call(tt.args))
			require.NoError(t, err, "tool errors are results, not protocol errors")
			assert.True(t, res.IsError)
		})
	}
}

func TestParseLocation(t *testing.T) {
	h := newHandlers(t)

	res, err := h.ParseLocation(context.Background(), call(map[string]interface{}{"text": "Remote, Germany"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got models.Locations
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, []string{"Germany"}, got.Countries)
	assert.Equal(t, []string{"Remote"}, got.CustomTerms)
}

func TestParseLocation_MissingText(t *testing.T) {
	h := newHandlers(t)

	res, err := h.ParseLocation(context.Background(), call(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestMatchResume(t *testing.T) {
	h := newHandlers(t)

	res, err := h.MatchResume(context.Background(), call(map[string]interface{}{
		"text": "Jane Doe\nEXPERIENCE\nEngineer in Berlin, Germany\nSKILLS\nGo, Kentucky bourbon tasting",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var got match.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, []string{"germany"}, got.Profile.Locations)
	assert.False(t, got.Profile.HasRemoteExperience)
	require.Len(t, got.Companies, 1)
	assert.Equal(t, "Globex", got.Companies[0].Name)
}

func TestMatchResume_Errors(t *testing.T) {
	h := newHandlers(t)

	tests := []struct {
		name string
		args any
	}{
		{name: "not a map", args: "resume"},
		{name: "missing text", args: map[string]interface{}{"include_remote": true}},
		{name: "missing file", args: map[string]interface{}{"text": "Kentucky", "companies_file": "/nonexistent/companies.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.MatchResume(context.Background(), call(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(newHandlers(t)))
}
