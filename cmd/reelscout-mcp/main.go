// reelscout-mcp is a stdio MCP server exposing the reelscout HTTP API as
// tools, so agent clients can preview and import product-page videos.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// previewRequest mirrors the reelscout API request model.
type previewRequest struct {
	URL string `json:"url"`
}

// importRequest mirrors the reelscout API request model.
type importRequest struct {
	URL               string   `json:"url"`
	Title             string   `json:"title,omitempty"`
	Description       string   `json:"description,omitempty"`
	PreferredVideoURL string   `json:"preferred_video_url,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

// apiError mirrors the error envelope shared by all API responses.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// previewResponse mirrors the reelscout preview API response.
type previewResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   *apiError       `json:"error"`
}

// importResponse mirrors the reelscout import API response.
type importResponse struct {
	Success bool            `json:"success"`
	Video   json.RawMessage `json:"video"`
	Error   *apiError       `json:"error"`
}

func main() {
	apiURL := os.Getenv("REELSCOUT_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	apiKey := os.Getenv("REELSCOUT_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "REELSCOUT_API_KEY is required")
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"reelscout",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	previewTool := mcp.NewTool("preview_product_page",
		mcp.WithDescription("Scrape a product page and return its demo-video metadata: title, description, thumbnail, tags, duration and the list of playable video sources."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL of the product page to scrape"),
		),
	)
	s.AddTool(previewTool, handlePreview(apiURL, apiKey))

	importTool := mcp.NewTool("import_product_video",
		mcp.WithDescription("Scrape a product page and import its demo video, optionally overriding title, description or the chosen video source URL."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The URL of the product page to import from"),
		),
		mcp.WithString("title",
			mcp.Description("Override the scraped title"),
		),
		mcp.WithString("description",
			mcp.Description("Override the scraped description"),
		),
		mcp.WithString("preferred_video_url",
			mcp.Description("Pick this video source instead of the first discovered one"),
		),
	)
	s.AddTool(importTool, handleImport(apiURL, apiKey))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// apiPost sends a POST request to the reelscout API and returns the
// response body.
func apiPost(ctx context.Context, client *http.Client, apiURL, apiKey, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func handlePreview(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 30 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		body, err := apiPost(ctx, client, apiURL, apiKey, "/api/v1/scrape/preview", previewRequest{URL: url})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var resp previewResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if !resp.Success {
			errMsg := "preview failed"
			if resp.Error != nil {
				errMsg = fmt.Sprintf("%s: %s", resp.Error.Code, resp.Error.Message)
			}
			return mcp.NewToolResultError(errMsg), nil
		}

		return mcp.NewToolResultText(string(resp.Result)), nil
	}
}

func handleImport(apiURL, apiKey string) server.ToolHandlerFunc {
	client := &http.Client{Timeout: 30 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		payload := importRequest{
			URL:               url,
			Title:             request.GetString("title", ""),
			Description:       request.GetString("description", ""),
			PreferredVideoURL: request.GetString("preferred_video_url", ""),
		}

		body, err := apiPost(ctx, client, apiURL, apiKey, "/api/v1/videos/import", payload)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var resp importResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if !resp.Success {
			errMsg := "import failed"
			if resp.Error != nil {
				errMsg = fmt.Sprintf("%s: %s", resp.Error.Code, resp.Error.Message)
			}
			return mcp.NewToolResultError(errMsg), nil
		}

		return mcp.NewToolResultText(string(resp.Video)), nil
	}
}
