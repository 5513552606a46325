package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bkovacic/liftlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"

	// the store API version this client speaks
	apiVersion = "2022-06-28"
)

var ErrPageNotFound = errors.New("page not found")

// APIError is a non-2xx response from the record store.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("record store error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// QueryDatabase returns a single page of results for the given query.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, q Query) (_ *QueryResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notion.queryDatabase")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("database.id", databaseID))

	var result QueryResult
	path := fmt.Sprintf("/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, q, &result); err != nil {
		return nil, fmt.Errorf("query database %s: %w", databaseID, err)
	}

	return &result, nil
}

// QueryAll follows the result cursor until exhaustion and returns every page.
func (c *Client) QueryAll(ctx context.Context, databaseID string, q Query) (_ []Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notion.queryAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("database.id", databaseID))

	pages := make([]Page, 0)
	for {
		result, err := c.QueryDatabase(ctx, databaseID, q)
		if err != nil {
			return nil, err
		}
		pages = append(pages, result.Results...)

		if !result.HasMore || result.NextCursor == "" {
			break
		}
		q.StartCursor = result.NextCursor
	}

	span.SetAttributes(attribute.Int("pages.count", len(pages)))
	return pages, nil
}

func (c *Client) GetPage(ctx context.Context, pageID string) (_ *Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notion.getPage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("page.id", pageID))

	var page Page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &page); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("get page %s: %w", pageID, err)
	}

	return &page, nil
}

type createPagePayload struct {
	Parent     pageParent `json:"parent"`
	Properties Properties `json:"properties"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

func (c *Client) CreatePage(ctx context.Context, databaseID string, props Properties) (_ *Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notion.createPage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("database.id", databaseID))

	payload := createPagePayload{
		Parent:     pageParent{DatabaseID: databaseID},
		Properties: props,
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", payload, &page); err != nil {
		return nil, fmt.Errorf("create page in %s: %w", databaseID, err)
	}

	log.Debugf("notion: created page %s in database %s", page.ID, databaseID)
	return &page, nil
}

type updatePagePayload struct {
	Properties Properties `json:"properties,omitempty"`
	Archived   *bool      `json:"archived,omitempty"`
}

// UpdatePage patches only the given properties; all others are left untouched.
func (c *Client) UpdatePage(ctx context.Context, pageID string, props Properties) (_ *Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notion.updatePage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("page.id", pageID))

	var page Page
	if err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, updatePagePayload{Properties: props}, &page); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("update page %s: %w", pageID, err)
	}

	return &page, nil
}

// ArchivePage soft-deletes the page.
func (c *Client) ArchivePage(ctx context.Context, pageID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notion.archivePage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("page.id", pageID))

	archived := true
	if err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, updatePagePayload{Archived: &archived}, nil); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return ErrPageNotFound
		}
		return fmt.Errorf("archive page %s: %w", pageID, err)
	}

	log.Debugf("notion: archived page %s", pageID)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response bytes: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBytes, apiErr); err != nil {
			apiErr.Message = string(respBytes)
		}
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response bytes: %w", err)
	}
	return nil
}
