package cosmic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"recipe-site-backend/internal/shared/utils"
	"recipe-site-backend/internal/store"
)

const (
	// defaultProps are the object fields requested on every read.
	defaultProps = "id,type,slug,title,metadata,created_at,modified_at"

	maxErrorMessageLength = 200
)

// =====================================================
// COSMIC CLIENT IMPLEMENTATION
// =====================================================

// Client talks to a Cosmic bucket over the REST API and implements store.Client.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a bucket client. A nil httpClient gets a default with
// the configured timeout.
func NewClient(config *Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{config: config, httpClient: httpClient}
}

type objectsResponse struct {
	Objects []store.Object `json:"objects"`
	Total   int            `json:"total"`
}

type objectResponse struct {
	Object store.Object `json:"object"`
}

type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// =====================================================
// READS
// =====================================================

func (c *Client) Find(ctx context.Context, q store.Query) ([]store.Object, error) {
	// Step 1: Build query document
	doc := make(map[string]interface{}, len(q.Filter)+1)
	for k, v := range q.Filter {
		doc[k] = v
	}
	if q.Type != "" {
		doc["type"] = q.Type
	}
	queryJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	// Step 2: Build URL
	params := url.Values{}
	params.Set("query", string(queryJSON))
	params.Set("read_key", c.config.ReadKey)
	params.Set("props", defaultProps)
	params.Set("limit", strconv.Itoa(q.EffectiveLimit()))
	if q.Depth > 0 {
		params.Set("depth", strconv.Itoa(q.Depth))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	// Step 3: Call API
	var resp objectsResponse
	if err := c.do(ctx, http.MethodGet, c.config.ObjectsURL()+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Objects == nil {
		resp.Objects = []store.Object{}
	}
	return resp.Objects, nil
}

func (c *Client) FindOne(ctx context.Context, q store.Query) (*store.Object, error) {
	q.Limit = 1
	objs, err := c.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(objs) == 0 {
		return nil, store.ErrNotFound
	}
	return &objs[0], nil
}

// =====================================================
// WRITES
// =====================================================

func (c *Client) InsertOne(ctx context.Context, obj store.NewObject) (*store.Object, error) {
	if !c.config.CanWrite() {
		return nil, store.ErrReadOnly
	}

	body := map[string]interface{}{
		"type":     obj.Type,
		"title":    obj.Title,
		"metadata": obj.Metadata,
	}
	if obj.Slug != "" {
		body["slug"] = obj.Slug
	}

	var resp objectResponse
	if err := c.do(ctx, http.MethodPost, c.config.ObjectsURL(), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Object, nil
}

func (c *Client) UpdateOne(ctx context.Context, id string, patch store.Patch) (*store.Object, error) {
	if !c.config.CanWrite() {
		return nil, store.ErrReadOnly
	}

	body := map[string]interface{}{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if len(patch.Metadata) > 0 {
		body["metadata"] = patch.Metadata
	}

	var resp objectResponse
	if err := c.do(ctx, http.MethodPatch, c.config.ObjectURL(url.PathEscape(id)), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Object, nil
}

// =====================================================
// TRANSPORT
// =====================================================

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Authorization", "Bearer "+c.config.WriteKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", store.ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return store.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return store.ErrConflict
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", store.ErrUnavailable, errorMessage(resp.StatusCode, bodyBytes))
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("cosmic API error: %s", errorMessage(resp.StatusCode, bodyBytes))
	}

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func errorMessage(status int, body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Sprintf("%d %s", status, utils.Truncate(apiErr.Message, maxErrorMessageLength))
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
