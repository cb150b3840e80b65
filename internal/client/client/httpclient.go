package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/todocards/internal/client/models"
	"github.com/dmitrijs2005/todocards/internal/common"
	pb "github.com/dmitrijs2005/todocards/internal/proto"
)

// HTTPClient talks to the JSON REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return mapHTTPStatus(resp.StatusCode, e.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Signup(ctx context.Context) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/signup", nil, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", nil, nil)
}

func (c *HTTPClient) ListCards(ctx context.Context) ([]models.Card, error) {
	var resp []pb.Card
	if err := c.do(ctx, http.MethodGet, "/api/cards", nil, &resp); err != nil {
		return nil, err
	}
	return fromWireList(resp)
}

func (c *HTTPClient) CreateCard(ctx context.Context, draft *models.Draft) (string, error) {
	var in any
	if draft != nil {
		in = pb.CardDraft{Title: draft.Title, Todos: draft.Todos}
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/cards", in, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *HTTPClient) GetCard(ctx context.Context, id string) (models.Card, error) {
	var resp pb.Card
	if err := c.do(ctx, http.MethodGet, "/api/cards/"+id, nil, &resp); err != nil {
		return models.Card{}, err
	}
	return fromWire(resp)
}

func (c *HTTPClient) UpdateCard(ctx context.Context, card models.Card) error {
	u := toWireUpdate(card)
	in := struct {
		Title string    `json:"title"`
		Todos []pb.Todo `json:"todos"`
	}{Title: u.Title, Todos: u.Todos}
	return c.do(ctx, http.MethodPut, "/api/cards/"+card.ID, in, nil)
}

func (c *HTTPClient) DeleteCard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cards/"+id, nil, nil)
}

func (c *HTTPClient) SetLabels(ctx context.Context, id string, names []string) ([]string, error) {
	in := struct {
		Labels []string `json:"labels"`
	}{Labels: names}

	var resp pb.LabelsResponse
	if err := c.do(ctx, http.MethodPut, "/api/cards/"+id+"/labels", in, &resp); err != nil {
		return nil, err
	}
	return labelNames(resp.Labels), nil
}

func (c *HTTPClient) Export(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/export", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
