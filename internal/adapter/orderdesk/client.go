package orderdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
	"github.com/ChristianPavilonis/orderdesk/internal/server/http/dto"
)

// ErrNotFound indicates the service has no order under the requested id.
var ErrNotFound = errors.New("order not found")

// ValidationError carries the 422 body naming the offending field or value.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid order payload: %s", e.Message)
}

// Client exposes operations against a running orderdesk instance.
type Client interface {
	CreateOrder(ctx context.Context, amount int64, status *model.Status) (*dto.OrderResponse, error)
	Order(ctx context.Context, id int64) (*dto.OrderResponse, error)
	Orders(ctx context.Context) ([]dto.OrderResponse, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.Status) error
	DeleteOrder(ctx context.Context, id int64) error
}

// HTTPClient implements Client via the HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates an HTTP client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse orderdesk url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("orderdesk url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateOrder registers a new order and returns it with its assigned id.
func (c *HTTPClient) CreateOrder(ctx context.Context, amount int64, status *model.Status) (*dto.OrderResponse, error) {
	payload, err := json.Marshal(dto.CreateOrderRequest{Amount: amount, Status: status})
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, payload, "orders")
	if err != nil {
		return nil, err
	}

	var created dto.OrderResponse
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Order fetches a single order by id.
func (c *HTTPClient) Order(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, nil, "orders", strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}

	var order dto.OrderResponse
	if err := c.do(req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders fetches every stored order.
func (c *HTTPClient) Orders(ctx context.Context) ([]dto.OrderResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, nil, "orders")
	if err != nil {
		return nil, err
	}

	var orders []dto.OrderResponse
	if err := c.do(req, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to the given status.
func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, id int64, status model.Status) error {
	payload, err := json.Marshal(dto.UpdateOrderStatusRequest{Status: status})
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPatch, payload, "orders", strconv.FormatInt(id, 10))
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// DeleteOrder removes an order by id.
func (c *HTTPClient) DeleteOrder(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, nil, "orders", strconv.FormatInt(id, 10))
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *HTTPClient) newRequest(ctx context.Context, method string, payload []byte, parts ...string) (*http.Request, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(append([]string{endpoint.Path}, parts...)...)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		return ValidationError{Message: string(body)}
	default:
		c.logger.Error("orderdesk request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("orderdesk error: %s", resp.Status)
	}
}
