package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pcbuild_configurator/internal/domain/entities"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	defaultTimeout  = 15 * time.Second
	maxErrorBodyLen = 4 << 10
)

// HTTPDoer matches the subset of http.Client used by Client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks JSON over HTTP to the remote configuration service. It
// persists configurations, evaluates compatibility and serves the catalog.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *zap.Logger
	metrics *observability.Metrics
}

var (
	_ interfaces.IConfigurationGateway = (*Client)(nil)
	_ interfaces.ICompatibilityGateway = (*Client)(nil)
	_ interfaces.ICatalogGateway       = (*Client)(nil)
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	HTTP    HTTPDoer
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("remote: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("remote: parse base URL: %w", err)
	}
	doer := opts.HTTP
	if doer == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: base,
		http:    doer,
		logger:  observability.OrNop(opts.Logger),
		metrics: opts.Metrics,
	}, nil
}

func (c *Client) Create(ctx context.Context, in interfaces.CreateConfigurationInput) (entities.Configuration, error) {
	body := createBody{
		ConfigName: in.ConfigName,
		Platform:   in.Platform,
		UseCase:    in.UseCase,
		Budget:     entities.Budget{Target: in.BudgetTarget},
		SessionID:  in.SessionID,
	}
	var cfg entities.Configuration
	err := c.do(ctx, "create", http.MethodPost, "/configuration", nil, body, &cfg)
	return cfg, err
}

func (c *Client) AddComponent(ctx context.Context, configID string, category entities.Category, productID string, quantity int) (entities.Configuration, error) {
	body := addComponentBody{ComponentType: category, ProductID: productID, Quantity: quantity}
	var cfg entities.Configuration
	err := c.do(ctx, "add_component", http.MethodPut, "/configuration/"+url.PathEscape(configID)+"/component", nil, body, &cfg)
	return cfg, err
}

func (c *Client) RemoveComponent(ctx context.Context, configID string, category entities.Category, storageIndex *int) (entities.Configuration, error) {
	body := removeComponentBody{ComponentType: category, StorageIndex: storageIndex}
	var cfg entities.Configuration
	err := c.do(ctx, "remove_component", http.MethodDelete, "/configuration/"+url.PathEscape(configID)+"/component", nil, body, &cfg)
	return cfg, err
}

// CheckCompatibility reads the verdict under data.compatibility. A verdict
// sent directly as data is accepted only when that key is absent.
func (c *Client) CheckCompatibility(ctx context.Context, configID string) (entities.Verdict, error) {
	path := "/configuration/" + url.PathEscape(configID) + "/compatibility"
	var raw json.RawMessage
	if err := c.do(ctx, "compatibility", http.MethodGet, path, nil, nil, &raw); err != nil {
		return entities.Verdict{}, err
	}
	v, err := decodeVerdict(raw)
	if err != nil {
		return entities.Verdict{}, &Error{Op: "compatibility", Method: http.MethodGet, Path: path, StatusCode: http.StatusOK, Message: "invalid response body", Err: err}
	}
	return v, nil
}

func (c *Client) ListComponents(ctx context.Context, platform entities.Platform, category entities.Category, compatibleWith string) ([]entities.Product, error) {
	q := url.Values{}
	q.Set("category", string(category))
	if compatibleWith = strings.TrimSpace(compatibleWith); compatibleWith != "" {
		q.Set("compatibleWith", compatibleWith)
	}
	var products []entities.Product
	err := c.do(ctx, "list_components", http.MethodGet, "/components/"+url.PathEscape(string(platform)), q, nil, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetFilters(ctx context.Context, platform entities.Platform) (entities.FilterOptions, error) {
	var f entities.FilterOptions
	err := c.do(ctx, "filters", http.MethodGet, "/filters/"+url.PathEscape(string(platform)), nil, nil, &f)
	return f, err
}

// do performs one request and decodes the envelope's data into out. No
// retries are attempted.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveRemote(op, err, time.Since(started))
	}()

	fail := func(status int, msg string, cause error) error {
		return &Error{Op: op, Method: method, Path: path, StatusCode: status, Message: msg, Err: cause}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail(0, "", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fail(0, "", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("remote call failed", zap.String("operation", op), zap.String("path", path), zap.Error(err))
		return fail(0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(raw)
		c.logger.Warn("remote call rejected",
			zap.String("operation", op),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return fail(resp.StatusCode, msg, nil)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	data := raw
	var env envelope
	if json.Unmarshal(raw, &env) == nil && len(env.Data) > 0 {
		if env.Success != nil && !*env.Success {
			return fail(resp.StatusCode, firstNonEmpty(env.Message, env.Error), nil)
		}
		data = env.Data
	}
	if err := decodeNormalized(data, out); err != nil {
		return fail(resp.StatusCode, "invalid response body", err)
	}
	c.logger.Debug("remote call ok", zap.String("operation", op), zap.String("path", path), zap.Duration("elapsed", time.Since(started)))
	return nil
}

func errorMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if msg := firstNonEmpty(env.Message, env.Error); msg != "" {
			return msg
		}
	}
	text := strings.TrimSpace(string(raw))
	if len(text) > maxErrorBodyLen {
		text = text[:maxErrorBodyLen]
	}
	return text
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
