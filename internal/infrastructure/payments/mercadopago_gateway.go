package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appconfig "pcbuild_configurator/internal/infrastructure/config"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway receives reviewed builds at checkout.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	logger = observability.OrNop(logger).Named("payments")
	if cfg.Mock {
		logger.Info("mercado pago mock mode enabled")
		return NewMockGateway(logger), nil
	}

	if cfg.AccessToken == "" {
		logger.Warn("mercado pago access token missing")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		logger.Error("mercado pago sdk config failed", zap.Error(err))
		return nil, err
	}
	logger.Info("mercado pago client initialized")

	return &MercadoPagoGateway{
		client: payment.NewClient(sdkCfg),
		now:    time.Now,
		logger: logger,
	}, nil
}

// NewMockGateway approves every payment locally.
func NewMockGateway(logger *zap.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		mockMode: true,
		now:      time.Now,
		logger:   observability.OrNop(logger),
	}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.mockMode {
		return g.createMock(requestPayload)
	}
	if g.client == nil {
		g.logger.Error("mercado pago gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.logger.Warn("payment payload rejected", zap.Error(err))
		return "", "", nil, err
	}

	g.logger.Info("payment create start",
		zap.String("external_reference", req.ExternalReference),
		zap.Float64("amount", req.TransactionAmount),
	)
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Error("payment create failed", zap.String("external_reference", req.ExternalReference), zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.logger.Info("payment created", zap.String("payment_id", id), zap.String("status", resp.Status))
	return id, resp.Status, b, nil
}

func (g *MercadoPagoGateway) createMock(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil || resp == nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.logger.Info("mock payment approved", zap.String("payment_id", id), zap.Any("amount", resp["transaction_amount"]))
	return id, "approved", b, nil
}
