package payments

import (
	"context"
	"errors"
	"log"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMissingMercadoPagoWebhookSecret = errors.New("missing MERCADOPAGO_WEBHOOK_SECRET")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// preferenceCreator is the part of the checkout preference client the gateway uses.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway opens a checkout preference per hire request and treats the
// preference id as the order id. Checkout callbacks are signed with the webhook secret
// using the same order|payment HMAC scheme as Razorpay.
type MercadoPagoGateway struct {
	client        preferenceCreator
	publicKey     string
	webhookSecret string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, publicKey, webhookSecret string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	if webhookSecret == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_WEBHOOK_SECRET")
		return nil, ErrMissingMercadoPagoWebhookSecret
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:        preference.NewClient(cfg),
		publicKey:     publicKey,
		webhookSecret: webhookSecret,
	}, nil
}

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.GatewayOrder{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] mercadopago create-preference start external_reference=%s amount=%d currency=%s", req.HireRequestID, req.AmountMinor, req.Currency)

	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: req.HireRequestID,
		Items: []preference.ItemRequest{
			{
				ID:         req.HireRequestID,
				Title:      req.Description,
				Quantity:   1,
				UnitPrice:  float64(req.AmountMinor) / 100,
				CurrencyID: req.Currency,
			},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create-preference failed err=%v", err)
		return entities.GatewayOrder{}, err
	}
	if resp == nil || resp.ID == "" {
		return entities.GatewayOrder{}, errors.New("mercado pago response without preference id")
	}
	log.Printf("[payment][gateway] mercadopago create-preference success preference_id=%s", resp.ID)

	return entities.GatewayOrder{OrderID: resp.ID, Amount: req.AmountMinor, Currency: req.Currency}, nil
}

func (g *MercadoPagoGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.webhookSecret, orderID, paymentID, signature)
}

func (g *MercadoPagoGateway) PublicKey() string {
	return g.publicKey
}
