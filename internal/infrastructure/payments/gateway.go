package payments

import (
	"fmt"

	"gig_escrow/internal/infrastructure/config"
	"gig_escrow/internal/usecase/interfaces"
)

// NewGateway builds the configured provider. Mock mode wins over the provider choice.
func NewGateway(cfg config.Config) (interfaces.IPaymentGateway, error) {
	if cfg.PaymentGatewayMock {
		return NewMockGateway(cfg.MockGatewaySecret), nil
	}
	switch cfg.PaymentProvider {
	case config.ProviderRazorpay:
		g, err := NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderMercadoPago:
		g, err := NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.MercadoPagoPublicKey, cfg.MercadoPagoWebhookSecret)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.PaymentProvider)
	}
}
