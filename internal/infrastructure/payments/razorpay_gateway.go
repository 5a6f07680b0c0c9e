package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

// orderCreator is the part of the Razorpay orders resource the gateway uses.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type RazorpayGateway struct {
	orders    orderCreator
	keyID     string
	keySecret string
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}
	client := razorpay.NewClient(keyID, keySecret)
	log.Printf("[payment][gateway] Razorpay client initialized key_id=%s", keyID)
	return &RazorpayGateway{orders: client.Order, keyID: keyID, keySecret: keySecret}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error) {
	if g == nil || g.orders == nil {
		return entities.GatewayOrder{}, ErrRazorpayGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return entities.GatewayOrder{}, err
	}
	log.Printf("[payment][gateway] razorpay create-order start receipt=%s amount=%d currency=%s", req.HireRequestID, req.AmountMinor, req.Currency)

	data := map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": req.Currency,
		"receipt":  req.HireRequestID,
		"notes": map[string]interface{}{
			"hireRequestId": req.HireRequestID,
			"description":   req.Description,
		},
	}
	resp, err := g.orders.Create(data, nil)
	if err != nil {
		log.Printf("[payment][gateway] razorpay create-order failed receipt=%s err=%v", req.HireRequestID, err)
		return entities.GatewayOrder{}, err
	}

	id, _ := resp["id"].(string)
	if id == "" {
		return entities.GatewayOrder{}, fmt.Errorf("razorpay response without order id: %v", resp)
	}
	order := entities.GatewayOrder{OrderID: id, Amount: req.AmountMinor, Currency: req.Currency}
	if amount, ok := resp["amount"].(float64); ok {
		order.Amount = int64(amount)
	}
	if currency, ok := resp["currency"].(string); ok && currency != "" {
		order.Currency = currency
	}
	log.Printf("[payment][gateway] razorpay create-order success order_id=%s", order.OrderID)
	return order, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.keySecret, orderID, paymentID, signature)
}

func (g *RazorpayGateway) PublicKey() string {
	return g.keyID
}
