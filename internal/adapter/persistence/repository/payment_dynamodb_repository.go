package repository

import (
	"context"
	"sort"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsHireRequestIndex = "hireRequestId-index"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	HireRequestID     string `dynamodbav:"hireRequestId"`
	RazorpayPaymentID string `dynamodbav:"razorpayPaymentId"`
	RazorpayOrderID   string `dynamodbav:"razorpayOrderId"`
	RazorpaySignature string `dynamodbav:"razorpaySignature"`
	Status            string `dynamodbav:"status"`
	Amount            string `dynamodbav:"amount"`
	CreatedAt         string `dynamodbav:"createdAt"`
}

// PaymentDynamoRepository reads the payment ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: hireRequestId-index (PK: hireRequestId)
//
// Rows are only written by HireRequestDynamoRepository.UpdateWithPayment.
type PaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return newPaymentRepository(ddb)
}

func newPaymentRepository(ddb dynamoAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	it, ok, err := getItem[paymentItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// ListByHireRequestID returns the ledger rows oldest first.
func (r *PaymentDynamoRepository) ListByHireRequestID(ctx context.Context, hireRequestID string) ([]entities.Payment, error) {
	items, err := queryIndex[paymentItem](ctx, r.ddb, r.tableName, paymentsHireRequestIndex, "hireRequestId", hireRequestID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPaymentItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		HireRequestID:     p.HireRequestID,
		RazorpayPaymentID: p.RazorpayPaymentID,
		RazorpayOrderID:   p.RazorpayOrderID,
		RazorpaySignature: p.RazorpaySignature,
		Status:            string(p.Status),
		Amount:            floatToString(p.Amount),
		CreatedAt:         formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		HireRequestID:     it.HireRequestID,
		RazorpayPaymentID: it.RazorpayPaymentID,
		RazorpayOrderID:   it.RazorpayOrderID,
		RazorpaySignature: it.RazorpaySignature,
		Status:            entities.LedgerStatus(it.Status),
		Amount:            parseFloat(it.Amount),
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
