package repository

import (
	"context"
	"strconv"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHireRequestsTableName = "hire_requests"
	hireRequestsGigWorkerIndex   = "gigWorkerId-index"
	hireRequestsClientIndex      = "clientId-index"
	hireRequestsServiceIndex     = "serviceId-index"
	hireRequestsOrderIndex       = "razorpayOrderId-index"

	versionCondition = "attribute_exists(#id) AND #version = :expected"
)

type hireRequestItem struct {
	ID                       string `dynamodbav:"id"`
	ServiceID                string `dynamodbav:"serviceId"`
	GigWorkerID              string `dynamodbav:"gigWorkerId"`
	ClientID                 string `dynamodbav:"clientId"`
	Message                  string `dynamodbav:"message,omitempty"`
	Status                   string `dynamodbav:"status"`
	WorkStatus               string `dynamodbav:"workStatus,omitempty"`
	PaymentStatus            string `dynamodbav:"paymentStatus,omitempty"`
	ClientConfirmationStatus string `dynamodbav:"clientConfirmationStatus,omitempty"`
	CreatedAt                string `dynamodbav:"createdAt"`
	RequestedDateTime        string `dynamodbav:"requestedDateTime"`
	Budget                   string `dynamodbav:"budget"`
	RazorpayOrderID          string `dynamodbav:"razorpayOrderId,omitempty"`
	Version                  int64  `dynamodbav:"version"`
}

// HireRequestDynamoRepository persists HireRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSIs (PK only): gigWorkerId-index, clientId-index, serviceId-index,
//     razorpayOrderId-index (sparse, the attribute is absent until an order is attached)
//
// Every update is a full put conditioned on the version the caller read.
type HireRequestDynamoRepository struct {
	ddb           dynamoAPI
	tableName     string
	paymentsTable string
}

var _ interfaces.IHireRequestRepository = (*HireRequestDynamoRepository)(nil)

func NewHireRequestDynamoRepository(ddb *dynamodb.Client) *HireRequestDynamoRepository {
	return newHireRequestRepository(ddb)
}

func newHireRequestRepository(ddb dynamoAPI) *HireRequestDynamoRepository {
	return &HireRequestDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("HIRE_REQUESTS_TABLE", defaultHireRequestsTableName),
		paymentsTable: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *HireRequestDynamoRepository) Create(ctx context.Context, h entities.HireRequest) (entities.HireRequest, error) {
	av, err := attributevalue.MarshalMap(toHireRequestItem(h))
	if err != nil {
		return entities.HireRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.HireRequest{}, err
	}
	return h, nil
}

func (r *HireRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.HireRequest, error) {
	it, ok, err := getItem[hireRequestItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.HireRequest{}, err
	}
	return fromHireRequestItem(it), nil
}

func (r *HireRequestDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.HireRequest, error) {
	items, err := queryIndex[hireRequestItem](ctx, r.ddb, r.tableName, hireRequestsOrderIndex, "razorpayOrderId", orderID)
	if err != nil || len(items) == 0 {
		return entities.HireRequest{}, err
	}
	// GSI reads are eventually consistent; re-read the base item.
	return r.GetByID(ctx, items[0].ID)
}

func (r *HireRequestDynamoRepository) ListByGigWorkerID(ctx context.Context, gigWorkerID string) ([]entities.HireRequest, error) {
	return r.listByIndex(ctx, hireRequestsGigWorkerIndex, "gigWorkerId", gigWorkerID)
}

func (r *HireRequestDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.HireRequest, error) {
	return r.listByIndex(ctx, hireRequestsClientIndex, "clientId", clientID)
}

func (r *HireRequestDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.HireRequest, error) {
	return r.listByIndex(ctx, hireRequestsServiceIndex, "serviceId", serviceID)
}

func (r *HireRequestDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.HireRequest, error) {
	items, err := queryIndex[hireRequestItem](ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	out := make([]entities.HireRequest, 0, len(items))
	for _, it := range items {
		out = append(out, fromHireRequestItem(it))
	}
	return out, nil
}

func (r *HireRequestDynamoRepository) Update(ctx context.Context, h entities.HireRequest, expectedVersion int64) (entities.HireRequest, error) {
	put, next, err := r.versionedPut(h, expectedVersion)
	if err != nil {
		return entities.HireRequest{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 put.TableName,
		Item:                      put.Item,
		ConditionExpression:       put.ConditionExpression,
		ExpressionAttributeNames:  put.ExpressionAttributeNames,
		ExpressionAttributeValues: put.ExpressionAttributeValues,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.HireRequest{}, interfaces.ErrVersionConflict
		}
		return entities.HireRequest{}, err
	}
	return next, nil
}

// UpdateWithPayment writes the hire request and its ledger row in one transaction.
// The ledger put is conditioned on the row not existing, so a replayed payment
// cancels the whole write.
func (r *HireRequestDynamoRepository) UpdateWithPayment(ctx context.Context, h entities.HireRequest, expectedVersion int64, p entities.Payment) (entities.HireRequest, error) {
	put, next, err := r.versionedPut(h, expectedVersion)
	if err != nil {
		return entities.HireRequest{}, err
	}
	paymentAV, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.HireRequest{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: put},
			{Put: &types.Put{
				TableName:           aws.String(r.paymentsTable),
				Item:                paymentAV,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
		},
	})
	if err != nil {
		if isTransactionConflict(err) {
			return entities.HireRequest{}, interfaces.ErrVersionConflict
		}
		return entities.HireRequest{}, err
	}
	return next, nil
}

func (r *HireRequestDynamoRepository) versionedPut(h entities.HireRequest, expectedVersion int64) (*types.Put, entities.HireRequest, error) {
	h.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toHireRequestItem(h))
	if err != nil {
		return nil, entities.HireRequest{}, err
	}
	return &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(versionCondition),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	}, h, nil
}

func toHireRequestItem(h entities.HireRequest) hireRequestItem {
	return hireRequestItem{
		ID:                       h.ID,
		ServiceID:                h.ServiceID,
		GigWorkerID:              h.GigWorkerID,
		ClientID:                 h.ClientID,
		Message:                  h.Message,
		Status:                   string(h.Status),
		WorkStatus:               string(h.WorkStatus),
		PaymentStatus:            string(h.PaymentStatus),
		ClientConfirmationStatus: string(h.ClientConfirmationStatus),
		CreatedAt:                formatTime(h.CreatedAt),
		RequestedDateTime:        h.RequestedDateTime,
		Budget:                   floatToString(h.Budget),
		RazorpayOrderID:          h.RazorpayOrderID,
		Version:                  h.Version,
	}
}

func fromHireRequestItem(it hireRequestItem) entities.HireRequest {
	return entities.HireRequest{
		ID:                       it.ID,
		ServiceID:                it.ServiceID,
		GigWorkerID:              it.GigWorkerID,
		ClientID:                 it.ClientID,
		Message:                  it.Message,
		Status:                   entities.HireStatus(it.Status),
		WorkStatus:               entities.WorkStatus(it.WorkStatus),
		PaymentStatus:            entities.PaymentStatus(it.PaymentStatus),
		ClientConfirmationStatus: entities.ConfirmationStatus(it.ClientConfirmationStatus),
		CreatedAt:                parseTime(it.CreatedAt),
		RequestedDateTime:        it.RequestedDateTime,
		Budget:                   parseFloat(it.Budget),
		RazorpayOrderID:          it.RazorpayOrderID,
		Version:                  it.Version,
	}
}
