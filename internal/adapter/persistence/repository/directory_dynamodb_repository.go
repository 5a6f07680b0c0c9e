package repository

import (
	"context"
	"strings"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultUsersTableName    = "users"
	defaultServicesTableName = "services"
	usersEmailIndex          = "email-index"
)

type userItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
	Role  string `dynamodbav:"role"`
}

type serviceItem struct {
	ID     string `dynamodbav:"id"`
	Title  string `dynamodbav:"title"`
	UserID string `dynamodbav:"userId"`
}

// DirectoryDynamoRepository reads users and services owned by the rest of the platform.
//
// Table requirements:
//   - users: PK id, GSI email-index (PK: email)
//   - services: PK id
type DirectoryDynamoRepository struct {
	ddb           dynamoAPI
	usersTable    string
	servicesTable string
}

var _ interfaces.IDirectory = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb *dynamodb.Client) *DirectoryDynamoRepository {
	return newDirectoryRepository(ddb)
}

func newDirectoryRepository(ddb dynamoAPI) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{
		ddb:           ddb,
		usersTable:    getenvDefault("USERS_TABLE", defaultUsersTableName),
		servicesTable: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *DirectoryDynamoRepository) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	it, ok, err := getItem[userItem](ctx, r.ddb, r.usersTable, id)
	if err != nil || !ok {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *DirectoryDynamoRepository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.User{}, nil
	}
	items, err := queryIndex[userItem](ctx, r.ddb, r.usersTable, usersEmailIndex, "email", email)
	if err != nil || len(items) == 0 {
		return entities.User{}, err
	}
	return fromUserItem(items[0]), nil
}

func (r *DirectoryDynamoRepository) GetServiceByID(ctx context.Context, id string) (entities.GigService, error) {
	it, ok, err := getItem[serviceItem](ctx, r.ddb, r.servicesTable, id)
	if err != nil || !ok {
		return entities.GigService{}, err
	}
	return entities.GigService{ID: it.ID, Title: it.Title, UserID: it.UserID}, nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{ID: it.ID, Name: it.Name, Email: it.Email, Role: entities.Role(it.Role)}
}
