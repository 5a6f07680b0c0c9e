package interfaces

import (
	"context"

	"gig_escrow/internal/domain/entities"
)

// IDirectory resolves users and services owned by other parts of the platform.
// Lookups return a zero value and nil error when the entity does not exist.
type IDirectory interface {
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetServiceByID(ctx context.Context, id string) (entities.GigService, error)
}
