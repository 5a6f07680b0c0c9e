package entities

import "time"

type Role string

const (
	RoleClient    Role = "CLIENT"
	RoleGigWorker Role = "GIG_WORKER"
	RoleAdmin     Role = "ADMIN"
)

// User is a directory identity. This service only reads it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// GigService is a service listing owned by a gig worker (UserID).
type GigService struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	UserID string `json:"userId"`
}

// Identity is the authenticated caller, resolved once at the transport boundary
// and passed explicitly into every workflow call.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   Role
}

func IdentityFromUser(u User) Identity {
	return Identity{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Notification is a one-line event for a single recipient.
type Notification struct {
	Content       string    `json:"content"`
	ToUserID      string    `json:"toUserId"`
	HireRequestID string    `json:"hireRequestId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PayoutEvent marks that escrowed funds may now be released to the worker.
type PayoutEvent struct {
	HireRequestID string    `json:"hireRequestId"`
	GigWorkerID   string    `json:"gigWorkerId"`
	ClientID      string    `json:"clientId"`
	Amount        float64   `json:"amount"`
	TriggeredAt   time.Time `json:"triggeredAt"`
}
