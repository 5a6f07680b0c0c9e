package usecase

import (
	"strings"

	"gig_escrow/internal/domain/entities"
)

// Read-side and payment operations that are not state transitions but still
// need an authorization rule.
const (
	opCreate        entities.Operation = "create"
	opGet           entities.Operation = "get"
	opListMine      entities.Operation = "list-mine"
	opListByService entities.Operation = "list-by-service"
	opCreateOrder   entities.Operation = "create-order"
	opListPayments  entities.Operation = "list-payments"
)

type relationship int

const (
	relNone relationship = iota
	relGigWorker
	relClient
	relEitherParty
)

type policy struct {
	roles []entities.Role
	rel   relationship
}

// policies holds one authorization rule per caller-facing operation, keyed by
// (role, relationship to the record). mark-paid and attach-order are driven by the
// gateway adapter and have no caller identity.
var policies = map[entities.Operation]policy{
	opCreate:                  {roles: []entities.Role{entities.RoleClient}, rel: relNone},
	entities.OpAccept:         {roles: []entities.Role{entities.RoleGigWorker}, rel: relGigWorker},
	entities.OpReject:         {roles: []entities.Role{entities.RoleGigWorker}, rel: relGigWorker},
	entities.OpWorkerComplete: {roles: []entities.Role{entities.RoleGigWorker}, rel: relGigWorker},
	entities.OpClientConfirm:  {roles: []entities.Role{entities.RoleClient}, rel: relClient},
	entities.OpClientDispute:  {roles: []entities.Role{entities.RoleClient}, rel: relClient},
	opGet:                     {roles: []entities.Role{entities.RoleClient, entities.RoleGigWorker}, rel: relEitherParty},
	opListMine:                {roles: []entities.Role{entities.RoleClient, entities.RoleGigWorker}, rel: relNone},
	opListByService:           {roles: []entities.Role{entities.RoleGigWorker}, rel: relNone},
	opCreateOrder:             {roles: []entities.Role{entities.RoleClient}, rel: relClient},
	opListPayments:            {roles: []entities.Role{entities.RoleClient, entities.RoleGigWorker}, rel: relEitherParty},
}

// authorizeRole runs before any store read: the caller must be identified and hold
// one of the roles the operation allows.
func authorizeRole(op entities.Operation, caller entities.Identity) error {
	if strings.TrimSpace(caller.UserID) == "" {
		return ErrMissingIdentity
	}
	p, ok := policies[op]
	if !ok {
		return ErrRoleNotAllowed
	}
	for _, r := range p.roles {
		if caller.Role == r {
			return nil
		}
	}
	return ErrRoleNotAllowed
}

// authorizeRecord checks the caller's relationship to a freshly read record.
func authorizeRecord(op entities.Operation, caller entities.Identity, h entities.HireRequest) error {
	p, ok := policies[op]
	if !ok {
		return ErrRoleNotAllowed
	}
	switch p.rel {
	case relGigWorker:
		if h.GigWorkerID != caller.UserID {
			return ErrNotRequestParty
		}
	case relClient:
		if h.ClientID != caller.UserID {
			return ErrNotRequestParty
		}
	case relEitherParty:
		if h.GigWorkerID != caller.UserID && h.ClientID != caller.UserID {
			return ErrNotRequestParty
		}
	}
	return nil
}

func authorize(op entities.Operation, caller entities.Identity, h entities.HireRequest) error {
	if err := authorizeRole(op, caller); err != nil {
		return err
	}
	return authorizeRecord(op, caller, h)
}
