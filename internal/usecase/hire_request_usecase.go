package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// maxTransitionAttempts bounds the re-read loop after a version conflict.
const maxTransitionAttempts = 3

const deletedServiceTitle = "a deleted service"

// CreateHireRequestInput is what a client supplies to open a hire request.
// The gig worker is derived from the service owner, never taken from the caller.
type CreateHireRequestInput struct {
	ServiceID         string
	Message           string
	Budget            float64
	RequestedDateTime string
}

// IHireRequestUseCase is the hire workflow exposed to callers.
//
// Every call takes the caller's resolved identity explicitly. Mutations re-read the
// record, authorize against clientId/gigWorkerId, check the transition table and write
// conditioned on the version they read.
type IHireRequestUseCase interface {
	Create(ctx context.Context, caller entities.Identity, in CreateHireRequestInput) (entities.HireRequest, error)
	Accept(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error)
	Reject(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error)
	CompleteWork(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error)
	ConfirmCompletion(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error)
	DisputeCompletion(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error)
	Get(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error)
	ListMine(ctx context.Context, caller entities.Identity, acceptedOnly bool) ([]entities.HireRequest, error)
	ListByService(ctx context.Context, caller entities.Identity, serviceID string) ([]entities.HireRequest, error)
}

// IHireRequestEscrow is the system-driven part of the workflow, used by the payment
// use case after it has talked to the gateway.
//
// AttachOrder returns the stored order id, which is the existing one when an order
// was attached before. MarkPaid reports applied=false for a request that is already PAID.
type IHireRequestEscrow interface {
	AttachOrder(ctx context.Context, hireRequestID, orderID string) (entities.HireRequest, error)
	MarkPaid(ctx context.Context, hireRequestID string, p entities.Payment) (h entities.HireRequest, applied bool, err error)
}

type HireRequestUseCase struct {
	repo      interfaces.IHireRequestRepository
	directory interfaces.IDirectory
	notifier  interfaces.INotifier
	payouts   interfaces.IPayoutTrigger
	now       func() time.Time
	location  *time.Location
}

var (
	_ IHireRequestUseCase = (*HireRequestUseCase)(nil)
	_ IHireRequestEscrow  = (*HireRequestUseCase)(nil)
)

func NewHireRequestUseCase(repo interfaces.IHireRequestRepository, directory interfaces.IDirectory, notifier interfaces.INotifier, payouts interfaces.IPayoutTrigger) *HireRequestUseCase {
	return &HireRequestUseCase{
		repo:      repo,
		directory: directory,
		notifier:  notifier,
		payouts:   payouts,
		now:       time.Now,
		location:  time.Local,
	}
}

// WithClock overrides the time source and the zone requestedDateTime is read in.
func (u *HireRequestUseCase) WithClock(now func() time.Time, loc *time.Location) *HireRequestUseCase {
	if now != nil {
		u.now = now
	}
	if loc != nil {
		u.location = loc
	}
	return u
}

func (u *HireRequestUseCase) Create(ctx context.Context, caller entities.Identity, in CreateHireRequestInput) (entities.HireRequest, error) {
	log.Printf("[hire][usecase] create start client_id=%s service_id=%q", caller.UserID, in.ServiceID)
	if err := authorizeRole(opCreate, caller); err != nil {
		log.Printf("[hire][usecase] create forbidden caller=%s role=%s", caller.UserID, caller.Role)
		return entities.HireRequest{}, err
	}

	serviceID := strings.TrimSpace(in.ServiceID)
	if serviceID == "" {
		return entities.HireRequest{}, ErrInvalidServiceID
	}
	if !entities.ValidBudget(in.Budget) {
		log.Printf("[hire][usecase] invalid budget client_id=%s budget=%v", caller.UserID, in.Budget)
		return entities.HireRequest{}, ErrInvalidBudget
	}
	now := u.now()
	if _, err := u.parseRequestedDateTime(in.RequestedDateTime, now); err != nil {
		log.Printf("[hire][usecase] invalid requestedDateTime client_id=%s value=%q err=%v", caller.UserID, in.RequestedDateTime, err)
		return entities.HireRequest{}, err
	}

	service, err := u.directory.GetServiceByID(ctx, serviceID)
	if err != nil {
		return entities.HireRequest{}, infraError("load service", err)
	}
	if service.ID == "" {
		log.Printf("[hire][usecase] service not found service_id=%s", serviceID)
		return entities.HireRequest{}, ErrServiceNotFound
	}
	worker, err := u.directory.GetUserByID(ctx, service.UserID)
	if err != nil {
		return entities.HireRequest{}, infraError("load gig worker", err)
	}
	if worker.ID == "" {
		log.Printf("[hire][usecase] gig worker not found user_id=%s", service.UserID)
		return entities.HireRequest{}, ErrGigWorkerNotFound
	}
	if worker.Role != entities.RoleGigWorker {
		log.Printf("[hire][usecase] target user is not a gig worker user_id=%s role=%s", worker.ID, worker.Role)
		return entities.HireRequest{}, ErrTargetNotWorker
	}

	h := entities.HireRequest{
		ID:                uuid.NewString(),
		ServiceID:         service.ID,
		GigWorkerID:       worker.ID,
		ClientID:          caller.UserID,
		Message:           strings.TrimSpace(in.Message),
		Status:            entities.HireStatusPending,
		CreatedAt:         now.UTC(),
		RequestedDateTime: strings.TrimSpace(in.RequestedDateTime),
		Budget:            in.Budget,
		Version:           1,
	}
	created, err := u.repo.Create(ctx, h)
	if err != nil {
		log.Printf("[hire][usecase] create failed client_id=%s err=%v", caller.UserID, err)
		return entities.HireRequest{}, infraError("create hire request", err)
	}
	log.Printf("[hire][usecase] create success id=%s client_id=%s gig_worker_id=%s", created.ID, created.ClientID, created.GigWorkerID)

	u.notify(ctx, created.GigWorkerID, created.ID,
		fmt.Sprintf("You have a new hire request from %s for your service: '%s'", displayName(caller), service.Title))
	return created, nil
}

func (u *HireRequestUseCase) Accept(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error) {
	h, _, err := u.run(ctx, step{op: entities.OpAccept, id: id, caller: &caller})
	if err != nil {
		return entities.HireRequest{}, err
	}
	u.notify(ctx, h.ClientID, h.ID, fmt.Sprintf(
		"Your hire request for service '%s' has been accepted! Please complete the payment to begin the work.",
		u.serviceTitle(ctx, h.ServiceID)))
	return h, nil
}

func (u *HireRequestUseCase) Reject(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error) {
	h, _, err := u.run(ctx, step{op: entities.OpReject, id: id, caller: &caller})
	if err != nil {
		return entities.HireRequest{}, err
	}
	u.notify(ctx, h.ClientID, h.ID, fmt.Sprintf(
		"Unfortunately, your hire request for service '%s' has been rejected.",
		u.serviceTitle(ctx, h.ServiceID)))
	return h, nil
}

func (u *HireRequestUseCase) CompleteWork(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error) {
	h, _, err := u.run(ctx, step{op: entities.OpWorkerComplete, id: id, caller: &caller})
	if err != nil {
		return entities.HireRequest{}, err
	}
	u.notify(ctx, h.ClientID, h.ID, fmt.Sprintf(
		"The work for your hire request '%s' has been marked as complete. Please review and confirm to release the payment.",
		u.serviceTitle(ctx, h.ServiceID)))
	return h, nil
}

func (u *HireRequestUseCase) ConfirmCompletion(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error) {
	h, _, err := u.run(ctx, step{op: entities.OpClientConfirm, id: id, caller: &caller})
	if err != nil {
		return entities.HireRequest{}, err
	}

	log.Printf("[payout][trigger] client confirmed completion hire_request_id=%s gig_worker_id=%s amount=%.2f", h.ID, h.GigWorkerID, h.Budget)
	if u.payouts != nil {
		event := entities.PayoutEvent{
			HireRequestID: h.ID,
			GigWorkerID:   h.GigWorkerID,
			ClientID:      h.ClientID,
			Amount:        h.Budget,
			TriggeredAt:   u.now().UTC(),
		}
		if err := u.payouts.TriggerPayout(ctx, event); err != nil {
			log.Printf("[payout][trigger] emit failed hire_request_id=%s err=%v", h.ID, err)
		}
	}

	u.notify(ctx, h.GigWorkerID, h.ID, fmt.Sprintf(
		"The client has confirmed completion for your service '%s'. The payment is being processed.",
		u.serviceTitle(ctx, h.ServiceID)))
	return h, nil
}

func (u *HireRequestUseCase) DisputeCompletion(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error) {
	h, _, err := u.run(ctx, step{op: entities.OpClientDispute, id: id, caller: &caller})
	if err != nil {
		return entities.HireRequest{}, err
	}
	u.notify(ctx, h.GigWorkerID, h.ID, fmt.Sprintf(
		"The client has disputed the completion of your service '%s'. The payment stays on hold.",
		u.serviceTitle(ctx, h.ServiceID)))
	return h, nil
}

// AttachOrder stores the gateway order id on an accepted, unpaid request.
func (u *HireRequestUseCase) AttachOrder(ctx context.Context, hireRequestID, orderID string) (entities.HireRequest, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.HireRequest{}, ErrInvalidOrderID
	}
	h, applied, err := u.run(ctx, step{
		op: entities.OpAttachOrder,
		id: hireRequestID,
		noop: func(h entities.HireRequest) bool {
			return h.HasOrder() && h.Status == entities.HireStatusAccepted && h.PaymentStatus == entities.PaymentStatusPending
		},
		write: func(ctx context.Context, next entities.HireRequest, version int64) (entities.HireRequest, error) {
			next.RazorpayOrderID = orderID
			return u.repo.Update(ctx, next, version)
		},
	})
	if err != nil {
		return entities.HireRequest{}, err
	}
	if !applied {
		log.Printf("[hire][usecase] order already attached id=%s order_id=%s ignored_order_id=%s", h.ID, h.RazorpayOrderID, orderID)
	}
	return h, nil
}

// MarkPaid flips an accepted request to PAID / IN_PROGRESS and appends the ledger row
// in the same conditional write. A request that is already PAID is returned untouched.
func (u *HireRequestUseCase) MarkPaid(ctx context.Context, hireRequestID string, p entities.Payment) (entities.HireRequest, bool, error) {
	h, applied, err := u.run(ctx, step{
		op: entities.OpMarkPaid,
		id: hireRequestID,
		noop: func(h entities.HireRequest) bool {
			return h.PaymentStatus == entities.PaymentStatusPaid
		},
		write: func(ctx context.Context, next entities.HireRequest, version int64) (entities.HireRequest, error) {
			return u.repo.UpdateWithPayment(ctx, next, version, p)
		},
	})
	if err != nil || !applied {
		return h, applied, err
	}

	clientName := "the client"
	if client, err := u.directory.GetUserByID(ctx, h.ClientID); err == nil && client.Name != "" {
		clientName = client.Name
	}
	u.notify(ctx, h.GigWorkerID, h.ID, fmt.Sprintf("Payment received from %s! You can now begin work.", clientName))
	return h, true, nil
}

func (u *HireRequestUseCase) Get(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error) {
	if err := authorizeRole(opGet, caller); err != nil {
		return entities.HireRequest{}, err
	}
	h, err := u.load(ctx, id)
	if err != nil {
		return entities.HireRequest{}, err
	}
	if err := authorizeRecord(opGet, caller, h); err != nil {
		return entities.HireRequest{}, err
	}
	return h, nil
}

func (u *HireRequestUseCase) ListMine(ctx context.Context, caller entities.Identity, acceptedOnly bool) ([]entities.HireRequest, error) {
	if err := authorizeRole(opListMine, caller); err != nil {
		return nil, err
	}

	var (
		rows []entities.HireRequest
		err  error
		mine func(entities.HireRequest) bool
	)
	switch caller.Role {
	case entities.RoleGigWorker:
		rows, err = u.repo.ListByGigWorkerID(ctx, caller.UserID)
		mine = func(h entities.HireRequest) bool { return h.GigWorkerID == caller.UserID }
	default:
		rows, err = u.repo.ListByClientID(ctx, caller.UserID)
		mine = func(h entities.HireRequest) bool { return h.ClientID == caller.UserID }
	}
	if err != nil {
		return nil, infraError("list hire requests", err)
	}

	out := make([]entities.HireRequest, 0, len(rows))
	for _, h := range rows {
		if !mine(h) {
			continue
		}
		if acceptedOnly && h.Status != entities.HireStatusAccepted {
			continue
		}
		out = append(out, h)
	}
	log.Printf("[hire][usecase] list-mine user_id=%s role=%s accepted_only=%t count=%d", caller.UserID, caller.Role, acceptedOnly, len(out))
	return out, nil
}

func (u *HireRequestUseCase) ListByService(ctx context.Context, caller entities.Identity, serviceID string) ([]entities.HireRequest, error) {
	if err := authorizeRole(opListByService, caller); err != nil {
		return nil, err
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}

	service, err := u.directory.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, infraError("load service", err)
	}
	if service.ID == "" {
		return nil, ErrServiceNotFound
	}
	if service.UserID != caller.UserID {
		return nil, ErrNotServiceOwner
	}

	rows, err := u.repo.ListByServiceID(ctx, serviceID)
	if err != nil {
		return nil, infraError("list hire requests by service", err)
	}
	out := make([]entities.HireRequest, 0, len(rows))
	for _, h := range rows {
		if h.GigWorkerID == caller.UserID {
			out = append(out, h)
		}
	}
	return out, nil
}

// step describes one read-modify-write against a single hire request.
type step struct {
	op     entities.Operation
	id     string
	caller *entities.Identity
	// noop reports that the record already reflects the operation; the current
	// record is returned with applied=false and nothing is written.
	noop  func(h entities.HireRequest) bool
	write func(ctx context.Context, next entities.HireRequest, version int64) (entities.HireRequest, error)
}

func (u *HireRequestUseCase) run(ctx context.Context, s step) (entities.HireRequest, bool, error) {
	if s.caller != nil {
		log.Printf("[hire][usecase] %s start id=%q caller=%s role=%s", s.op, s.id, s.caller.UserID, s.caller.Role)
		if err := authorizeRole(s.op, *s.caller); err != nil {
			log.Printf("[hire][usecase] %s forbidden id=%q caller=%s role=%s", s.op, s.id, s.caller.UserID, s.caller.Role)
			return entities.HireRequest{}, false, err
		}
	}
	write := s.write
	if write == nil {
		write = u.repo.Update
	}

	for attempt := 1; attempt <= maxTransitionAttempts; attempt++ {
		current, err := u.load(ctx, s.id)
		if err != nil {
			return entities.HireRequest{}, false, err
		}
		if s.caller != nil {
			if err := authorizeRecord(s.op, *s.caller, current); err != nil {
				log.Printf("[hire][usecase] %s not authorized id=%s caller=%s", s.op, current.ID, s.caller.UserID)
				return entities.HireRequest{}, false, err
			}
		}
		if s.noop != nil && s.noop(current) {
			return current, false, nil
		}

		next, err := entities.Apply(s.op, current)
		if err != nil {
			log.Printf("[hire][usecase] %s rejected id=%s status=%s work=%s payment=%s confirmation=%s err=%v",
				s.op, current.ID, current.Status, current.WorkStatus, current.PaymentStatus, current.ClientConfirmationStatus, err)
			return entities.HireRequest{}, false, transitionError(err)
		}

		saved, err := write(ctx, next, current.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[hire][usecase] %s version conflict id=%s version=%d attempt=%d", s.op, current.ID, current.Version, attempt)
			continue
		}
		if err != nil {
			log.Printf("[hire][usecase] %s write failed id=%s err=%v", s.op, current.ID, err)
			return entities.HireRequest{}, false, infraError("update hire request", err)
		}
		log.Printf("[hire][usecase] %s success id=%s status=%s work=%s payment=%s confirmation=%s version=%d",
			s.op, saved.ID, saved.Status, saved.WorkStatus, saved.PaymentStatus, saved.ClientConfirmationStatus, saved.Version)
		return saved, true, nil
	}
	return entities.HireRequest{}, false, ErrConcurrentUpdate
}

func (u *HireRequestUseCase) load(ctx context.Context, id string) (entities.HireRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HireRequest{}, ErrInvalidHireRequestID
	}
	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.HireRequest{}, infraError("load hire request", err)
	}
	if h.ID == "" {
		return entities.HireRequest{}, ErrHireRequestNotFound
	}
	return h, nil
}

func transitionError(err error) error {
	var te *entities.TransitionError
	if errors.As(err, &te) {
		return wrapError(ErrInvalidTransition, te.Reason, err)
	}
	return wrapError(ErrInvalidTransition, "", err)
}

// parseRequestedDateTime reads an ISO-8601 local date-time (no offset) in the
// configured zone and requires it to be strictly after now.
func (u *HireRequestUseCase) parseRequestedDateTime(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrMissingRequestedTime
	}
	var (
		t   time.Time
		err error
	)
	for _, layout := range []string{entities.RequestedDateTimeLayout, "2006-01-02T15:04"} {
		if t, err = time.ParseInLocation(layout, raw, u.location); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, ErrInvalidRequestedTime
	}
	if !t.After(now) {
		return time.Time{}, ErrRequestedTimeNotFuture
	}
	return t, nil
}

func (u *HireRequestUseCase) serviceTitle(ctx context.Context, serviceID string) string {
	service, err := u.directory.GetServiceByID(ctx, serviceID)
	if err != nil || service.ID == "" || service.Title == "" {
		return deletedServiceTitle
	}
	return service.Title
}

// notify hands a notification to the dispatcher. Delivery is best-effort and never
// affects the transition that produced it.
func (u *HireRequestUseCase) notify(ctx context.Context, toUserID, hireRequestID, content string) {
	if u.notifier == nil || toUserID == "" {
		return
	}
	u.notifier.Send(ctx, entities.Notification{
		Content:       content,
		ToUserID:      toUserID,
		HireRequestID: hireRequestID,
		CreatedAt:     u.now().UTC(),
	})
}

func displayName(id entities.Identity) string {
	if id.Name != "" {
		return id.Name
	}
	if id.Email != "" {
		return id.Email
	}
	return "a client"
}
