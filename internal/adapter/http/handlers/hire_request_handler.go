package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	request "gig_escrow/internal/adapter/http/dto/request"
	response "gig_escrow/internal/adapter/http/dto/response"
	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HireRequestHandler exposes the hire request workflow.
type HireRequestHandler struct {
	usecase usecase.IHireRequestUseCase
}

func NewHireRequestHandler(uc usecase.IHireRequestUseCase) *HireRequestHandler {
	return &HireRequestHandler{usecase: uc}
}

// CreateHireRequest godoc
// @Summary      Create a hire request
// @Tags         hire-requests
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateHireRequestRequest  true  "Hire request"
// @Success      201   {object}  response.HireRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /hire-requests [post]
func (h *HireRequestHandler) CreateHireRequest(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	var payload request.CreateHireRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[hire][handler] invalid payload caller=%s err=%v", who.UserID, err)
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), who, payload.ToInput())
	if err != nil {
		log.Printf("[hire][handler] create failed caller=%s service_id=%s err=%v", who.UserID, payload.ServiceID, err)
		writeError(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromHireRequest(created))
}

// @Summary  Accept a pending hire request
// @Tags     hire-requests
// @Produce  json
// @Param    id   path      string  true  "Hire request id"
// @Success  200  {object}  response.HireRequestResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /hire-requests/{id}/accept [post]
func (h *HireRequestHandler) AcceptHireRequest(c *gin.Context) {
	h.transition(c, "accept", h.usecase.Accept)
}

// @Summary  Reject a pending hire request
// @Tags     hire-requests
// @Produce  json
// @Param    id   path      string  true  "Hire request id"
// @Success  200  {object}  response.HireRequestResponse
// @Security BearerAuth
// @Router   /hire-requests/{id}/reject [post]
func (h *HireRequestHandler) RejectHireRequest(c *gin.Context) {
	h.transition(c, "reject", h.usecase.Reject)
}

// @Summary  Mark paid work as delivered
// @Tags     hire-requests
// @Produce  json
// @Param    id   path      string  true  "Hire request id"
// @Success  200  {object}  response.HireRequestResponse
// @Security BearerAuth
// @Router   /hire-requests/{id}/complete [post]
func (h *HireRequestHandler) CompleteWork(c *gin.Context) {
	h.transition(c, "complete", h.usecase.CompleteWork)
}

// @Summary  Confirm delivered work and release the payout
// @Tags     hire-requests
// @Produce  json
// @Param    id   path      string  true  "Hire request id"
// @Success  200  {object}  response.HireRequestResponse
// @Security BearerAuth
// @Router   /hire-requests/{id}/confirm [post]
func (h *HireRequestHandler) ConfirmCompletion(c *gin.Context) {
	h.transition(c, "confirm", h.usecase.ConfirmCompletion)
}

// @Summary  Dispute delivered work
// @Tags     hire-requests
// @Produce  json
// @Param    id   path      string  true  "Hire request id"
// @Success  200  {object}  response.HireRequestResponse
// @Security BearerAuth
// @Router   /hire-requests/{id}/dispute [post]
func (h *HireRequestHandler) DisputeCompletion(c *gin.Context) {
	h.transition(c, "dispute", h.usecase.DisputeCompletion)
}

func (h *HireRequestHandler) transition(
	c *gin.Context,
	op string,
	apply func(ctx context.Context, caller entities.Identity, id string) (entities.HireRequest, error),
) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id := c.Param("id")
	log.Printf("[hire][handler] %s start id=%s caller=%s", op, id, who.UserID)

	updated, err := apply(c.Request.Context(), who, id)
	if err != nil {
		log.Printf("[hire][handler] %s failed id=%s caller=%s err=%v", op, id, who.UserID, err)
		writeError(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHireRequest(updated))
}

// @Summary  Get a hire request
// @Tags     hire-requests
// @Produce  json
// @Param    id   path      string  true  "Hire request id"
// @Success  200  {object}  response.HireRequestResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /hire-requests/{id} [get]
func (h *HireRequestHandler) GetHireRequest(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	found, err := h.usecase.Get(c.Request.Context(), who, c.Param("id"))
	if err != nil {
		writeError(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHireRequest(found))
}

// ListMine returns the caller's requests: as client, or as gig worker.
//
// @Summary  List the caller's hire requests
// @Tags     hire-requests
// @Produce  json
// @Param    accepted  query     bool  false  "Only ACCEPTED requests"
// @Success  200       {array}   response.HireRequestResponse
// @Security BearerAuth
// @Router   /hire-requests [get]
func (h *HireRequestHandler) ListMine(c *gin.Context) {
	acceptedOnly := false
	if raw := c.Query("accepted"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(c, errInvalidPayload)
			return
		}
		acceptedOnly = v
	}
	h.list(c, acceptedOnly)
}

// @Summary  List the caller's accepted hire requests
// @Tags     hire-requests
// @Produce  json
// @Success  200  {array}  response.HireRequestResponse
// @Security BearerAuth
// @Router   /hire-requests/accepted [get]
func (h *HireRequestHandler) ListAccepted(c *gin.Context) {
	h.list(c, true)
}

func (h *HireRequestHandler) list(c *gin.Context, acceptedOnly bool) {
	who, ok := caller(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListMine(c.Request.Context(), who, acceptedOnly)
	if err != nil {
		log.Printf("[hire][handler] list failed caller=%s err=%v", who.UserID, err)
		writeError(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHireRequests(list))
}

// @Summary  List hire requests for a service
// @Tags     hire-requests
// @Produce  json
// @Param    serviceId  path     string  true  "Service id"
// @Success  200        {array}  response.HireRequestResponse
// @Security BearerAuth
// @Router   /hire-requests/service/{serviceId} [get]
func (h *HireRequestHandler) ListByService(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListByService(c.Request.Context(), who, c.Param("serviceId"))
	if err != nil {
		writeError(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHireRequests(list))
}
