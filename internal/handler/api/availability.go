package api

import (
	"errors"
	"net/http"
	"strconv"

	"weekchain-capacity/internal/domain/certificate"
	reqdto "weekchain-capacity/internal/handler/dto/request"
	resdto "weekchain-capacity/internal/handler/dto/response"
	"weekchain-capacity/internal/handler/httperr"
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q     queries.AvailabilityQueries
	sales commands.SalesCommands
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, sales commands.SalesCommands) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, sales: sales}
}

// ByProduct runs the full gate for one SKU. The decision is always 200;
// rejection is data, not an HTTP error.
func (h *AvailabilityHandler) ByProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	decision, err := h.q.IsProductAvailable(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Availability check failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductAvailability(decision))
}

func (h *AvailabilityHandler) BySpec(c *gin.Context) {
	var q reqdto.SpecAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	decision, err := h.q.IsProductSpecAvailable(c.Request.Context(), q.MaxPax, q.Stays)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Availability check failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductAvailability(decision))
}

func (h *AvailabilityHandler) ByTier(c *gin.Context) {
	stays, err := strconv.Atoi(c.Param("stays"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stays value", nil)
		return
	}
	class, err := certificate.NewStaysClass(stays)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stays value", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.TierAvailabilityResponse{
		Stays:     stays,
		Available: h.q.IsTierAvailable(c.Request.Context(), class),
	})
}

func (h *AvailabilityHandler) JoinWaitlist(c *gin.Context) {
	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	err := h.sales.JoinWaitlist(c.Request.Context(), commands.WaitlistEntry{
		Email:        req.Email,
		PartySize:    req.PartySize,
		DesiredStays: req.DesiredStays,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrWaitlistClosed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Waitlist is not open", nil)
		case errors.Is(err, errs.ErrAlreadyOnWaitlist):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already on waitlist", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to join waitlist", nil)
		}
		return
	}
	c.Status(http.StatusCreated)
}
