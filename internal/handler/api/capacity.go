package api

import (
	"errors"
	"net/http"

	reqdto "weekchain-capacity/internal/handler/dto/request"
	resdto "weekchain-capacity/internal/handler/dto/response"
	"weekchain-capacity/internal/handler/httperr"
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CapacityHandler struct {
	cmds commands.CapacityCommands
	q    queries.CapacityQueries
}

func NewCapacityHandler(cmds commands.CapacityCommands, q queries.CapacityQueries) *CapacityHandler {
	return &CapacityHandler{cmds: cmds, q: q}
}

// Status serves the latest snapshot for the public dashboard.
func (h *CapacityHandler) Status(c *gin.Context) {
	view, err := h.q.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrSnapshotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No capacity snapshot recorded yet", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load capacity status", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshotView(view))
}

// Recalculate runs a full capacity computation and persists the result.
func (h *CapacityHandler) Recalculate(c *gin.Context) {
	view, err := h.cmds.RunCalculation(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Capacity calculation failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSnapshotView(view))
}

func (h *CapacityHandler) History(c *gin.Context) {
	var q reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.History(c.Request.Context(), q.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load snapshot history", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshotList(views))
}
