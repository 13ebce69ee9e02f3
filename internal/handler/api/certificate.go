package api

import (
	"net/http"

	resdto "weekchain-capacity/internal/handler/dto/response"
	"weekchain-capacity/internal/handler/httperr"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CertificateHandler struct {
	cmds commands.CertificateCommands
	q    queries.CertificateQueries
}

func NewCertificateHandler(cmds commands.CertificateCommands, q queries.CertificateQueries) *CertificateHandler {
	return &CertificateHandler{cmds: cmds, q: q}
}

// Eligibility reports whether the certificate can request a stay right now.
// A blocked certificate is a 200 with a reason, not an error.
func (h *CertificateHandler) Eligibility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	eligibility, err := h.q.CanRequestStay(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Eligibility check failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStayEligibility(eligibility))
}

func (h *CertificateHandler) Expire(c *gin.Context) {
	n, err := h.cmds.ExpireCertificates(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to expire certificates", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MaintenanceResponse{Affected: n})
}

func (h *CertificateHandler) ResetAnnual(c *gin.Context) {
	n, err := h.cmds.ResetAnnualAllowances(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to reset annual allowances", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MaintenanceResponse{Affected: n})
}
