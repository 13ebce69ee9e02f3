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
	"github.com/google/uuid"
)

type CatalogHandler struct {
	sales        commands.SalesCommands
	catalog      queries.CatalogQueries
	availability queries.AvailabilityQueries
}

func NewCatalogHandler(sales commands.SalesCommands, catalog queries.CatalogQueries, availability queries.AvailabilityQueries) *CatalogHandler {
	return &CatalogHandler{sales: sales, catalog: catalog, availability: availability}
}

func (h *CatalogHandler) List(c *gin.Context) {
	views, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductList(views))
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// Recommend maps a raw party size and desired stay count onto a catalog SKU.
func (h *CatalogHandler) Recommend(c *gin.Context) {
	var q reqdto.RecommendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	rec := h.availability.RecommendProduct(q.PartySize, q.Stays)
	c.JSON(http.StatusOK, resdto.FromRecommendation(rec))
}

// RecordSale is the purchase-commit hook: it performs the authoritative cap
// enforcement after payment settles upstream.
func (h *CatalogHandler) RecordSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	result, err := h.sales.RecordSale(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, errs.ErrBetaCapReached), errors.Is(err, errs.ErrGlobalCapReached):
			httperr.AbortWithError(c, http.StatusConflict, err, "Certificate cap reached", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record sale", nil)
		}
		return
	}
	c.JSON(http.StatusOK, &resdto.SaleResponse{
		ProductID:           result.ProductID.String(),
		SoldCount:           result.SoldCount,
		RemainingForProduct: result.RemainingForProduct,
	})
}

func (h *CatalogHandler) SetSales(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SetProductSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.sales.SetProductSales(c.Request.Context(), id, *req.Enabled); err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update sales flag", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
