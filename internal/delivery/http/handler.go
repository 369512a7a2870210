package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopstation/backend/internal/domain"
	"github.com/shopstation/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	lists   *usecase.ListService
	pricing *usecase.PricingService
	catalog domain.CatalogProvider
}

// NewHandler creates a new HTTP handler
func NewHandler(lists *usecase.ListService, pricing *usecase.PricingService, catalog domain.CatalogProvider) *Handler {
	return &Handler{lists: lists, pricing: pricing, catalog: catalog}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopstation-backend",
		"version": "1.0.0",
	})
}

// MatchListRequest is the body of POST /lists/match.
type MatchListRequest struct {
	Items []string `json:"items" binding:"required"`
}

// MatchList resolves every pasted list line to its best catalog product.
// Unmatched lines are part of a normal response, never an error.
func (h *Handler) MatchList(c *gin.Context) {
	var req MatchListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items is required"})
		return
	}

	result, err := h.lists.MatchList(c.Request.Context(), req.Items)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "items must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to match list"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompareRequest is the body of POST /prices/compare.
type CompareRequest struct {
	Items  []domain.MatchedItem `json:"items" binding:"required"`
	Stores []string             `json:"stores"`
}

// CompareResponse wraps ranked store totals with the best-store pick.
type CompareResponse struct {
	Totals    []domain.StoreTotal `json:"totals"`
	BestStore string              `json:"bestStore,omitempty"`
}

// ComparePrices totals the matched items at each requested store and ranks
// them. When no store list is given, every store in the catalog is compared.
func (h *Handler) ComparePrices(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items is required"})
		return
	}

	stores := req.Stores
	if len(stores) == 0 {
		all, err := h.catalog.Stores(c.Request.Context())
		if err != nil || len(all) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no stores available"})
			return
		}
		stores = all
	}

	totals, err := h.pricing.CompareAcrossStores(c.Request.Context(), req.Items, stores)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stores must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compare stores"})
		return
	}

	resp := CompareResponse{Totals: totals}
	if best, ok := usecase.BestStore(totals); ok {
		resp.BestStore = best.StoreName
	}
	c.JSON(http.StatusOK, resp)
}

// FeedbackRequest is the body of POST /feedback.
type FeedbackRequest struct {
	OriginalQuery  string `json:"originalQuery" binding:"required"`
	SuggestedMatch string `json:"suggestedMatch"`
	UserCorrection string `json:"userCorrection"`
	WasAccepted    bool   `json:"wasAccepted"`
}

// RecordFeedback ingests a user's verdict on a suggested match. Rejections
// with a correction teach the synonym table.
func (h *Handler) RecordFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "originalQuery is required"})
		return
	}

	h.lists.RecordUserFeedback(c.Request.Context(), req.OriginalQuery, req.SuggestedMatch, req.UserCorrection, req.WasAccepted)

	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

// ListStores returns the store names known to the catalog.
func (h *Handler) ListStores(c *gin.Context) {
	stores, err := h.catalog.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list stores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stores": stores})
}
