package handlers

import (
	"errors"
	"net/http"

	"movelink/services/geocode"
	"movelink/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler exposes the quote wizard over HTTP.
type QuoteHandler struct {
	QuoteSvc quote.SessionService
	Suggest  *geocode.Debouncer
	Logger   *zap.Logger
}

func NewQuoteHandler(quoteSvc quote.SessionService, suggest *geocode.Debouncer, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		QuoteSvc: quoteSvc,
		Suggest:  suggest,
		Logger:   logger,
	}
}

// respondQuoteError maps service errors onto HTTP statuses: user-input
// rejections are 422 with the message intact, missing sessions 404,
// everything else 500.
func (h *QuoteHandler) respondQuoteError(c *gin.Context, err error) {
	var fe *quote.FlowError
	switch {
	case errors.As(err, &fe):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fe.Code, "message": fe.Message})
	case errors.Is(err, quote.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "quote session not found or expired"})
	default:
		h.Logger.Error("quote session error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
	}
}

// StartSession handles POST /api/quote/session.
func (h *QuoteHandler) StartSession(c *gin.Context) {
	var input struct {
		UserName string `json:"userName"`
	}
	// The body is optional; an anonymous session is fine.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
	}

	draft, err := h.QuoteSvc.Initiate(c.Request.Context(), input.UserName)
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID": draft.SessionID,
		"draft":     draft,
	})
}

// GetSession handles GET /api/quote/session/:sessionID.
func (h *QuoteHandler) GetSession(c *gin.Context) {
	draft, err := h.QuoteSvc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ApplyAction handles POST /api/quote/session/:sessionID/actions.
func (h *QuoteHandler) ApplyAction(c *gin.Context) {
	var action quote.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.QuoteSvc.Apply(c.Request.Context(), c.Param("sessionID"), action)
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// GetVehicles handles GET /api/quote/session/:sessionID/vehicles.
func (h *QuoteHandler) GetVehicles(c *gin.Context) {
	vehicles, signal, err := h.QuoteSvc.Vehicles(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vehicles":    vehicles,
		"cargoSignal": signal,
	})
}

// ConfirmQuote handles POST /api/quote/session/:sessionID/confirm. The
// returned payload is the hand-off contract for the checkout collaborator;
// this service does not process it further.
func (h *QuoteHandler) ConfirmQuote(c *gin.Context) {
	export, err := h.QuoteSvc.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": export})
}

// CancelSession handles DELETE /api/quote/session/:sessionID.
func (h *QuoteHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.QuoteSvc.Cancel(c.Request.Context(), sessionID); err != nil {
		h.respondQuoteError(c, err)
		return
	}
	// Drop any pending suggestion timers owned by this session's fields.
	h.Suggest.CancelField(sessionID + ":pickup")
	h.Suggest.CancelField(sessionID + ":dropoff")
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
