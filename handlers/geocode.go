package handlers

import (
	"net/http"

	"movelink/services/geocode"

	"github.com/gin-gonic/gin"
)

var suggestFields = map[string]bool{"pickup": true, "dropoff": true}

// SuggestLocations handles GET /api/quote/session/:sessionID/suggest.
// Queries are debounced per session field; when a newer keystroke lands
// before this one resolves, the earlier request is released with a
// superseded status and no suggestions.
func (h *QuoteHandler) SuggestLocations(c *gin.Context) {
	field := c.Query("field")
	if !suggestFields[field] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field must be one of: pickup, dropoff"})
		return
	}
	sessionID := c.Param("sessionID")
	if _, err := h.QuoteSvc.Get(c.Request.Context(), sessionID); err != nil {
		h.respondQuoteError(c, err)
		return
	}

	ch := h.Suggest.Submit(sessionID+":"+field, c.Query("q"))
	select {
	case res := <-ch:
		if res.Superseded {
			c.JSON(http.StatusOK, gin.H{"status": "superseded", "query": res.Query})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":      statusLabel(res.State),
			"query":       res.Query,
			"suggestions": res.Suggestions,
		})
	case <-c.Request.Context().Done():
		h.Suggest.CancelField(sessionID + ":" + field)
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})
	}
}

func statusLabel(s geocode.FetchState) string {
	switch s {
	case geocode.StateResolved:
		return "resolved"
	case geocode.StateFailed:
		return "failed"
	case geocode.StatePending:
		return "pending"
	default:
		return "idle"
	}
}
