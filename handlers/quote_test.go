package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movelink/handlers"
	"movelink/models"
	"movelink/routes"
	"movelink/services/geocode"
	"movelink/services/quote"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSearcher struct{}

func (stubSearcher) Search(ctx context.Context, query string) ([]models.LocationPoint, error) {
	return []models.LocationPoint{{
		ID:        "920471",
		Formatted: query + ", Kenya",
		Geometry:  &models.GeoPoint{Latitude: -1.286389, Longitude: 36.817223},
	}}, nil
}

func newTestRouter() (*gin.Engine, *geocode.Debouncer) {
	gin.SetMode(gin.TestMode)

	store := quote.NewMemorySessionStore()
	svc := quote.NewSessionService(store, 10*time.Millisecond, zap.NewNop())
	suggest := geocode.NewDebouncer(stubSearcher{}, time.Millisecond, zap.NewNop())

	router := gin.New()
	routes.RegisterQuoteRoutes(router, handlers.NewQuoteHandler(svc, suggest, zap.NewNop()))
	return router, suggest
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	out := map[string]json.RawMessage{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	}
	return w, out
}

func startSession(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w, out := doJSON(t, router, http.MethodPost, "/api/quote/session", gin.H{"userName": "Ken"})
	require.Equal(t, http.StatusOK, w.Code)
	var id string
	require.NoError(t, json.Unmarshal(out["sessionID"], &id))
	require.NotEmpty(t, id)
	return id
}

func TestStartAndGetSession(t *testing.T) {
	router, suggest := newTestRouter()
	defer suggest.Close()

	id := startSession(t, router)

	w, out := doJSON(t, router, http.MethodGet, "/api/quote/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var draft models.QuoteDraft
	require.NoError(t, json.Unmarshal(out["draft"], &draft))
	assert.Equal(t, models.StepInitial, draft.Step)
	assert.Equal(t, "Ken", draft.UserName)
}

func TestUnknownSessionIs404(t *testing.T) {
	router, suggest := newTestRouter()
	defer suggest.Close()

	w, _ := doJSON(t, router, http.MethodGet, "/api/quote/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyActionStatusMapping(t *testing.T) {
	router, suggest := newTestRouter()
	defer suggest.Close()

	id := startSession(t, router)
	actionsPath := fmt.Sprintf("/api/quote/session/%s/actions", id)

	t.Run("valid action advances the draft", func(t *testing.T) {
		w, out := doJSON(t, router, http.MethodPost, actionsPath,
			gin.H{"kind": "choose_service", "service": "delivery"})
		require.Equal(t, http.StatusOK, w.Code)

		var draft models.QuoteDraft
		require.NoError(t, json.Unmarshal(out["draft"], &draft))
		assert.Equal(t, models.StepDelivery, draft.Step)
	})

	t.Run("flow rejection is 422 with the message intact", func(t *testing.T) {
		w, out := doJSON(t, router, http.MethodPost, actionsPath, gin.H{"kind": "continue"})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var msg string
		require.NoError(t, json.Unmarshal(out["message"], &msg))
		assert.Contains(t, msg, "please fill in at least one detail")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, actionsPath, bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogEndpoint(t *testing.T) {
	router, suggest := newTestRouter()
	defer suggest.Close()

	w, out := doJSON(t, router, http.MethodGet, "/api/quote/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var vehicles []models.VehicleOption
	require.NoError(t, json.Unmarshal(out["vehicles"], &vehicles))
	assert.Len(t, vehicles, 6)

	var categories []models.CategoryTag
	require.NoError(t, json.Unmarshal(out["categories"], &categories))
	assert.Equal(t, models.CategoryOrder, categories)
}

func TestVehiclesEndpoint(t *testing.T) {
	router, suggest := newTestRouter()
	defer suggest.Close()

	id := startSession(t, router)
	w, out := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/quote/session/%s/vehicles", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var picks []quote.VehiclePick
	require.NoError(t, json.Unmarshal(out["vehicles"], &picks))
	assert.Len(t, picks, 6, "no classification yet, so the whole fleet is offered")
	for _, p := range picks {
		assert.False(t, p.Recommended, "nothing selected, nothing recommended")
	}
}

func TestSuggestEndpoint(t *testing.T) {
	router, suggest := newTestRouter()
	defer suggest.Close()

	id := startSession(t, router)

	t.Run("unknown field is 400", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet,
			fmt.Sprintf("/api/quote/session/%s/suggest?field=midpoint&q=Nairobi", id), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short query resolves idle without suggestions", func(t *testing.T) {
		w, out := doJSON(t, router, http.MethodGet,
			fmt.Sprintf("/api/quote/session/%s/suggest?field=pickup&q=N", id), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var status string
		require.NoError(t, json.Unmarshal(out["status"], &status))
		assert.Equal(t, "idle", status)
	})

	t.Run("full query returns suggestions", func(t *testing.T) {
		w, out := doJSON(t, router, http.MethodGet,
			fmt.Sprintf("/api/quote/session/%s/suggest?field=dropoff&q=Nairobi", id), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var suggestions []models.LocationPoint
		require.NoError(t, json.Unmarshal(out["suggestions"], &suggestions))
		require.Len(t, suggestions, 1)
		assert.Equal(t, "Nairobi, Kenya", suggestions[0].Formatted)
	})
}

func TestConfirmAndCancel(t *testing.T) {
	router, suggest := newTestRouter()
	defer suggest.Close()

	id := startSession(t, router)

	// Confirming before the summary step is a flow rejection.
	w, _ := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/quote/session/%s/confirm", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = doJSON(t, router, http.MethodDelete, "/api/quote/session/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/quote/session/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
