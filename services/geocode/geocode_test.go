package geocode

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// roundTripFunc lets a test stand in for the HTTP transport.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(fn roundTripFunc) *OpenCageClient {
	c := NewOpenCageClient("test-key", zap.NewNop())
	c.HTTPClient = &http.Client{Transport: fn}
	return c
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestSearchShortQuerySkipsNetwork(t *testing.T) {
	called := false
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		called = true
		return jsonResponse(http.StatusOK, `{"results":[]}`), nil
	})

	for _, q := range []string{"", "N", "  N  "} {
		points, err := client.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, points)
	}
	assert.False(t, called, "queries below the minimum length must not hit the provider")
}

func TestSearchBuildsProviderQuery(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{"results":[]}`), nil
	})

	_, err := client.Search(context.Background(), "Nairobi")
	require.NoError(t, err)
	require.NotNil(t, captured)

	q := captured.URL.Query()
	assert.Equal(t, "Nairobi", q.Get("q"))
	assert.Equal(t, "test-key", q.Get("key"))
	assert.Equal(t, "5", q.Get("limit"))
	assert.Equal(t, "1", q.Get("no_annotations"))
	assert.Equal(t, "5", q.Get("min_confidence"))
}

func TestSearchParsesAndFiltersResults(t *testing.T) {
	body := `{"results":[
		{"formatted":"Nairobi, Kenya","geometry":{"lat":-1.286389,"lng":36.817223},"annotations":{"osm":{"id":920471}}},
		{"formatted":"Nowhere","geometry":{"lat":95.0,"lng":36.8}},
		{"formatted":"Mombasa, Kenya","geometry":{"lat":-4.043477,"lng":39.668206}}
	]}`
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	})

	points, err := client.Search(context.Background(), "Kenya")
	require.NoError(t, err)
	require.Len(t, points, 2, "out-of-range coordinates are dropped")

	assert.Equal(t, "920471", points[0].ID, "OSM id becomes the candidate id")
	assert.Equal(t, "Nairobi, Kenya", points[0].Formatted)
	require.NotNil(t, points[0].Geometry)
	assert.InDelta(t, -1.286389, points[0].Geometry.Latitude, 1e-9)

	assert.NotEmpty(t, points[1].ID, "candidates without an OSM id still get one")
	assert.Equal(t, "Mombasa, Kenya", points[1].Formatted)
}

func TestSearchProviderErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusPaymentRequired, `{"status":{"code":402}}`), nil
		})
		_, err := client.Search(context.Background(), "Nairobi")
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"results":`), nil
		})
		_, err := client.Search(context.Background(), "Nairobi")
		assert.Error(t, err)
	})
}
