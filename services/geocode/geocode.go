package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"movelink/models"
	"movelink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MinQueryLen is the shortest query worth sending to the provider; anything
// shorter returns no suggestions without touching the network.
const MinQueryLen = 2

const openCageEndpoint = "https://api.opencagedata.com/geocode/v1/json"

// Searcher resolves a partial address into ranked location candidates.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.LocationPoint, error)
}

// OpenCageClient implements Searcher against the OpenCage forward geocoder.
type OpenCageClient struct {
	HTTPClient *http.Client
	APIKey     string
	Logger     *zap.Logger
}

func NewOpenCageClient(apiKey string, logger *zap.Logger) *OpenCageClient {
	return &OpenCageClient{
		HTTPClient: &http.Client{Timeout: utils.GeocodeTimeout},
		APIKey:     apiKey,
		Logger:     logger,
	}
}

// openCageResponse mirrors the fields we read from the provider.
type openCageResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
		Geometry  struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Annotations struct {
			OSM struct {
				ID int64 `json:"id"`
			} `json:"osm"`
		} `json:"annotations"`
	} `json:"results"`
}

// Search returns up to five candidates for the query. Queries shorter than
// MinQueryLen resolve to an empty list without a network call. Candidates
// with out-of-range coordinates are dropped here; downstream consumers
// trust resolved points.
func (c *OpenCageClient) Search(ctx context.Context, query string) ([]models.LocationPoint, error) {
	if len(strings.TrimSpace(query)) < MinQueryLen {
		return []models.LocationPoint{}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.APIKey)
	params.Set("limit", "5")
	params.Set("no_annotations", "1")
	params.Set("min_confidence", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openCageEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode provider returned status %d", resp.StatusCode)
	}

	var out openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("geocode decode: %w", err)
	}

	points := make([]models.LocationPoint, 0, len(out.Results))
	for _, r := range out.Results {
		geo := models.GeoPoint{Latitude: r.Geometry.Lat, Longitude: r.Geometry.Lng}
		if !geo.Valid() {
			c.Logger.Warn("dropping geocode candidate with invalid coordinates",
				zap.String("formatted", r.Formatted),
				zap.Float64("lat", geo.Latitude),
				zap.Float64("lng", geo.Longitude),
			)
			continue
		}
		id := uuid.NewString()
		if r.Annotations.OSM.ID != 0 {
			id = strconv.FormatInt(r.Annotations.OSM.ID, 10)
		}
		points = append(points, models.LocationPoint{
			ID:        id,
			Formatted: r.Formatted,
			Geometry:  &geo,
		})
	}
	return points, nil
}
