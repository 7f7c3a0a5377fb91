package quote

import (
	"testing"

	"movelink/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
		want   models.TripClassification
	}{
		{name: "zero distance is local", meters: 0, want: models.TripLocal},
		{name: "just under local limit", meters: 19999.9, want: models.TripLocal},
		{name: "local boundary is regional", meters: 20000, want: models.TripRegional},
		{name: "mid-range is regional", meters: 55000, want: models.TripRegional},
		{name: "regional boundary is regional", meters: 100000, want: models.TripRegional},
		{name: "just over regional limit", meters: 100000.1, want: models.TripLongHaul},
		{name: "cross-country is long-haul", meters: 480000, want: models.TripLongHaul},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.meters))
		})
	}
}

func TestDistanceMeters(t *testing.T) {
	// One degree of longitude on the equator is roughly 111.2 km.
	a := models.GeoPoint{Latitude: 0, Longitude: 0}
	b := models.GeoPoint{Latitude: 0, Longitude: 1}
	assert.InDelta(t, 111195, DistanceMeters(a, b), 100)

	// Symmetric and zero for identical points.
	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
	assert.Zero(t, DistanceMeters(a, a))
}

func TestDistanceClassifyEndToEnd(t *testing.T) {
	nairobi := models.GeoPoint{Latitude: -1.286389, Longitude: 36.817223}
	mombasa := models.GeoPoint{Latitude: -4.043477, Longitude: 39.668206}
	kiambu := models.GeoPoint{Latitude: -1.171428, Longitude: 36.835529}

	assert.Equal(t, models.TripLongHaul, Classify(DistanceMeters(nairobi, mombasa)))
	assert.Equal(t, models.TripLocal, Classify(DistanceMeters(nairobi, kiambu)))
}
