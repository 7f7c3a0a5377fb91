package models

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point lies inside the WGS84 coordinate ranges.
func (g GeoPoint) Valid() bool {
	return g.Latitude >= -90 && g.Latitude <= 90 &&
		g.Longitude >= -180 && g.Longitude <= 180
}

// LocationPoint is an address as the wizard sees it. Raw typed text with no
// coordinates is a valid transient state; a point counts as resolved only
// once coordinates have been attached from a geocoding suggestion.
type LocationPoint struct {
	ID        string    `json:"id,omitempty"`
	Formatted string    `json:"formatted"`
	Geometry  *GeoPoint `json:"geometry,omitempty"`
}

// Resolved reports whether the point carries usable coordinates.
func (p LocationPoint) Resolved() bool {
	return p.Geometry != nil && p.Geometry.Valid()
}
