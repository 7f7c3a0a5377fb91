package models

import "time"

// BookingExport is the payload handed to the checkout collaborator once a
// draft is confirmed. It is the only contract the wizard exposes outward;
// nothing here is persisted by this service.
type BookingExport struct {
	SessionID string      `json:"sessionId"`
	UserName  string      `json:"userName,omitempty"`
	Service   ServiceType `json:"service"`

	CargoItems []string          `json:"cargoItems,omitempty"`
	Relocation *RelocationDetail `json:"relocation,omitempty"`

	Pickup              LocationPoint `json:"pickup"`
	Dropoff             LocationPoint `json:"dropoff"`
	PreferredPickupTime string        `json:"preferredPickupTime,omitempty"`

	DistanceMeters *float64            `json:"distanceMeters,omitempty"`
	Trip           *TripClassification `json:"trip,omitempty"`
	Vehicle        VehicleType         `json:"vehicle,omitempty"`

	ConfirmedAt time.Time `json:"confirmedAt"`
}
