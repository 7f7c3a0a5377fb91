package models

// Step identifies where in the wizard a quote session currently sits.
type Step string

const (
	StepInitial       Step = "initial"
	StepDelivery      Step = "delivery"
	StepRelocation    Step = "relocation"
	StepPickupDropoff Step = "pickup_dropoff"
	StepVehicle       Step = "vehicle"
	StepSummary       Step = "summary"
)

// ServiceType is the top-level choice between the two offerings.
type ServiceType string

const (
	ServiceDelivery   ServiceType = "delivery"
	ServiceRelocation ServiceType = "relocation"
)

// TripClassification is derived from the pickup-dropoff distance.
type TripClassification string

const (
	TripLocal    TripClassification = "Local"
	TripRegional TripClassification = "Regional"
	TripLongHaul TripClassification = "Long-haul"
)

// CategorySelection holds what the user picked inside one cargo category.
// Catalog items and the free-text entry are mutually exclusive: setting one
// clears the other.
type CategorySelection struct {
	Items  []string `json:"items,omitempty"`
	Custom string   `json:"custom,omitempty"`
}

// Empty reports whether nothing is selected in this category.
func (cs CategorySelection) Empty() bool {
	return len(cs.Items) == 0 && cs.Custom == ""
}

// CargoSelection accumulates the delivery cargo across categories.
// Categories preserves selection order; ByCategory holds per-category picks.
type CargoSelection struct {
	Categories []CategoryTag                     `json:"categories,omitempty"`
	ByCategory map[CategoryTag]CategorySelection `json:"byCategory,omitempty"`
}

// Has reports whether the category has already been added.
func (c CargoSelection) Has(tag CategoryTag) bool {
	for _, t := range c.Categories {
		if t == tag {
			return true
		}
	}
	return false
}

// AllItems flattens the selection into a deduplicated, order-preserving list
// of item strings, custom entries included.
func (c CargoSelection) AllItems() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(item string) {
		if item == "" || seen[item] {
			return
		}
		seen[item] = true
		out = append(out, item)
	}
	for _, tag := range c.Categories {
		sel := c.ByCategory[tag]
		for _, item := range sel.Items {
			add(item)
		}
		add(sel.Custom)
	}
	return out
}

// Empty reports whether no item has been selected in any category.
func (c CargoSelection) Empty() bool {
	return len(c.AllItems()) == 0
}

// RelocationDetail captures everything the relocation step collects.
// FloorFrom and FloorTo are independently settable; no ordering between
// them is enforced.
type RelocationDetail struct {
	Type       RelocationType `json:"type,omitempty"`
	Rooms      []string       `json:"rooms,omitempty"`
	RoomCount  *int           `json:"roomCount,omitempty"`
	FloorFrom  *int           `json:"floorFrom,omitempty"`
	FloorTo    *int           `json:"floorTo,omitempty"`
	Access     string         `json:"access,omitempty"`
	Furniture  []string       `json:"furniture,omitempty"`
	Appliances []string       `json:"appliances,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}

// HasAnyDetail reports whether at least one relocation field is populated.
func (r RelocationDetail) HasAnyDetail() bool {
	return r.Type != "" ||
		len(r.Rooms) > 0 ||
		r.RoomCount != nil ||
		r.FloorFrom != nil ||
		r.FloorTo != nil ||
		r.Access != "" ||
		len(r.Furniture) > 0 ||
		len(r.Appliances) > 0 ||
		r.Notes != ""
}

// QuoteDraft is the accumulating booking-in-progress state for one wizard
// session. It is mutated exclusively through reducer transitions; handlers
// only ever see snapshots.
type QuoteDraft struct {
	SessionID string      `json:"sessionId"`
	UserName  string      `json:"userName,omitempty"`
	Step      Step        `json:"step"`
	Service   ServiceType `json:"service,omitempty"`

	Cargo      CargoSelection   `json:"cargo"`
	Relocation RelocationDetail `json:"relocation"`

	Pickup              LocationPoint `json:"pickup"`
	Dropoff             LocationPoint `json:"dropoff"`
	PreferredPickupTime string        `json:"preferredPickupTime,omitempty"`

	DistanceMeters *float64            `json:"distanceMeters,omitempty"`
	Trip           *TripClassification `json:"trip,omitempty"`

	Vehicle VehicleType `json:"vehicle,omitempty"`

	// SummaryFrom records which step opened the summary so "back" can
	// return there without data loss.
	SummaryFrom Step `json:"summaryFrom,omitempty"`

	// AnimatingReset is set while a delivery back-transition waits out its
	// exit delay; the draft stays intact until the delay elapses.
	AnimatingReset bool `json:"animatingReset,omitempty"`
}

// NewQuoteDraft returns an empty draft at the first step.
func NewQuoteDraft(sessionID, userName string) QuoteDraft {
	return QuoteDraft{
		SessionID: sessionID,
		UserName:  userName,
		Step:      StepInitial,
	}
}
