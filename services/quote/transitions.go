package quote

import (
	"movelink/models"
)

// ActionKind names one wizard transition.
type ActionKind string

const (
	ActionChooseService        ActionKind = "choose_service"
	ActionBack                 ActionKind = "back"
	ActionRestart              ActionKind = "restart"
	ActionChooseRelocationType ActionKind = "choose_relocation_type"
	ActionToggleRoom           ActionKind = "toggle_room"
	ActionSetRoomCount         ActionKind = "set_room_count"
	ActionSetFloorFrom         ActionKind = "set_floor_from"
	ActionSetFloorTo           ActionKind = "set_floor_to"
	ActionSetAccess            ActionKind = "set_access"
	ActionToggleFurniture      ActionKind = "toggle_furniture"
	ActionToggleAppliance      ActionKind = "toggle_appliance"
	ActionSetNotes             ActionKind = "set_notes"
	ActionSkip                 ActionKind = "skip"
	ActionSelectCategory       ActionKind = "select_category"
	ActionResetCategories      ActionKind = "reset_categories"
	ActionToggleItem           ActionKind = "toggle_item"
	ActionSetCustomItem        ActionKind = "set_custom_item"
	ActionContinue             ActionKind = "continue"
	ActionSetPickup            ActionKind = "set_pickup"
	ActionSetDropoff           ActionKind = "set_dropoff"
	ActionSetPickupTime        ActionKind = "set_pickup_time"
	ActionSubmitLocations      ActionKind = "submit_locations"
	ActionChooseVehicle        ActionKind = "choose_vehicle"
	ActionCloseSummary         ActionKind = "close_summary"

	// actionFinalizeReset completes a delivery back-transition once the
	// exit delay has elapsed. Issued by the session service, never by
	// clients.
	actionFinalizeReset ActionKind = "finalize_reset"
)

// Action is one user interaction with the wizard. Which payload field is
// read depends on Kind.
type Action struct {
	Kind ActionKind `json:"kind" binding:"required"`

	Service        models.ServiceType    `json:"service,omitempty"`
	RelocationType models.RelocationType `json:"relocationType,omitempty"`
	Category       models.CategoryTag    `json:"category,omitempty"`

	// Item carries room, furniture, appliance, catalog item and access
	// values; Text carries notes, the pickup time and custom item text.
	Item string `json:"item,omitempty"`
	Text string `json:"text,omitempty"`

	// Value carries floors and the room count.
	Value *int `json:"value,omitempty"`

	Location *models.LocationPoint `json:"location,omitempty"`
	Vehicle  models.VehicleType    `json:"vehicle,omitempty"`
}

// Apply is the wizard's transition function: given a draft snapshot and an
// action, it returns the successor draft. The input draft is never
// mutated; on error the caller keeps the old draft and nothing changes.
func Apply(d models.QuoteDraft, a Action) (models.QuoteDraft, error) {
	next := cloneDraft(d)

	switch a.Kind {
	case ActionChooseService:
		return applyChooseService(next, a)
	case ActionBack:
		return applyBack(next)
	case actionFinalizeReset:
		return applyFinalizeReset(next)
	case ActionRestart:
		return models.NewQuoteDraft(d.SessionID, d.UserName), nil

	case ActionChooseRelocationType:
		return applyChooseRelocationType(next, a)
	case ActionToggleRoom, ActionSetRoomCount, ActionSetFloorFrom, ActionSetFloorTo,
		ActionSetAccess, ActionToggleFurniture, ActionToggleAppliance, ActionSetNotes:
		return applyRelocationDetail(next, a)
	case ActionSkip:
		if next.Step != models.StepRelocation {
			return d, NewFlowError("wrongStep", "skip is only available on the relocation step")
		}
		next.SummaryFrom = models.StepRelocation
		next.Step = models.StepSummary
		return next, nil

	case ActionSelectCategory, ActionResetCategories, ActionToggleItem, ActionSetCustomItem:
		return applyCargo(next, a)

	case ActionContinue:
		return applyContinue(next)

	case ActionSetPickup, ActionSetDropoff, ActionSetPickupTime, ActionSubmitLocations:
		return applyLocations(next, a)

	case ActionChooseVehicle:
		return applyChooseVehicle(next, a)

	case ActionCloseSummary:
		if next.Step != models.StepSummary {
			return d, NewFlowError("wrongStep", "no summary is open")
		}
		next.Step = next.SummaryFrom
		if next.Step == "" {
			next.Step = models.StepVehicle
		}
		return next, nil

	default:
		return d, NewFlowError("unknownAction", "unrecognized action kind: "+string(a.Kind))
	}
}

func applyChooseService(d models.QuoteDraft, a Action) (models.QuoteDraft, error) {
	// Choosing a service mid-flow abandons the current draft and starts
	// over with the new choice.
	if d.Step != models.StepInitial {
		d = models.NewQuoteDraft(d.SessionID, d.UserName)
	}
	switch a.Service {
	case models.ServiceDelivery:
		d.Service = models.ServiceDelivery
		d.Step = models.StepDelivery
	case models.ServiceRelocation:
		d.Service = models.ServiceRelocation
		d.Step = models.StepRelocation
	default:
		return d, NewFlowError("badService", "service must be delivery or relocation")
	}
	return d, nil
}

// applyBack implements the step-specific back semantics. From the delivery
// step the draft is only flagged; the session service finalizes the reset
// after the exit delay so in-flight reads never see a half-cleared draft.
func applyBack(d models.QuoteDraft) (models.QuoteDraft, error) {
	switch d.Step {
	case models.StepDelivery:
		d.AnimatingReset = true
		return d, nil
	case models.StepRelocation:
		if d.Relocation.Type != "" {
			d.Relocation.Type = ""
			return d, nil
		}
		d.Service = ""
		d.Step = models.StepInitial
		return d, nil
	case models.StepPickupDropoff:
		if d.Service == models.ServiceRelocation {
			d.Step = models.StepRelocation
		} else {
			d.Step = models.StepDelivery
		}
		return d, nil
	case models.StepVehicle:
		d.Step = models.StepPickupDropoff
		return d, nil
	case models.StepSummary:
		return Apply(d, Action{Kind: ActionCloseSummary})
	default:
		return d, nil
	}
}

func applyFinalizeReset(d models.QuoteDraft) (models.QuoteDraft, error) {
	if !d.AnimatingReset {
		return d, NewFlowError("noReset", "no pending reset to finalize")
	}
	d.Cargo = models.CargoSelection{}
	d.Service = ""
	d.AnimatingReset = false
	d.Step = models.StepInitial
	return d, nil
}

func applyChooseRelocationType(d models.QuoteDraft, a Action) (models.QuoteDraft, error) {
	if d.Step != models.StepRelocation {
		return d, NewFlowError("wrongStep", "not on the relocation step")
	}
	if a.RelocationType != models.RelocationHome && a.RelocationType != models.RelocationOffice {
		return d, NewFlowError("badRelocationType", "relocation type must be home or office")
	}
	d.Relocation.Type = a.RelocationType
	return d, nil
}

// applyRelocationDetail handles the detail inputs that only become
// available once a relocation type has been chosen.
func applyRelocationDetail(d models.QuoteDraft, a Action) (models.QuoteDraft, error) {
	if d.Step != models.StepRelocation {
		return d, NewFlowError("wrongStep", "not on the relocation step")
	}
	if d.Relocation.Type == "" {
		return d, NewFlowError("noRelocationType", "choose home or office first")
	}

	switch a.Kind {
	case ActionToggleRoom:
		if !models.ValidRoom(d.Relocation.Type, a.Item) {
			return d, NewFlowError("badRoom", "unknown room: "+a.Item)
		}
		d.Relocation.Rooms = toggle(d.Relocation.Rooms, a.Item)
	case ActionSetRoomCount:
		if a.Value == nil || *a.Value < 1 {
			return d, NewFlowError("badRoomCount", "room count must be a positive number")
		}
		d.Relocation.RoomCount = intPtr(*a.Value)
	case ActionSetFloorFrom:
		if a.Value == nil || !models.ValidFloor(*a.Value) {
			return d, NewFlowError("badFloor", "floor must be between 0 and 10")
		}
		d.Relocation.FloorFrom = intPtr(*a.Value)
	case ActionSetFloorTo:
		if a.Value == nil || !models.ValidFloor(*a.Value) {
			return d, NewFlowError("badFloor", "floor must be between 0 and 10")
		}
		d.Relocation.FloorTo = intPtr(*a.Value)
	case ActionSetAccess:
		if !models.ValidAccess(a.Item) {
			return d, NewFlowError("badAccess", "unknown access method: "+a.Item)
		}
		d.Relocation.Access = a.Item
	case ActionToggleFurniture:
		if !models.ValidFurniture(d.Relocation.Type, a.Item) {
			return d, NewFlowError("badFurniture", "unknown furniture item: "+a.Item)
		}
		d.Relocation.Furniture = toggle(d.Relocation.Furniture, a.Item)
	case ActionToggleAppliance:
		if !models.ValidAppliance(a.Item) {
			return d, NewFlowError("badAppliance", "unknown appliance: "+a.Item)
		}
		d.Relocation.Appliances = toggle(d.Relocation.Appliances, a.Item)
	case ActionSetNotes:
		d.Relocation.Notes = a.Text
	}
	return d, nil
}

func applyCargo(d models.QuoteDraft, a Action) (models.QuoteDraft, error) {
	if d.Step != models.StepDelivery {
		return d, NewFlowError("wrongStep", "not on the delivery step")
	}

	switch a.Kind {
	case ActionSelectCategory:
		if !models.KnownCategory(a.Category) {
			return d, NewFlowError("badCategory", "unknown category: "+string(a.Category))
		}
		if d.Cargo.Has(a.Category) {
			return d, NewFlowError("categorySelected", "category already selected: "+string(a.Category))
		}
		d.Cargo.Categories = append(d.Cargo.Categories, a.Category)
		if d.Cargo.ByCategory == nil {
			d.Cargo.ByCategory = make(map[models.CategoryTag]models.CategorySelection)
		}
		d.Cargo.ByCategory[a.Category] = models.CategorySelection{}

	case ActionResetCategories:
		d.Cargo = models.CargoSelection{}

	case ActionToggleItem:
		if !d.Cargo.Has(a.Category) {
			return d, NewFlowError("categoryNotSelected", "select the category first: "+string(a.Category))
		}
		if !models.CategoryHasItem(a.Category, a.Item) {
			return d, NewFlowError("badItem", "item not in category catalog: "+a.Item)
		}
		sel := d.Cargo.ByCategory[a.Category]
		sel.Items = toggle(sel.Items, a.Item)
		// Picking from the catalog and typing a custom item are mutually
		// exclusive per category.
		sel.Custom = ""
		d.Cargo.ByCategory[a.Category] = sel

	case ActionSetCustomItem:
		if !d.Cargo.Has(a.Category) {
			return d, NewFlowError("categoryNotSelected", "select the category first: "+string(a.Category))
		}
		sel := d.Cargo.ByCategory[a.Category]
		sel.Custom = a.Text
		if a.Text != "" {
			sel.Items = nil
		}
		d.Cargo.ByCategory[a.Category] = sel
	}
	return d, nil
}

// applyContinue gates the advance to the pickup/dropoff step: the draft
// must carry at least one populated signal for the active service type.
func applyContinue(d models.QuoteDraft) (models.QuoteDraft, error) {
	switch d.Step {
	case models.StepDelivery:
		if d.Cargo.Empty() {
			return d, NewFlowError("incomplete", "please fill in at least one detail or select a category item")
		}
	case models.StepRelocation:
		if !d.Relocation.HasAnyDetail() {
			return d, NewFlowError("incomplete", "please fill in at least one detail or select a category item")
		}
	default:
		return d, NewFlowError("wrongStep", "nothing to continue from here")
	}
	d.Step = models.StepPickupDropoff
	return d, nil
}

func applyLocations(d models.QuoteDraft, a Action) (models.QuoteDraft, error) {
	if d.Step != models.StepPickupDropoff {
		return d, NewFlowError("wrongStep", "not on the pickup/drop-off step")
	}

	switch a.Kind {
	case ActionSetPickup, ActionSetDropoff:
		if a.Location == nil {
			return d, NewFlowError("badLocation", "missing location payload")
		}
		if a.Location.Geometry != nil && !a.Location.Geometry.Valid() {
			return d, NewFlowError("badLocation", "coordinates out of range")
		}
		if a.Kind == ActionSetPickup {
			d.Pickup = *a.Location
		} else {
			d.Dropoff = *a.Location
		}
		// An endpoint changed, so any previously derived classification is
		// stale until locations are submitted again.
		d.DistanceMeters = nil
		d.Trip = nil

	case ActionSetPickupTime:
		d.PreferredPickupTime = a.Text

	case ActionSubmitLocations:
		if !d.Pickup.Resolved() || !d.Dropoff.Resolved() {
			return d, NewFlowError("missingLocation", "please select both pickup and drop-off locations")
		}
		if d.PreferredPickupTime == "" {
			return d, NewFlowError("missingTime", "please select a preferred pickup time")
		}
		meters := DistanceMeters(*d.Pickup.Geometry, *d.Dropoff.Geometry)
		trip := Classify(meters)
		d.DistanceMeters = &meters
		d.Trip = &trip
		// A vehicle chosen under an earlier classification may no longer
		// be eligible.
		if d.Vehicle != "" && !EligibleVehicle(d.Trip, d.Vehicle) {
			d.Vehicle = ""
		}
		d.Step = models.StepVehicle
	}
	return d, nil
}

func applyChooseVehicle(d models.QuoteDraft, a Action) (models.QuoteDraft, error) {
	if d.Step != models.StepVehicle {
		return d, NewFlowError("wrongStep", "not on the vehicle selection step")
	}
	if !models.KnownVehicle(a.Vehicle) {
		return d, NewFlowError("badVehicle", "unknown vehicle: "+string(a.Vehicle))
	}
	if !EligibleVehicle(d.Trip, a.Vehicle) {
		return d, NewFlowError("ineligibleVehicle", "vehicle not available for this trip: "+string(a.Vehicle))
	}
	d.Vehicle = a.Vehicle
	d.SummaryFrom = models.StepVehicle
	d.Step = models.StepSummary
	return d, nil
}

func toggle(list []string, item string) []string {
	for i, it := range list {
		if it == item {
			return append(append([]string{}, list[:i]...), list[i+1:]...)
		}
	}
	return append(append([]string{}, list...), item)
}

func intPtr(v int) *int { return &v }

// cloneDraft deep-copies the draft so Apply stays pure.
func cloneDraft(d models.QuoteDraft) models.QuoteDraft {
	out := d
	out.Cargo.Categories = append([]models.CategoryTag(nil), d.Cargo.Categories...)
	if d.Cargo.ByCategory != nil {
		out.Cargo.ByCategory = make(map[models.CategoryTag]models.CategorySelection, len(d.Cargo.ByCategory))
		for tag, sel := range d.Cargo.ByCategory {
			sel.Items = append([]string(nil), sel.Items...)
			out.Cargo.ByCategory[tag] = sel
		}
	}
	out.Relocation.Rooms = append([]string(nil), d.Relocation.Rooms...)
	out.Relocation.Furniture = append([]string(nil), d.Relocation.Furniture...)
	out.Relocation.Appliances = append([]string(nil), d.Relocation.Appliances...)
	out.Relocation.RoomCount = copyIntPtr(d.Relocation.RoomCount)
	out.Relocation.FloorFrom = copyIntPtr(d.Relocation.FloorFrom)
	out.Relocation.FloorTo = copyIntPtr(d.Relocation.FloorTo)
	if d.Pickup.Geometry != nil {
		g := *d.Pickup.Geometry
		out.Pickup.Geometry = &g
	}
	if d.Dropoff.Geometry != nil {
		g := *d.Dropoff.Geometry
		out.Dropoff.Geometry = &g
	}
	if d.DistanceMeters != nil {
		m := *d.DistanceMeters
		out.DistanceMeters = &m
	}
	if d.Trip != nil {
		t := *d.Trip
		out.Trip = &t
	}
	return out
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
