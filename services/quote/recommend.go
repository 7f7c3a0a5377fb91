package quote

import (
	"sort"
	"strings"

	"movelink/models"
)

// CargoSignal is the set of derived features of the current selection that
// drives the vehicle recommendation.
type CargoSignal struct {
	TotalCount       int  `json:"totalCount"`
	HasFragile       bool `json:"hasFragile"`
	HasPerishable    bool `json:"hasPerishable"`
	HasBulkFurniture bool `json:"hasBulkFurniture"`

	// Empty is true when the user has selected nothing at all (no items,
	// rooms or furniture); no recommendation is made in that case.
	Empty bool `json:"-"`
}

// VehiclePick is one recommender result: a catalog entry plus the
// per-query recommended flag.
type VehiclePick struct {
	models.VehicleOption
	Recommended bool `json:"recommended"`
}

func anyContains(items []string, substrings ...string) bool {
	for _, item := range items {
		lower := strings.ToLower(item)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return true
			}
		}
	}
	return false
}

// DeriveCargoSignal computes the recommendation features from a draft.
// Items covers delivery selections (custom entries included); rooms and
// furniture come from the relocation detail.
func DeriveCargoSignal(d models.QuoteDraft) CargoSignal {
	items := d.Cargo.AllItems()
	rooms := d.Relocation.Rooms
	furniture := d.Relocation.Furniture

	return CargoSignal{
		TotalCount:       len(items) + len(furniture),
		HasFragile:       anyContains(items, "fragile", "electronics"),
		HasPerishable:    anyContains(items, "food", "perishable"),
		HasBulkFurniture: anyContains(furniture, "sofa", "bed", "wardrobe"),
		Empty:            len(items) == 0 && len(rooms) == 0 && len(furniture) == 0,
	}
}

func vehicleIn(name models.VehicleType, set ...models.VehicleType) bool {
	for _, v := range set {
		if v == name {
			return true
		}
	}
	return false
}

// Recommend filters the fleet to the vehicles eligible for the trip
// category (the full fleet when no category is known yet) and marks the
// recommended subset from the cargo signal. The result is stable-sorted so
// recommended entries come first, catalog order preserved within each
// group. It never fails; an all-filtered-out result would surface as an
// empty slice.
func Recommend(trip *models.TripClassification, cargo CargoSignal) []VehiclePick {
	var eligible []models.VehicleType
	if trip != nil {
		eligible = models.EligibleVehicles[*trip]
	}

	picks := make([]VehiclePick, 0, len(models.VehicleCatalog))
	for _, v := range models.VehicleCatalog {
		if eligible != nil && !vehicleIn(v.Name, eligible...) {
			continue
		}
		picks = append(picks, VehiclePick{VehicleOption: v})
	}

	if !cargo.Empty {
		for i := range picks {
			name := picks[i].Name
			recommended := false
			if cargo.HasPerishable && vehicleIn(name, models.VehicleProboxSedan, models.VehicleMotorbike) {
				recommended = true
			}
			if cargo.HasFragile && name == models.VehicleVan {
				recommended = true
			}
			if cargo.HasBulkFurniture && vehicleIn(name, models.VehicleLorry, models.VehiclePickupTruck) {
				recommended = true
			}
			if cargo.TotalCount > 5 && vehicleIn(name, models.VehicleVan, models.VehicleLorry, models.VehiclePickupTruck) {
				recommended = true
			}
			if cargo.TotalCount <= 2 && vehicleIn(name, models.VehicleMotorbike, models.VehicleTukTuk) {
				recommended = true
			}
			picks[i].Recommended = recommended
		}
	}

	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Recommended && !picks[j].Recommended
	})

	return picks
}

// EligibleVehicle reports whether the vehicle may be chosen for the trip
// category currently on the draft.
func EligibleVehicle(trip *models.TripClassification, name models.VehicleType) bool {
	if trip == nil {
		return models.KnownVehicle(name)
	}
	return vehicleIn(name, models.EligibleVehicles[*trip]...)
}
