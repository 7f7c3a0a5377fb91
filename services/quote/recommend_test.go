package quote

import (
	"testing"

	"movelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickNames(picks []VehiclePick) []models.VehicleType {
	names := make([]models.VehicleType, 0, len(picks))
	for _, p := range picks {
		names = append(names, p.Name)
	}
	return names
}

func recommendedNames(picks []VehiclePick) []models.VehicleType {
	var names []models.VehicleType
	for _, p := range picks {
		if p.Recommended {
			names = append(names, p.Name)
		}
	}
	return names
}

func TestRecommendFiltersByTripCategory(t *testing.T) {
	local := models.TripLocal
	longHaul := models.TripLongHaul

	tests := []struct {
		name string
		trip *models.TripClassification
		want []models.VehicleType
	}{
		{
			name: "no classification shows the full fleet",
			trip: nil,
			want: []models.VehicleType{
				models.VehicleMotorbike, models.VehicleProboxSedan, models.VehicleTukTuk,
				models.VehicleVan, models.VehicleLorry, models.VehiclePickupTruck,
			},
		},
		{
			name: "local trips get the small vehicles",
			trip: &local,
			want: []models.VehicleType{models.VehicleMotorbike, models.VehicleProboxSedan, models.VehicleTukTuk},
		},
		{
			name: "long-haul trips get the heavy vehicles",
			trip: &longHaul,
			want: []models.VehicleType{models.VehicleVan, models.VehicleLorry, models.VehiclePickupTruck},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picks := Recommend(tt.trip, CargoSignal{Empty: true})
			assert.Equal(t, tt.want, pickNames(picks))
			assert.Empty(t, recommendedNames(picks), "empty selection must never produce recommendations")
		})
	}
}

func TestRecommendMarksCargoMatches(t *testing.T) {
	regional := models.TripRegional

	t.Run("large load recommends the big vehicles first", func(t *testing.T) {
		picks := Recommend(&regional, CargoSignal{TotalCount: 6, HasFragile: true})

		// Recommended entries lead, catalog order preserved within each group.
		assert.Equal(t,
			[]models.VehicleType{models.VehicleVan, models.VehiclePickupTruck, models.VehicleProboxSedan},
			pickNames(picks))
		assert.Equal(t,
			[]models.VehicleType{models.VehicleVan, models.VehiclePickupTruck},
			recommendedNames(picks))
	})

	t.Run("small load recommends bikes and tuk-tuks", func(t *testing.T) {
		local := models.TripLocal
		picks := Recommend(&local, CargoSignal{TotalCount: 1})
		assert.Equal(t,
			[]models.VehicleType{models.VehicleMotorbike, models.VehicleTukTuk},
			recommendedNames(picks))
	})

	t.Run("perishable cargo recommends probox and motorbike", func(t *testing.T) {
		picks := Recommend(nil, CargoSignal{TotalCount: 4, HasPerishable: true})
		assert.Equal(t,
			[]models.VehicleType{models.VehicleMotorbike, models.VehicleProboxSedan},
			recommendedNames(picks))
	})
}

func TestDeriveCargoSignal(t *testing.T) {
	t.Run("empty draft", func(t *testing.T) {
		signal := DeriveCargoSignal(models.NewQuoteDraft("s1", ""))
		assert.True(t, signal.Empty)
		assert.Zero(t, signal.TotalCount)
	})

	t.Run("delivery items including custom text", func(t *testing.T) {
		d := models.NewQuoteDraft("s1", "")
		d.Cargo = models.CargoSelection{
			Categories: []models.CategoryTag{models.CategoryPerishable, models.CategoryUnsure},
			ByCategory: map[models.CategoryTag]models.CategorySelection{
				models.CategoryPerishable: {Items: []string{"Frozen Items", "Eggs"}},
				models.CategoryUnsure:     {Custom: "fresh food hampers"},
			},
		}
		signal := DeriveCargoSignal(d)
		assert.False(t, signal.Empty)
		assert.Equal(t, 3, signal.TotalCount)
		assert.True(t, signal.HasPerishable, "custom text mentioning food counts as perishable")
		assert.False(t, signal.HasBulkFurniture)
	})

	t.Run("relocation furniture", func(t *testing.T) {
		d := models.NewQuoteDraft("s1", "")
		d.Relocation.Type = models.RelocationHome
		d.Relocation.Furniture = []string{"Sofa", "Wardrobe"}
		signal := DeriveCargoSignal(d)
		assert.False(t, signal.Empty)
		assert.Equal(t, 2, signal.TotalCount)
		assert.True(t, signal.HasBulkFurniture)
	})
}

func TestEligibleVehicle(t *testing.T) {
	local := models.TripLocal
	require.True(t, EligibleVehicle(&local, models.VehicleMotorbike))
	assert.False(t, EligibleVehicle(&local, models.VehicleLorry))

	// Without a classification any known vehicle passes, unknown ones do not.
	assert.True(t, EligibleVehicle(nil, models.VehicleVan))
	assert.False(t, EligibleVehicle(nil, models.VehicleType("Helicopter")))
}
