package models

// VehicleType enumerates the six vehicle classes on offer.
type VehicleType string

const (
	VehicleMotorbike   VehicleType = "Motorbike"
	VehicleProboxSedan VehicleType = "Probox/Sedan"
	VehicleTukTuk      VehicleType = "Tuk-Tuk"
	VehicleVan         VehicleType = "Van"
	VehicleLorry       VehicleType = "Lorry"
	VehiclePickupTruck VehicleType = "Pickup Truck"
)

// VehicleOption is a static catalog entry. The "recommended" flag is
// computed per query by the recommender and never stored here.
type VehicleOption struct {
	Name        VehicleType `json:"name"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	IdealFor    string      `json:"idealFor"`
	Tags        []string    `json:"tags"`
}

// VehicleCatalog is the full fleet in presentation order.
var VehicleCatalog = []VehicleOption{
	{
		Name:        VehicleMotorbike,
		Icon:        "🛵",
		Description: "Small items, urgent documents, food",
		IdealFor:    "Small items, urgent documents, food",
		Tags:        []string{"Urban", "Perishable", "Express"},
	},
	{
		Name:        VehicleProboxSedan,
		Icon:        "🚗",
		Description: "Perishable items, small-medium deliveries",
		IdealFor:    "Perishable items, small-medium deliveries",
		Tags:        []string{"Affordable", "Fast", "Temperature-sensitive"},
	},
	{
		Name:        VehicleTukTuk,
		Icon:        "🚙",
		Description: "Medium packages, short distances, market supplies",
		IdealFor:    "Medium packages, short distances, market supplies",
		Tags:        []string{"Farmers", "Inner city", "Affordable"},
	},
	{
		Name:        VehicleVan,
		Icon:        "🚐",
		Description: "Electronics, medium furniture, B2B supply",
		IdealFor:    "Electronics, medium furniture, B2B supply",
		Tags:        []string{"Secure", "Lockable", "Fragile"},
	},
	{
		Name:        VehicleLorry,
		Icon:        "🚛",
		Description: "Bulk construction, wholesale, relocation",
		IdealFor:    "Bulk construction, wholesale, relocation",
		Tags:        []string{"Heavy-duty", "Long-distance"},
	},
	{
		Name:        VehiclePickupTruck,
		Icon:        "🚚",
		Description: "Construction, farm produce, mixed loads",
		IdealFor:    "Construction, farm produce, mixed loads",
		Tags:        []string{"Rural roads", "Durable items"},
	},
}

// EligibleVehicles fixes which vehicle classes may serve each trip category.
var EligibleVehicles = map[TripClassification][]VehicleType{
	TripLocal:    {VehicleMotorbike, VehicleProboxSedan, VehicleTukTuk},
	TripRegional: {VehicleProboxSedan, VehicleVan, VehiclePickupTruck},
	TripLongHaul: {VehicleVan, VehicleLorry, VehiclePickupTruck},
}

// KnownVehicle reports whether the name is part of the fleet.
func KnownVehicle(name VehicleType) bool {
	for _, v := range VehicleCatalog {
		if v.Name == name {
			return true
		}
	}
	return false
}
