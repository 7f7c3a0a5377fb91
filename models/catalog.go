package models

// CategoryTag identifies a delivery cargo category.
type CategoryTag string

const (
	CategoryPerishable CategoryTag = "perishable"
	CategoryDurable    CategoryTag = "durable"
	CategoryUnsure     CategoryTag = "unsure"
)

// RelocationType distinguishes home and office moves.
type RelocationType string

const (
	RelocationHome   RelocationType = "home"
	RelocationOffice RelocationType = "office"
)

// ItemGroup is a labelled, ordered list of catalog items within a category.
type ItemGroup struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// CategoryOrder fixes the presentation order of the delivery categories.
var CategoryOrder = []CategoryTag{CategoryPerishable, CategoryDurable, CategoryUnsure}

// ItemGroups maps each category to its item groups. The "unsure" category
// has no predefined items, which forces free-text entry.
var ItemGroups = map[CategoryTag][]ItemGroup{
	CategoryPerishable: {
		{Label: "Fresh Produce", Items: []string{"Fruits & Vegetables", "Flowers", "Eggs"}},
		{Label: "Chilled & Frozen", Items: []string{"Dairy", "Meat & Fish", "Frozen Items"}},
		{Label: "Other Perishables", Items: []string{"Baked Goods", "Juices", "Pharmaceuticals"}},
	},
	CategoryDurable: {
		{Label: "Household", Items: []string{"Furniture", "Appliances", "Clothing", "Personal Items"}},
		{Label: "Commercial", Items: []string{"Electronics", "Books", "Tools", "Construction Materials"}},
	},
	CategoryUnsure: {},
}

// RoomTypes lists the rooms offered per relocation type.
var RoomTypes = map[RelocationType][]string{
	RelocationHome:   {"Bedroom", "Living Room", "Kitchen", "Bathroom", "Dining Room", "Garage", "Store"},
	RelocationOffice: {"Reception", "Open Office", "Meeting Room", "Server Room", "Kitchenette", "Storage Room"},
}

// FurnitureTypes lists the furniture offered per relocation type.
var FurnitureTypes = map[RelocationType][]string{
	RelocationHome:   {"Sofa", "Bed", "Wardrobe", "Dining Table", "Bookshelf", "Desk", "Mattress"},
	RelocationOffice: {"Desks", "Office Chairs", "Filing Cabinets", "Conference Table", "Cubicle Partitions", "Safes"},
}

// ApplianceOptions is shared by both relocation types.
var ApplianceOptions = []string{
	"Fridge", "Washing Machine", "Cooker", "Microwave", "TV", "Water Dispenser", "Air Conditioner",
}

// AccessOptions are the ways movers can reach the premises.
var AccessOptions = []string{"Elevator", "Stairs"}

// Floor range offered by the wizard, inclusive.
const (
	FloorMin = 0
	FloorMax = 10
)

// RelocationNotePlaceholder is the hint shown on the free-text notes field.
const RelocationNotePlaceholder = "Anything the movers should know? Parking, narrow staircase, pets..."

// KnownCategory reports whether the tag is part of the taxonomy.
func KnownCategory(tag CategoryTag) bool {
	_, ok := ItemGroups[tag]
	return ok
}

// CategoryHasItem reports whether the named item belongs to the category's catalog.
func CategoryHasItem(tag CategoryTag, item string) bool {
	for _, group := range ItemGroups[tag] {
		for _, it := range group.Items {
			if it == item {
				return true
			}
		}
	}
	return false
}

// ValidFloor reports whether the floor lies in the offered range.
func ValidFloor(floor int) bool {
	return floor >= FloorMin && floor <= FloorMax
}

// ValidAccess reports whether the access method is one of the offered options.
func ValidAccess(access string) bool {
	for _, opt := range AccessOptions {
		if opt == access {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ValidRoom reports whether the room is offered for the relocation type.
func ValidRoom(rel RelocationType, room string) bool {
	return contains(RoomTypes[rel], room)
}

// ValidFurniture reports whether the furniture item is offered for the relocation type.
func ValidFurniture(rel RelocationType, item string) bool {
	return contains(FurnitureTypes[rel], item)
}

// ValidAppliance reports whether the appliance is one of the offered options.
func ValidAppliance(item string) bool {
	return contains(ApplianceOptions, item)
}
