package models

import "strings"

// AnimalGroup enumerates the physiological cattle categories covered by the
// BIS/ICAR requirement tables. The set is closed; requirement coefficients are
// keyed by it.
type AnimalGroup string

const (
	GroupCalves          AnimalGroup = "calves"
	GroupGrowingCalves   AnimalGroup = "growing_calves"
	GroupHeifers         AnimalGroup = "heifers"
	GroupPregnantHeifers AnimalGroup = "pregnant_heifers"
	GroupDryCows         AnimalGroup = "dry_cows"
	GroupLactatingCows   AnimalGroup = "lactating_cows"
	GroupAdultBulls      AnimalGroup = "adult_bulls"
)

// AllGroups lists every animal group in stable presentation order.
var AllGroups = []AnimalGroup{
	GroupCalves,
	GroupGrowingCalves,
	GroupHeifers,
	GroupPregnantHeifers,
	GroupDryCows,
	GroupLactatingCows,
	GroupAdultBulls,
}

var displayNames = map[AnimalGroup]string{
	GroupCalves:          "Calves (0-3 mo)",
	GroupGrowingCalves:   "Growing Calves (3-12 mo)",
	GroupHeifers:         "Heifers (12-24 mo)",
	GroupPregnantHeifers: "Pregnant Heifers (last 2 mo)",
	GroupDryCows:         "Dry Cows",
	GroupLactatingCows:   "Lactating Cows",
	GroupAdultBulls:      "Adult Bulls",
}

var shortNames = map[AnimalGroup]string{
	GroupCalves:          "Calves",
	GroupGrowingCalves:   "Growing Calves",
	GroupHeifers:         "Heifers",
	GroupPregnantHeifers: "Pregnant Heifers",
	GroupDryCows:         "Dry Cows",
	GroupLactatingCows:   "Lactating Cows",
	GroupAdultBulls:      "Adult Bulls",
}

// DisplayName returns the long human-readable label including the age bracket.
func (g AnimalGroup) DisplayName() string {
	if name, ok := displayNames[g]; ok {
		return name
	}
	return string(g)
}

// ShortName returns the compact label used in report tables.
func (g AnimalGroup) ShortName() string {
	if name, ok := shortNames[g]; ok {
		return name
	}
	return string(g)
}

// Valid reports whether the group is one of the seven known categories.
func (g AnimalGroup) Valid() bool {
	_, ok := displayNames[g]
	return ok
}

// ParseAnimalGroup resolves free-form group identifiers ("dry_cows",
// "Dry Cows", "dry cows") to their AnimalGroup value.
func ParseAnimalGroup(value string) (AnimalGroup, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	candidate := AnimalGroup(normalized)
	if candidate.Valid() {
		return candidate, true
	}

	for group, name := range shortNames {
		if strings.EqualFold(strings.ReplaceAll(name, " ", "_"), normalized) {
			return group, true
		}
	}

	return "", false
}

// Lactation carries the production attributes only lactating cows have.
type Lactation struct {
	MilkKgPerDay   float64 `json:"milk_kg_per_day" bson:"milk_kg_per_day"`
	MilkFatPercent float64 `json:"milk_fat_percent" bson:"milk_fat_percent"`
	DaysInMilk     int     `json:"days_in_milk" bson:"days_in_milk"`
}

// SubGroup is one user-entered batch of animals sharing a group, weight and,
// for lactating cows, production attributes. It is an immutable snapshot for
// the duration of one calculation.
type SubGroup struct {
	Group       AnimalGroup `json:"group" bson:"group"`
	AvgWeightKg float64     `json:"avg_weight_kg" bson:"avg_weight_kg"`
	Count       int         `json:"count" bson:"count"`
	Lactation   *Lactation  `json:"lactation,omitempty" bson:"lactation,omitempty"`
}
