package nutrition

import "github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"

// NutrientRow bundles the four nutrient figures the ICAR tables tabulate,
// either per animal per day (maintenance) or per kg of milk (production).
type NutrientRow struct {
	DCPGrams    float64
	TDNKg       float64
	MEMcal      float64
	WaterLiters float64
}

// maintenanceReq holds the per-animal daily maintenance requirements by group
// (ICAR 1998 standards).
var maintenanceReq = map[models.AnimalGroup]NutrientRow{
	models.GroupCalves:          {DCPGrams: 80, TDNKg: 0.40, MEMcal: 1.5, WaterLiters: 10},
	models.GroupGrowingCalves:   {DCPGrams: 270, TDNKg: 2.1, MEMcal: 7.6, WaterLiters: 25},
	models.GroupHeifers:         {DCPGrams: 320, TDNKg: 3.1, MEMcal: 11.2, WaterLiters: 35},
	models.GroupPregnantHeifers: {DCPGrams: 350, TDNKg: 4.0, MEMcal: 14.1, WaterLiters: 45},
	models.GroupDryCows:         {DCPGrams: 300, TDNKg: 3.7, MEMcal: 13.2, WaterLiters: 40},
	models.GroupLactatingCows:   {DCPGrams: 300, TDNKg: 3.7, MEMcal: 13.2, WaterLiters: 60},
	models.GroupAdultBulls:      {DCPGrams: 450, TDNKg: 4.5, MEMcal: 16.2, WaterLiters: 50},
}

// milkProductionReq maps milk-fat percent to the nutrient cost per kg of milk.
// Only these six fat levels are tabulated.
var milkProductionReq = map[float64]NutrientRow{
	3.0: {DCPGrams: 40, TDNKg: 0.270, MEMcal: 0.97, WaterLiters: 4.0},
	4.0: {DCPGrams: 45, TDNKg: 0.315, MEMcal: 1.13, WaterLiters: 4.5},
	5.0: {DCPGrams: 51, TDNKg: 0.370, MEMcal: 1.28, WaterLiters: 5.0},
	6.0: {DCPGrams: 57, TDNKg: 0.410, MEMcal: 1.36, WaterLiters: 5.0},
	7.0: {DCPGrams: 63, TDNKg: 0.460, MEMcal: 1.54, WaterLiters: 5.0},
	8.0: {DCPGrams: 69, TDNKg: 0.510, MEMcal: 1.80, WaterLiters: 5.0},
}

// defaultMilkFat is the row used when the entered fat percent does not match
// a tabulated level. The upstream tables never interpolate.
const defaultMilkFat = 5.0

// dmiPercent is the dry-matter intake capacity as percent of body weight.
var dmiPercent = map[models.AnimalGroup]float64{
	models.GroupCalves:          2.0,
	models.GroupGrowingCalves:   2.5,
	models.GroupHeifers:         2.5,
	models.GroupPregnantHeifers: 2.0,
	models.GroupDryCows:         2.0,
	models.GroupLactatingCows:   3.0,
	models.GroupAdultBulls:      2.0,
}

// MaintenanceFor returns the per-animal maintenance row for a group.
func MaintenanceFor(group models.AnimalGroup) NutrientRow {
	return maintenanceReq[group]
}

// MilkCostFor returns the per-kg-milk nutrient cost for the given fat percent,
// falling back to the 5% row for untabulated values.
func MilkCostFor(fatPercent float64) NutrientRow {
	if row, ok := milkProductionReq[fatPercent]; ok {
		return row
	}
	return milkProductionReq[defaultMilkFat]
}

// DMIPercentFor returns the dry-matter intake percentage for a group.
func DMIPercentFor(group models.AnimalGroup) float64 {
	return dmiPercent[group]
}
