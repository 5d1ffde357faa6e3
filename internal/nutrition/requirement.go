// Package nutrition implements the per-sub-group daily requirement
// calculation from the BIS/ICAR maintenance and milk-production tables.
package nutrition

import "github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"

const (
	// Ambient temperature above which water intake rises.
	heatThresholdC = 25.0

	// Additional liters per animal per 4°C above the threshold.
	waterPenaltyLactating = 6.5
	waterPenaltyDefault   = 3.0

	// Multiplier on DCP/TDN/ME during the first 21 days in milk.
	periparturientFactor = 1.20
	periparturientDays   = 21
)

// Requirement is the daily nutrient requirement of one whole sub-group
// (already scaled by animal count).
type Requirement struct {
	DCPGrams    float64
	TDNKg       float64
	MEMcal      float64
	WaterLiters float64
	DMIKg       float64
}

// Compute derives the daily requirement for a sub-group at the given ambient
// temperature. It is a pure function: identical inputs always produce
// identical outputs, and no state is read or written.
func Compute(sub models.SubGroup, ambientTempC float64) Requirement {
	base := MaintenanceFor(sub.Group)
	count := float64(sub.Count)

	dcp := base.DCPGrams
	tdn := base.TDNKg
	me := base.MEMcal
	water := base.WaterLiters

	if sub.Group == models.GroupLactatingCows && sub.Lactation != nil {
		milk := MilkCostFor(sub.Lactation.MilkFatPercent)
		yield := sub.Lactation.MilkKgPerDay

		dcp += milk.DCPGrams * yield
		tdn += milk.TDNKg * yield
		me += milk.MEMcal * yield
		water += milk.WaterLiters * yield

		// Fresh cows need extra nutrients but not extra water.
		if sub.Lactation.DaysInMilk <= periparturientDays {
			dcp *= periparturientFactor
			tdn *= periparturientFactor
			me *= periparturientFactor
		}
	}

	req := Requirement{
		DCPGrams:    dcp * count,
		TDNKg:       tdn * count,
		MEMcal:      me * count,
		WaterLiters: water * count,
		DMIKg:       (DMIPercentFor(sub.Group) / 100.0) * sub.AvgWeightKg * count,
	}

	if ambientTempC > heatThresholdC {
		rate := waterPenaltyDefault
		if sub.Group == models.GroupLactatingCows {
			rate = waterPenaltyLactating
		}
		req.WaterLiters += ((ambientTempC - heatThresholdC) / 4.0) * rate * count
	}

	return req
}
