package nutrition

import (
	"math"
	"testing"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCompute_DryCowMaintenanceOnly(t *testing.T) {
	sub := models.SubGroup{Group: models.GroupDryCows, AvgWeightKg: 400, Count: 2}

	req := Compute(sub, 20)

	nearlyEqual(t, "DCPGrams", req.DCPGrams, 600)
	nearlyEqual(t, "TDNKg", req.TDNKg, 7.4)
	nearlyEqual(t, "MEMcal", req.MEMcal, 26.4)
	nearlyEqual(t, "WaterLiters", req.WaterLiters, 80)
	nearlyEqual(t, "DMIKg", req.DMIKg, 16)
}

func TestCompute_LactatingCowReferenceScenario(t *testing.T) {
	// 450 kg cow, 10 kg milk at 5% fat, DIM 60, 30°C ambient.
	sub := models.SubGroup{
		Group:       models.GroupLactatingCows,
		AvgWeightKg: 450,
		Count:       1,
		Lactation:   &models.Lactation{MilkKgPerDay: 10, MilkFatPercent: 5, DaysInMilk: 60},
	}

	req := Compute(sub, 30)

	nearlyEqual(t, "DCPGrams", req.DCPGrams, 810)           // 300 + 51*10
	nearlyEqual(t, "TDNKg", req.TDNKg, 7.4)                 // 3.7 + 0.37*10
	nearlyEqual(t, "MEMcal", req.MEMcal, 26.0)              // 13.2 + 1.28*10
	nearlyEqual(t, "WaterLiters", req.WaterLiters, 118.125) // 60 + 5*10 + (5/4)*6.5
	nearlyEqual(t, "DMIKg", req.DMIKg, 13.5)                // 3% of 450
}

func TestCompute_PeriparturientPremium(t *testing.T) {
	fresh := models.SubGroup{
		Group:       models.GroupLactatingCows,
		AvgWeightKg: 450,
		Count:       1,
		Lactation:   &models.Lactation{MilkKgPerDay: 8, MilkFatPercent: 4, DaysInMilk: 21},
	}
	established := fresh
	established.Lactation = &models.Lactation{MilkKgPerDay: 8, MilkFatPercent: 4, DaysInMilk: 22}

	freshReq := Compute(fresh, 20)
	establishedReq := Compute(established, 20)

	nearlyEqual(t, "DCP ratio", freshReq.DCPGrams/establishedReq.DCPGrams, 1.20)
	nearlyEqual(t, "TDN ratio", freshReq.TDNKg/establishedReq.TDNKg, 1.20)
	nearlyEqual(t, "ME ratio", freshReq.MEMcal/establishedReq.MEMcal, 1.20)
	// Water is unaffected by the premium.
	nearlyEqual(t, "water", freshReq.WaterLiters, establishedReq.WaterLiters)
}

func TestCompute_UntabulatedFatFallsBackToFivePercent(t *testing.T) {
	odd := models.SubGroup{
		Group:       models.GroupLactatingCows,
		AvgWeightKg: 450,
		Count:       1,
		Lactation:   &models.Lactation{MilkKgPerDay: 10, MilkFatPercent: 4.5, DaysInMilk: 60},
	}
	five := odd
	five.Lactation = &models.Lactation{MilkKgPerDay: 10, MilkFatPercent: 5, DaysInMilk: 60}

	oddReq := Compute(odd, 20)
	fiveReq := Compute(five, 20)

	nearlyEqual(t, "DCPGrams", oddReq.DCPGrams, fiveReq.DCPGrams)
	nearlyEqual(t, "TDNKg", oddReq.TDNKg, fiveReq.TDNKg)
	nearlyEqual(t, "MEMcal", oddReq.MEMcal, fiveReq.MEMcal)
	nearlyEqual(t, "WaterLiters", oddReq.WaterLiters, fiveReq.WaterLiters)
}

func TestCompute_NoWaterPenaltyAtOrBelowThreshold(t *testing.T) {
	sub := models.SubGroup{Group: models.GroupHeifers, AvgWeightKg: 200, Count: 3}

	for _, temp := range []float64{10, 20, 25} {
		req := Compute(sub, temp)
		nearlyEqual(t, "WaterLiters", req.WaterLiters, 105)
	}
}

func TestCompute_WaterMonotonicInTemperature(t *testing.T) {
	sub := models.SubGroup{Group: models.GroupAdultBulls, AvgWeightKg: 500, Count: 1}

	prev := Compute(sub, 25).WaterLiters
	for temp := 26.0; temp <= 45; temp++ {
		current := Compute(sub, temp).WaterLiters
		if current <= prev {
			t.Fatalf("water at %v°C = %v, want > %v", temp, current, prev)
		}
		prev = current
	}
}

func TestCompute_WaterPenaltyRates(t *testing.T) {
	// At 29°C the penalty is exactly one increment of the per-animal rate.
	lactating := models.SubGroup{
		Group:       models.GroupLactatingCows,
		AvgWeightKg: 450,
		Count:       2,
		Lactation:   &models.Lactation{MilkKgPerDay: 0, MilkFatPercent: 5, DaysInMilk: 100},
	}
	dry := models.SubGroup{Group: models.GroupDryCows, AvgWeightKg: 400, Count: 2}

	nearlyEqual(t, "lactating", Compute(lactating, 29).WaterLiters-Compute(lactating, 25).WaterLiters, 13.0)
	nearlyEqual(t, "dry", Compute(dry, 29).WaterLiters-Compute(dry, 25).WaterLiters, 6.0)
}

func TestCompute_Idempotent(t *testing.T) {
	sub := models.SubGroup{
		Group:       models.GroupLactatingCows,
		AvgWeightKg: 480,
		Count:       4,
		Lactation:   &models.Lactation{MilkKgPerDay: 14, MilkFatPercent: 6, DaysInMilk: 12},
	}

	first := Compute(sub, 33)
	second := Compute(sub, 33)

	if first != second {
		t.Fatalf("repeated computation diverged: %+v vs %+v", first, second)
	}
}
