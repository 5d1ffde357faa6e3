package models

// NutrientStatus classifies a per-group supply gap for one nutrient.
type NutrientStatus string

const (
	StatusDeficit  NutrientStatus = "deficit"
	StatusAdequate NutrientStatus = "adequate"
	StatusExcess   NutrientStatus = "excess"
)

// GroupEvaluation is one computed output row: the required and allocated
// nutrients for a single sub-group.
type GroupEvaluation struct {
	Label       string  `json:"label"`
	Count       int     `json:"count"`
	AvgWeightKg float64 `json:"avg_weight_kg"`
	DMIKg       float64 `json:"dmi_kg"`

	DCPRequiredG   float64 `json:"dcp_required_g"`
	DCPSuppliedG   float64 `json:"dcp_supplied_g"`
	TDNRequiredKg  float64 `json:"tdn_required_kg"`
	TDNSuppliedKg  float64 `json:"tdn_supplied_kg"`
	MERequiredMcal float64 `json:"me_required_mcal"`
	MESuppliedMcal float64 `json:"me_supplied_mcal"`
	WaterRequiredL float64 `json:"water_required_l"`

	DCPStatus NutrientStatus `json:"dcp_status"`
	TDNStatus NutrientStatus `json:"tdn_status"`
	MEStatus  NutrientStatus `json:"me_status"`
}

// Recommendation carries the advisory text for one sub-group, keyed by the
// same ordering as the evaluation rows. ME is displayed but never generates
// advice; DCP and TDN drive it.
type Recommendation struct {
	Label   string `json:"label"`
	Protein string `json:"protein"`
	Energy  string `json:"energy"`
}

// WaterBalance is the herd-wide water assessment: pooled requirement against
// the single user-supplied availability figure.
type WaterBalance struct {
	RequiredL  float64 `json:"required_l"`
	AvailableL float64 `json:"available_l"`
	BalanceL   float64 `json:"balance_l"`
	Adequate   bool    `json:"adequate"`
}

// SupplyTotals is the pooled nutrient supply computed from the feed selection
// before allocation.
type SupplyTotals struct {
	DCPGrams float64 `json:"dcp_g"`
	TDNKg    float64 `json:"tdn_kg"`
	MEMcal   float64 `json:"me_mcal"`
}

// EvaluationResult is the full outcome of one calculation run.
type EvaluationResult struct {
	TotalAnimals    int               `json:"total_animals"`
	AmbientTempC    float64           `json:"ambient_temp_c"`
	Supply          SupplyTotals      `json:"supply"`
	Groups          []GroupEvaluation `json:"groups"`
	Recommendations []Recommendation  `json:"recommendations"`
	Water           WaterBalance      `json:"water"`
	HeatStressAlert bool              `json:"heat_stress_alert"`
}
