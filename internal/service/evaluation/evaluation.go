// Package evaluation implements the allocation and evaluation engine: it
// pools the nutrient supply from the selected fodders, distributes it across
// sub-groups proportionally to dry-matter intake, and classifies each group's
// supply gap.
package evaluation

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/nutrition"
)

// Validation failures reported back to the user. They block the calculation
// until corrected.
var (
	ErrNoAnimals         = errors.New("enter at least one animal")
	ErrNoFodderSelected  = errors.New("select at least one fodder")
	ErrZeroFodderAmounts = errors.New("enter a fodder amount greater than zero")
)

// UnknownIngredientError signals a fodder name absent from the composition
// table. Selections are built from the table's own key set, so this is a
// contract violation rather than user error.
type UnknownIngredientError struct {
	Name string
}

func (e *UnknownIngredientError) Error() string {
	return fmt.Sprintf("unknown feed ingredient %q", e.Name)
}

const (
	// Average digestibility applied to crude protein.
	proteinDigestibility = 0.70

	// Mcal of digestible energy per kg of TDN; ME stands in for DE.
	mcalPerKgTDN = 4.4

	// Gap percentage beyond which supply counts as deficit/excess. The
	// boundaries themselves classify as adequate.
	gapTolerancePercent = 10.0

	// Ambient temperature above which the result carries a heat-stress alert.
	heatAlertC = 35.0
)

// FeedTable resolves ingredient names to their composition row.
type FeedTable interface {
	Lookup(name string) (models.FeedIngredient, bool)
}

// Input is the immutable snapshot of one calculation request.
type Input struct {
	Herd            []models.SubGroup
	Fodder          models.FeedSelection
	WaterAvailableL float64
	AmbientTempC    float64
}

// Service runs evaluations against a feed-composition table.
type Service struct {
	feeds  FeedTable
	logger *zap.Logger
}

// NewService wires a new evaluation service instance.
func NewService(feeds FeedTable, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{feeds: feeds, logger: logger}
}

// Evaluate validates the input, computes per-group requirements, pools and
// allocates the feed supply, and classifies the gaps. The computation is a
// single deterministic pass with no side effects.
func (s *Service) Evaluate(input Input) (*models.EvaluationResult, error) {
	totalAnimals := 0
	for _, sub := range input.Herd {
		totalAnimals += sub.Count
	}
	if totalAnimals == 0 {
		return nil, ErrNoAnimals
	}
	if len(input.Fodder) == 0 {
		return nil, ErrNoFodderSelected
	}

	active := input.Fodder.NonZero()
	if len(active) == 0 {
		return nil, ErrZeroFodderAmounts
	}

	supply, err := s.AggregateSupply(active)
	if err != nil {
		return nil, err
	}

	groups, totalDMI, totalWater := s.computeRequirements(input.Herd, input.AmbientTempC)
	allocate(groups, supply, totalDMI)

	recommendations := make([]models.Recommendation, 0, len(groups))
	for i := range groups {
		groups[i].DCPStatus = classify(gapPercent(groups[i].DCPSuppliedG, groups[i].DCPRequiredG))
		groups[i].TDNStatus = classify(gapPercent(groups[i].TDNSuppliedKg, groups[i].TDNRequiredKg))
		groups[i].MEStatus = classify(gapPercent(groups[i].MESuppliedMcal, groups[i].MERequiredMcal))
		recommendations = append(recommendations, recommend(groups[i]))
	}

	result := &models.EvaluationResult{
		TotalAnimals:    totalAnimals,
		AmbientTempC:    input.AmbientTempC,
		Supply:          supply,
		Groups:          groups,
		Recommendations: recommendations,
		Water: models.WaterBalance{
			RequiredL:  totalWater,
			AvailableL: input.WaterAvailableL,
			BalanceL:   input.WaterAvailableL - totalWater,
			Adequate:   input.WaterAvailableL >= totalWater,
		},
		HeatStressAlert: input.AmbientTempC > heatAlertC,
	}

	s.logger.Info("evaluation completed",
		zap.Int("total_animals", totalAnimals),
		zap.Int("sub_groups", len(groups)),
		zap.Float64("total_dmi_kg", totalDMI),
		zap.Float64("water_balance_l", result.Water.BalanceL))

	return result, nil
}

// AggregateSupply pools the nutrients contributed by each fodder quantity.
// Supply is not tied to any group at this stage.
func (s *Service) AggregateSupply(selection models.FeedSelection) (models.SupplyTotals, error) {
	var totals models.SupplyTotals

	for name, kg := range selection {
		if kg <= 0 {
			continue
		}
		ingredient, ok := s.feeds.Lookup(name)
		if !ok {
			return models.SupplyTotals{}, &UnknownIngredientError{Name: name}
		}

		totals.DCPGrams += (ingredient.CPPercent / 100.0) * kg * 1000.0 * proteinDigestibility
		totals.TDNKg += (ingredient.MEMcalPerKg * kg) / mcalPerKgTDN
		totals.MEMcal += ingredient.MEMcalPerKg * kg
	}

	return totals, nil
}

func (s *Service) computeRequirements(herd []models.SubGroup, ambientTempC float64) ([]models.GroupEvaluation, float64, float64) {
	groups := make([]models.GroupEvaluation, 0, len(herd))
	perGroupIndex := make(map[models.AnimalGroup]int, len(models.AllGroups))

	var totalDMI, totalWater float64

	for _, sub := range herd {
		if sub.Count <= 0 {
			continue
		}
		perGroupIndex[sub.Group]++

		req := nutrition.Compute(sub, ambientTempC)
		totalDMI += req.DMIKg
		totalWater += req.WaterLiters

		groups = append(groups, models.GroupEvaluation{
			Label:          subGroupLabel(sub, perGroupIndex[sub.Group]),
			Count:          sub.Count,
			AvgWeightKg:    sub.AvgWeightKg,
			DMIKg:          req.DMIKg,
			DCPRequiredG:   req.DCPGrams,
			TDNRequiredKg:  req.TDNKg,
			MERequiredMcal: req.MEMcal,
			WaterRequiredL: req.WaterLiters,
		})
	}

	return groups, totalDMI, totalWater
}

// allocate distributes the pooled supply by DMI share. A zero total DMI can
// only occur when validation was bypassed; it degrades to a zero-supply
// allocation instead of dividing by zero.
func allocate(groups []models.GroupEvaluation, supply models.SupplyTotals, totalDMI float64) {
	if totalDMI <= 0 {
		return
	}
	for i := range groups {
		share := groups[i].DMIKg / totalDMI
		groups[i].DCPSuppliedG = share * supply.DCPGrams
		groups[i].TDNSuppliedKg = share * supply.TDNKg
		groups[i].MESuppliedMcal = share * supply.MEMcal
	}
}

func gapPercent(supplied, required float64) float64 {
	if required <= 0 {
		return 0
	}
	return ((supplied - required) / required) * 100.0
}

func classify(gap float64) models.NutrientStatus {
	switch {
	case gap < -gapTolerancePercent:
		return models.StatusDeficit
	case gap > gapTolerancePercent:
		return models.StatusExcess
	default:
		return models.StatusAdequate
	}
}

func recommend(group models.GroupEvaluation) models.Recommendation {
	rec := models.Recommendation{Label: group.Label}

	dcpGap := gapPercent(group.DCPSuppliedG, group.DCPRequiredG)
	switch group.DCPStatus {
	case models.StatusDeficit:
		rec.Protein = fmt.Sprintf("Deficit %.1f%% - add protein-rich concentrate", math.Abs(dcpGap))
	case models.StatusExcess:
		rec.Protein = fmt.Sprintf("Excess %.1f%% - reduce protein supplements", dcpGap)
	default:
		rec.Protein = "Adequate"
	}

	tdnGap := gapPercent(group.TDNSuppliedKg, group.TDNRequiredKg)
	switch group.TDNStatus {
	case models.StatusDeficit:
		rec.Energy = fmt.Sprintf("Deficit %.1f%% - add energy-rich feed", math.Abs(tdnGap))
	case models.StatusExcess:
		rec.Energy = fmt.Sprintf("Excess %.1f%% - reduce grain feeding", tdnGap)
	default:
		rec.Energy = "Adequate"
	}

	return rec
}

func subGroupLabel(sub models.SubGroup, index int) string {
	if sub.Group == models.GroupLactatingCows && sub.Lactation != nil {
		return fmt.Sprintf("%s #%d (Wt:%gkg, Milk:%gkg, Fat:%g%%, DIM:%d)",
			sub.Group.ShortName(), index, sub.AvgWeightKg,
			sub.Lactation.MilkKgPerDay, sub.Lactation.MilkFatPercent, sub.Lactation.DaysInMilk)
	}
	return fmt.Sprintf("%s #%d (Wt:%gkg)", sub.Group.ShortName(), index, sub.AvgWeightKg)
}
