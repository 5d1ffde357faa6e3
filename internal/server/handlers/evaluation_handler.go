package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/config"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/domain/models"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/report"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/repository/mongodb"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/service/evaluation"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/pkg/clients/weather"
)

// Ambient temperature assumed when neither the request nor the weather
// lookup provides one. Sits on the heat-penalty threshold, so it adds nothing.
const defaultAmbientTempC = 25.0

const persistTimeout = 5 * time.Second

// Evaluator runs the nutrition calculation over one input snapshot.
type Evaluator interface {
	Evaluate(input evaluation.Input) (*models.EvaluationResult, error)
}

// FeedCatalog lists the loaded feed-composition rows.
type FeedCatalog interface {
	Ingredients() []models.FeedIngredient
}

// EvaluationHandler handles the evaluation, report and rating endpoints.
type EvaluationHandler struct {
	svc        Evaluator
	feeds      FeedCatalog
	records    mongodb.Repository
	renderer   *report.Renderer
	weather    weather.Client
	weatherCfg config.WeatherConfig
	cache      *resultCache
	logger     *zap.Logger
}

// NewEvaluationHandler constructs the HTTP handler adapter. The weather
// client may be nil when no farm coordinates are configured.
func NewEvaluationHandler(
	svc Evaluator,
	feeds FeedCatalog,
	records mongodb.Repository,
	renderer *report.Renderer,
	weatherClient weather.Client,
	weatherCfg config.WeatherConfig,
	logger *zap.Logger,
) *EvaluationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationHandler{
		svc:        svc,
		feeds:      feeds,
		records:    records,
		renderer:   renderer,
		weather:    weatherClient,
		weatherCfg: weatherCfg,
		cache:      newResultCache(),
		logger:     logger,
	}
}

type subGroupInput struct {
	Group          string   `json:"group" binding:"required"`
	AvgWeightKg    float64  `json:"avg_weight_kg" binding:"required,gt=0"`
	Count          int      `json:"count" binding:"required,min=1"`
	MilkKgPerDay   *float64 `json:"milk_kg_per_day"`
	MilkFatPercent *float64 `json:"milk_fat_percent"`
	DaysInMilk     *int     `json:"days_in_milk"`
}

type evaluationRequest struct {
	Herd            []subGroupInput    `json:"herd" binding:"required,dive"`
	Fodder          map[string]float64 `json:"fodder" binding:"required"`
	WaterAvailableL float64            `json:"water_available_l" binding:"min=0"`
	AmbientTempC    *float64           `json:"ambient_temp_c"`
}

type evaluationResponse struct {
	FarmerID string                   `json:"farmer_id,omitempty"`
	Result   *models.EvaluationResult `json:"result"`
	Warnings []string                 `json:"warnings,omitempty"`
}

type ratingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// ListFeeds returns the feed-composition table rows.
func (h *EvaluationHandler) ListFeeds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"feeds": h.feeds.Ingredients()})
}

// Evaluate runs one calculation over the posted herd and fodder snapshot,
// persists a farmer record best-effort, and returns the evaluation table.
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	var req evaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid evaluation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	herd, err := buildHerd(req.Herd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var warnings []string
	ambient, warning := h.resolveAmbientTemp(c.Request.Context(), req.AmbientTempC)
	if warning != "" {
		warnings = append(warnings, warning)
	}

	result, err := h.svc.Evaluate(evaluation.Input{
		Herd:            herd,
		Fodder:          req.Fodder,
		WaterAvailableL: req.WaterAvailableL,
		AmbientTempC:    ambient,
	})
	if err != nil {
		h.respondEvaluationError(c, err)
		return
	}

	computedAt := time.Now()
	farmerID, warning := h.persistRecord(c.Request.Context(), herd, result, req.Fodder, computedAt)
	if warning != "" {
		warnings = append(warnings, warning)
	}
	if farmerID != "" {
		h.cache.Put(farmerID, result, computedAt)
	}

	c.JSON(http.StatusOK, evaluationResponse{FarmerID: farmerID, Result: result, Warnings: warnings})
}

// Report renders the printable HTML report for a cached evaluation.
func (h *EvaluationHandler) Report(c *gin.Context) {
	farmerID := c.Param("farmerID")

	result, computedAt, ok := h.cache.Get(farmerID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no evaluation found for this farmer id"})
		return
	}

	html, err := h.renderer.Render(result, report.Meta{FarmerID: farmerID, GeneratedAt: computedAt})
	if err != nil {
		h.logger.Error("failed rendering report", zap.String("farmer_id", farmerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// Rate attaches a 1-5 star rating to an existing farmer record.
func (h *EvaluationHandler) Rate(c *gin.Context) {
	farmerID := c.Param("farmerID")

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be an integer between 1 and 5"})
		return
	}

	if err := h.records.AttachRating(c.Request.Context(), farmerID, req.Rating); err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "farmer record not found"})
			return
		}
		h.logger.Error("failed saving rating", zap.String("farmer_id", farmerID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to save rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmer_id": farmerID, "rating": req.Rating})
}

func (h *EvaluationHandler) respondEvaluationError(c *gin.Context, err error) {
	var unknown *evaluation.UnknownIngredientError
	switch {
	case errors.Is(err, evaluation.ErrNoAnimals),
		errors.Is(err, evaluation.ErrNoFodderSelected),
		errors.Is(err, evaluation.ErrZeroFodderAmounts):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &unknown):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("evaluation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
	}
}

// resolveAmbientTemp prefers the request value, then the weather lookup, and
// finally the penalty-neutral default.
func (h *EvaluationHandler) resolveAmbientTemp(ctx context.Context, requested *float64) (float64, string) {
	if requested != nil {
		return *requested, ""
	}

	if h.weather != nil && h.weatherCfg.Enabled {
		temp, err := h.weather.CurrentTemperature(ctx, h.weatherCfg.Latitude, h.weatherCfg.Longitude)
		if err == nil {
			return temp, ""
		}
		h.logger.Warn("weather lookup failed", zap.Error(err))
		return defaultAmbientTempC, fmt.Sprintf("weather lookup failed, assuming %.0f°C ambient", defaultAmbientTempC)
	}

	return defaultAmbientTempC, ""
}

// persistRecord saves the farmer document. Failures never invalidate the
// computed result; they come back as a warning only.
func (h *EvaluationHandler) persistRecord(ctx context.Context, herd []models.SubGroup, result *models.EvaluationResult, fodder models.FeedSelection, computedAt time.Time) (string, string) {
	if h.records == nil {
		return "", ""
	}

	saveCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	farmerID, err := h.records.NextFarmerID(saveCtx)
	if err != nil {
		h.logger.Error("failed generating farmer id", zap.Error(err))
		return "", "could not save calculation: " + err.Error()
	}

	details := make(map[models.AnimalGroup][]models.SubGroup)
	for _, sub := range herd {
		details[sub.Group] = append(details[sub.Group], sub)
	}

	record := models.FarmerRecord{
		FarmerID:        farmerID,
		Timestamp:       computedAt.UTC(),
		TotalAnimals:    result.TotalAnimals,
		AnimalDetails:   details,
		FodderSelection: fodder.NonZero(),
	}

	if err := h.records.SaveRecord(saveCtx, record); err != nil {
		h.logger.Error("failed saving farmer record", zap.String("farmer_id", farmerID), zap.Error(err))
		return farmerID, "could not save calculation: " + err.Error()
	}

	return farmerID, ""
}

func buildHerd(inputs []subGroupInput) ([]models.SubGroup, error) {
	herd := make([]models.SubGroup, 0, len(inputs))

	for i, in := range inputs {
		group, ok := models.ParseAnimalGroup(in.Group)
		if !ok {
			return nil, fmt.Errorf("herd[%d]: unknown animal group %q", i, in.Group)
		}

		sub := models.SubGroup{Group: group, AvgWeightKg: in.AvgWeightKg, Count: in.Count}

		if group == models.GroupLactatingCows {
			if in.MilkKgPerDay == nil || in.MilkFatPercent == nil || in.DaysInMilk == nil {
				return nil, fmt.Errorf("herd[%d]: lactating cows require milk_kg_per_day, milk_fat_percent and days_in_milk", i)
			}
			if *in.DaysInMilk < 0 {
				return nil, fmt.Errorf("herd[%d]: days_in_milk must not be negative", i)
			}
			sub.Lactation = &models.Lactation{
				MilkKgPerDay:   *in.MilkKgPerDay,
				MilkFatPercent: *in.MilkFatPercent,
				DaysInMilk:     *in.DaysInMilk,
			}
		}

		herd = append(herd, sub)
	}

	return herd, nil
}
