package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/services"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

type RecommendationsController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationsController(recommendationService services.RecommendationServiceInterface) *RecommendationsController {
	return &RecommendationsController{
		recommendationService: recommendationService,
	}
}

func (r *RecommendationsController) Generate(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: userLocation, preferences")
		return
	}

	result, err := r.recommendationService.GetRecommendations(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recommendations generated successfully")
}

func (r *RecommendationsController) Itinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing or invalid places array")
		return
	}

	itinerary, err := r.recommendationService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

func (r *RecommendationsController) SurpriseMe(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: userLocation, preferences")
		return
	}

	picks, err := r.recommendationService.GenerateSurprise(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, picks, "Surprise recommendations generated successfully")
}

func (r *RecommendationsController) Score(c *gin.Context) {
	var req request_models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: placeId, preferences, userLocation")
		return
	}

	result, err := r.recommendationService.ScorePlace(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Score calculated successfully")
}

func (r *RecommendationsController) TimeBased(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: latitude, longitude")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: latitude, longitude")
		return
	}

	result, err := r.recommendationService.TimeBased(c.Request.Context(), lat, lng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Time-based recommendations generated successfully")
}

func (r *RecommendationsController) MoodProfiles(c *gin.Context) {
	utils.RespondSuccess(c, r.recommendationService.MoodProfiles(), "Mood profiles fetched successfully")
}

func (r *RecommendationsController) InterestMappings(c *gin.Context) {
	utils.RespondSuccess(c, r.recommendationService.InterestMappings(), "Interest mappings fetched successfully")
}
