package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/models/response_models"
	"github.com/rhidhanya/nearbynomad/internal/services"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

func (p *PlacesController) GetPlaceById(c *gin.Context) {
	placeId := c.Param("id")
	if placeId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.placeService.GetPlaceById(placeId, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

func (p *PlacesController) GetNearbyPlaces(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid latitude")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid longitude")
		return
	}
	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "1000"), 64)

	places, err := p.placeService.GetNearbyPlaces(c.Request.Context(), lat, lng, radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Nearby places fetched successfully")
}

func (p *PlacesController) ListPlaces(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	places, err := p.placeService.ListPlaces(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlacesController) CreatePlace(c *gin.Context) {
	var req request_models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place payload")
		return
	}

	id, err := p.placeService.CreatePlace(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Place created successfully")
}

func (p *PlacesController) ImportCatalog(c *gin.Context) {
	var req request_models.ImportCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Catalog path is required")
		return
	}

	imported, err := p.placeService.ImportCatalog(c.Request.Context(), req.Path)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ImportResult{Imported: imported}, "Catalog imported successfully")
}
