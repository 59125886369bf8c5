package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/services"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

type RidesController struct {
	rideService services.RideServiceInterface
}

func NewRidesController(rideService services.RideServiceInterface) *RidesController {
	return &RidesController{
		rideService: rideService,
	}
}

func (r *RidesController) GenerateLink(c *gin.Context) {
	var req request_models.RideLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	link, err := r.rideService.GenerateRideLink(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, link, "Ride link generated successfully")
}
