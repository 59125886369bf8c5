package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/models/response_models"
	"github.com/rhidhanya/nearbynomad/internal/services"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

func (a *AccountController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid signup payload")
		return
	}

	if err := a.accountService.CreateAccount(req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid login payload")
		return
	}

	token, err := a.accountService.Login(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AuthToken{Token: token}, "Logged in successfully")
}

func (a *AccountController) RequestOtp(c *gin.Context) {
	var req request_models.OtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := a.accountService.RequestOtp(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "OTP code sent")
}

func (a *AccountController) VerifyOtp(c *gin.Context) {
	var req request_models.OtpVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and code are required")
		return
	}

	token, err := a.accountService.VerifyOtp(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AuthToken{Token: token}, "OTP verified successfully")
}
