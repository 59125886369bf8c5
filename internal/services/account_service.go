package services

import (
	"context"
	"log"
	"time"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
	"github.com/rhidhanya/nearbynomad/internal/models/request_models"
	"github.com/rhidhanya/nearbynomad/internal/repositories"
	"github.com/rhidhanya/nearbynomad/pkg/memcache"
	"github.com/rhidhanya/nearbynomad/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (string, error)
	CreateAccount(request request_models.SignUpRequest) error
	RequestOtp(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, code string) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	otpStore    memcache.OtpStore
}

const otpTTL = 5 * time.Minute

func NewAccountService(accountRepo repositories.AccountRepository, otpStore memcache.OtpStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		otpStore:    otpStore,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(context.Background(), request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}

	if _, err := a.accountRepo.Create(context.Background(), newAccount); err != nil {
		log.Printf("Error creating account: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) RequestOtp(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return utils.ErrInvalidInput
	}
	a.otpStore.Set(email, code, otpTTL)

	// Demo flow: no mail delivery, the code goes to the server log.
	log.Printf("OTP code for %s: %s", email, code)
	return nil
}

func (a *AccountService) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	if !a.otpStore.Consume(email, code) {
		return "", utils.ErrInvalidOtp
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}
