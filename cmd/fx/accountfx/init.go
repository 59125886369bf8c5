package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/rhidhanya/nearbynomad/internal/repositories"
	"github.com/rhidhanya/nearbynomad/internal/services"
	"github.com/rhidhanya/nearbynomad/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideOtpStore,
	provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideOtpStore() memcache.OtpStore {
	return memcache.NewOtpCodes()
}

func provideAccountService(accountRepo repositories.AccountRepository, otpStore memcache.OtpStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, otpStore)
}
