package service

import (
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/crypto"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
)

type Services struct {
	TokenIssuer        TokenIssuer
	AuthService        AuthService
	UserService        UserService
	BankAccountService BankAccountService
	CategoryService    CategoryService
	TransactionService TransactionService
	DashboardService   DashboardService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	issuer := NewTokenIssuer(storages.RefreshTokenRepository, cfg.App, logger)

	return &Services{
		TokenIssuer: issuer,
		AuthService: NewAuthService(storages.UserRepository, storages.RefreshTokenRepository, issuer, hasher, cfg.App, logger),
		UserService: NewUserValidationService(
			NewUserService(storages.UserRepository, hasher, logger),
		),
		BankAccountService: NewBankAccountValidationService(
			NewBankAccountService(storages.BankAccountRepository, logger),
		),
		CategoryService: NewCategoryValidationService(
			NewCategoryService(storages.CategoryRepository, logger),
		),
		TransactionService: NewTransactionValidationService(
			NewTransactionService(storages.TransactionRepository, storages.BankAccountRepository, storages.CategoryRepository, logger),
		),
		DashboardService: NewDashboardService(storages.DashboardRepository, logger),
		AppInfoService:   appInfo,
	}, nil
}
