package service

import (
	"github.com/coinkeep/coin-keeper/internal/config"
	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/internal/store"
	"github.com/coinkeep/coin-keeper/internal/utils"
	"github.com/coinkeep/coin-keeper/internal/validators"
)

type Services struct {
	AuthService   AuthService
	LedgerService LedgerService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()
	tokens := utils.NewTokenGenerator(cfg.TokenLength)

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, storages.SessionRepository, validator, tokens, cfg, logger),
		LedgerService: NewLedgerService(storages.TransactionRepository, validator, systemClock{}, logger),
	}
}
