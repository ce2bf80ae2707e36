package bet

import (
	"swertres_backend/internal/config"
	"swertres_backend/internal/repository"
	"swertres_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	betRepo   repository.BetRepository
	limitRepo repository.BetLimitRepository
	gameCfg   config.GameConfig
	txManager trm.Manager
	log       *logrus.Logger
}

func NewBetService(
	betRepo repository.BetRepository,
	limitRepo repository.BetLimitRepository,
	gameCfg config.GameConfig,
	txManager trm.Manager,
	log *logrus.Logger,
) service.BetService {
	return &serv{
		betRepo:   betRepo,
		limitRepo: limitRepo,
		gameCfg:   gameCfg,
		txManager: txManager,
		log:       log,
	}
}
