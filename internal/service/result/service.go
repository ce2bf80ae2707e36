package result

import (
	"swertres_backend/internal/config"
	"swertres_backend/internal/repository"
	"swertres_backend/internal/service"

	"github.com/sirupsen/logrus"
)

type serv struct {
	drawRepo repository.DrawResultRepository
	betRepo  repository.BetRepository
	userRepo repository.UserRepository
	gameCfg  config.GameConfig
	log      *logrus.Logger
}

func NewResultService(
	drawRepo repository.DrawResultRepository,
	betRepo repository.BetRepository,
	userRepo repository.UserRepository,
	gameCfg config.GameConfig,
	log *logrus.Logger,
) service.ResultService {
	return &serv{
		drawRepo: drawRepo,
		betRepo:  betRepo,
		userRepo: userRepo,
		gameCfg:  gameCfg,
		log:      log,
	}
}
