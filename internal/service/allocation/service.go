package allocation

import (
	"context"
	"errors"

	"swertres_backend/internal/middleware"
	"swertres_backend/internal/model"
	"swertres_backend/internal/repository"
	"swertres_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	userRepo  repository.UserRepository
	txManager trm.Manager
	log       *logrus.Logger
}

func NewAllocationService(userRepo repository.UserRepository, txManager trm.Manager, log *logrus.Logger) service.AllocationService {
	return &serv{
		userRepo:  userRepo,
		txManager: txManager,
		log:       log,
	}
}

// Children - прямые подчиненные аутентифицированного узла
func (s *serv) Children(ctx context.Context) ([]model.User, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	return s.userRepo.GetChildren(ctx, userID)
}
