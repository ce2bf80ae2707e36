package auth

import (
	"context"
	"errors"
	"time"

	"swertres_backend/internal/middleware"
	"swertres_backend/internal/model"
	"swertres_backend/pkg/apperr"
	"swertres_backend/pkg/pass"
	"swertres_backend/pkg/token"
)

// Register создает подчиненного узла иерархии.
//
// Родителем становится аутентифицированный создатель. Запрос без
// аутентификации допустим только для корневого админа (ParentID = nil),
// роль в этом случае обязана быть admin
func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	if !user.Role.Valid() {
		return nil, &apperr.ErrorBadRequest{Field: "role", Message: "unknown role"}
	}

	creatorID, authorized := middleware.UserIDFromContext(ctx)
	if authorized {
		if user.Role == model.RoleAdmin {
			return nil, &apperr.ErrorBadRequest{Field: "role", Message: "admin cannot be a subordinate"}
		}
		user.ParentID = &creatorID
	} else {
		if user.Role != model.RoleAdmin {
			return nil, &apperr.ErrorBadRequest{Field: "role", Message: "registration of subordinates requires authorization"}
		}
		user.ParentID = nil
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	// Переменные для хранения результатов
	var (
		sessionID    string
		refreshToken string
		accessToken  string
	)

	// Начало транзакциии
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}
		// 2. Генерация sessionID
		sessionID = generateSessionID()
		// 3. Генерация refresh токена
		refreshToken, err = token.GenerateRefreshToken()
		if err != nil {
			return err
		}

		// 4. Создать сессию
		err = s.authRepo.CreateSession(ctx,
			&model.Session{
				ID:           sessionID,
				UserID:       user.ID,
				RefreshToken: token.HashRefreshToken(refreshToken),
				ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
			})
		if err != nil {
			return err
		}

		// 5. Создать access токен
		accessToken, err = token.GenerateAccessToken(
			user,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, errors.New("failed to register user")
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
