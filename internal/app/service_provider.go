package app

import (
	"context"

	allocationAPI "swertres_backend/internal/api/allocation"
	authAPI "swertres_backend/internal/api/auth"
	betAPI "swertres_backend/internal/api/bet"
	limitAPI "swertres_backend/internal/api/limit"
	resultAPI "swertres_backend/internal/api/result"
	"swertres_backend/internal/config"
	"swertres_backend/internal/config/env"
	"swertres_backend/internal/middleware"
	"swertres_backend/internal/model"
	"swertres_backend/internal/repository"
	"swertres_backend/internal/repository/auth_repo"
	"swertres_backend/internal/repository/bet_repo"
	"swertres_backend/internal/repository/draw_repo"
	"swertres_backend/internal/repository/limit_repo"
	"swertres_backend/internal/repository/user_repo"
	"swertres_backend/internal/service"
	"swertres_backend/internal/service/allocation"
	"swertres_backend/internal/service/auth"
	"swertres_backend/internal/service/bet"
	"swertres_backend/internal/service/limit"
	"swertres_backend/internal/service/result"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logger
	logger *logrus.Logger

	// Configs
	jwtCfg  config.JWTConfig
	gameCfg config.GameConfig
	httpCfg config.HTTPConfig

	// Repositories
	authRepo  repository.AuthRepository
	userRepo  repository.UserRepository
	betRepo   repository.BetRepository
	drawRepo  repository.DrawResultRepository
	limitRepo repository.BetLimitRepository

	// Services
	authServ   service.AuthService
	betServ    service.BetService
	resultServ service.ResultService
	limitServ  service.LimitService
	allocServ  service.AllocationService

	// Handlers
	authHand   *authAPI.Handler
	betHand    *betAPI.Handler
	resultHand *resultAPI.Handler
	limitHand  *limitAPI.Handler
	allocHand  *allocationAPI.Handler

	// Router
	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *logrus.Logger {
	if sp.logger == nil {
		sp.logger = logrus.New()
		sp.logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) BetRepo(ctx context.Context) repository.BetRepository {
	if sp.betRepo == nil {
		sp.betRepo = bet_repo.NewBetRepository(sp.DBClient(ctx))
	}
	return sp.betRepo
}

func (sp *ServiceProvider) DrawRepo(ctx context.Context) repository.DrawResultRepository {
	if sp.drawRepo == nil {
		sp.drawRepo = draw_repo.NewDrawResultRepository(sp.DBClient(ctx))
	}
	return sp.drawRepo
}

func (sp *ServiceProvider) LimitRepo(ctx context.Context) repository.BetLimitRepository {
	if sp.limitRepo == nil {
		sp.limitRepo = limit_repo.NewBetLimitRepository(sp.DBClient(ctx))
	}
	return sp.limitRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) BetService(ctx context.Context) service.BetService {
	if sp.betServ == nil {
		sp.betServ = bet.NewBetService(sp.BetRepo(ctx), sp.LimitRepo(ctx), sp.GameCfg(), sp.TXManager(ctx), sp.Logger())
	}
	return sp.betServ
}

func (sp *ServiceProvider) ResultService(ctx context.Context) service.ResultService {
	if sp.resultServ == nil {
		sp.resultServ = result.NewResultService(sp.DrawRepo(ctx), sp.BetRepo(ctx), sp.UserRepo(ctx), sp.GameCfg(), sp.Logger())
	}
	return sp.resultServ
}

func (sp *ServiceProvider) LimitService(ctx context.Context) service.LimitService {
	if sp.limitServ == nil {
		sp.limitServ = limit.NewLimitService(sp.LimitRepo(ctx), sp.Logger())
	}
	return sp.limitServ
}

func (sp *ServiceProvider) AllocationService(ctx context.Context) service.AllocationService {
	if sp.allocServ == nil {
		sp.allocServ = allocation.NewAllocationService(sp.UserRepo(ctx), sp.TXManager(ctx), sp.Logger())
	}
	return sp.allocServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) BetHandler(ctx context.Context) *betAPI.Handler {
	if sp.betHand == nil {
		sp.betHand = betAPI.NewHandler(betAPI.HandlerDeps{Serv: sp.BetService(ctx)})
	}
	return sp.betHand
}

func (sp *ServiceProvider) ResultHandler(ctx context.Context) *resultAPI.Handler {
	if sp.resultHand == nil {
		sp.resultHand = resultAPI.NewHandler(resultAPI.HandlerDeps{Serv: sp.ResultService(ctx)})
	}
	return sp.resultHand
}

func (sp *ServiceProvider) LimitHandler(ctx context.Context) *limitAPI.Handler {
	if sp.limitHand == nil {
		sp.limitHand = limitAPI.NewHandler(limitAPI.HandlerDeps{Serv: sp.LimitService(ctx)})
	}
	return sp.limitHand
}

func (sp *ServiceProvider) AllocationHandler(ctx context.Context) *allocationAPI.Handler {
	if sp.allocHand == nil {
		sp.allocHand = allocationAPI.NewHandler(allocationAPI.HandlerDeps{Serv: sp.AllocationService(ctx)})
	}
	return sp.allocHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			// register доступен без токена только для первичного админа
			rr.With(middleware.AuthOptional(sp.JWTCfg())).Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Authenticated endpoints
		betHandler := sp.BetHandler(ctx)
		resultHandler := sp.ResultHandler(ctx)
		limitHandler := sp.LimitHandler(ctx)
		allocHandler := sp.AllocationHandler(ctx)

		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))

			rr.Route("/bet", func(rb chi.Router) {
				rb.Post("/place", betHandler.Place)
				rb.Post("/check-limit", betHandler.CheckLimit)
			})
			rr.Get("/bets", betHandler.List)

			rr.Get("/results", resultHandler.List)
			rr.Get("/tally", resultHandler.Tally)

			// Результаты тиражей и лимиты публикует только админ
			rr.With(middleware.RequireRole(model.RoleAdmin)).Post("/result", resultHandler.Post)
			rr.With(middleware.RequireRole(model.RoleAdmin)).Post("/limit", limitHandler.Set)
			rr.With(middleware.RequireRole(model.RoleAdmin)).Get("/limits", limitHandler.List)

			// Аллокации меняют только узлы с подчиненными
			rr.Route("/allocation", func(ra chi.Router) {
				ra.Use(middleware.RequireRole(model.RoleAdmin, model.RoleCoordinator, model.RoleSubCoordinator))
				ra.Get("/children", allocHandler.Children)
				ra.Put("/{id}", allocHandler.Update)
			})
		})

		sp.router = r
	}

	return sp.router
}
