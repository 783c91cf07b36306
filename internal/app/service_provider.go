package app

import (
	"context"
	"io"
	"net/http"
	adminAPI "roulette_backend/internal/api/admin"
	rouletteAPI "roulette_backend/internal/api/roulette"
	"roulette_backend/internal/api/system"
	userAPI "roulette_backend/internal/api/user"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/lock"
	"roulette_backend/internal/logger"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/notifier"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/repository/house_stats_repo"
	"roulette_backend/internal/repository/inventory_repo"
	"roulette_backend/internal/repository/memory_repo"
	"roulette_backend/internal/repository/stats_repo"
	"roulette_backend/internal/repository/transaction_repo"
	"roulette_backend/internal/repository/user_repo"
	"roulette_backend/internal/repository/withdrawal_repo"
	"roulette_backend/internal/roulette"
	"roulette_backend/internal/service"
	"roulette_backend/internal/service/admin"
	rouletteServ "roulette_backend/internal/service/roulette"
	"roulette_backend/internal/service/user"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Configs
	httpCfg     config.HTTPConfig
	pgConfig    config.PGConfig
	storageCfg  config.StorageConfig
	rouletteCfg config.RouletteConfig
	redisCfg    config.RedisConfig
	amqpCfg     config.AMQPConfig
	logCfg      config.LogConfig
	adminCfg    config.AdminConfig

	log *zap.Logger

	// Ресурсы, которые закрываются при остановке
	closers []io.Closer

	//TXManager
	txManager trm.Manager

	// Database
	dbClient    *pgxpool.Pool
	memoryStore *memory_repo.Store

	// Repositories
	userRepo       repository.UserRepository
	inventoryRepo  repository.InventoryRepository
	withdrawalRepo repository.WithdrawalRepository
	ledgerRepo     repository.TransactionRepository
	statsRepo      repository.StatsRepository
	houseStatsRepo repository.HouseStatsRepository

	locker   lock.Locker
	notifier service.WithdrawalNotifier
	engine   *roulette.Engine

	// Services
	rouletteServ service.RouletteService
	userServ     service.UserService
	adminServ    service.AdminService

	// Handlers
	rouletteHand *rouletteAPI.Handler
	userHand     *userAPI.Handler
	adminHand    *adminAPI.Handler

	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
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

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) RouletteCfg() config.RouletteConfig {
	if sp.rouletteCfg == nil {
		cfg, err := env.NewRouletteConfigFromYAML(sp.StorageCfg().RouletteConfigPath())
		if err != nil {
			panic("failed to get roulette config: " + err.Error())
		}
		sp.rouletteCfg = cfg
	}
	return sp.rouletteCfg
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) AMQPCfg() config.AMQPConfig {
	if sp.amqpCfg == nil {
		cfg, err := env.NewAMQPConfig()
		if err != nil {
			panic("failed to get amqp config: " + err.Error())
		}
		sp.amqpCfg = cfg
	}
	return sp.amqpCfg
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LogCfg().Mode(), sp.LogCfg().Level())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) usePostgres() bool {
	return sp.StorageCfg().Driver() == config.StoragePostgres
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
		if sp.PgConfig().MigrateOnStart() {
			if err := repository.Migrate(ctx, dbc); err != nil {
				panic("failed to migrate db: " + err.Error())
			}
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) MemoryStore() *memory_repo.Store {
	if sp.memoryStore == nil {
		sp.Logger().Warn("using in-memory storage, data is lost on restart")
		sp.memoryStore = memory_repo.NewStore()
	}
	return sp.memoryStore
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if !sp.usePostgres() {
			sp.txManager = sp.MemoryStore()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		if sp.usePostgres() {
			sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
		} else {
			sp.userRepo = sp.MemoryStore().Users()
		}
	}
	return sp.userRepo
}

func (sp *ServiceProvider) InventoryRepo(ctx context.Context) repository.InventoryRepository {
	if sp.inventoryRepo == nil {
		if sp.usePostgres() {
			sp.inventoryRepo = inventory_repo.NewInventoryRepository(sp.DBClient(ctx))
		} else {
			sp.inventoryRepo = sp.MemoryStore().Inventory()
		}
	}
	return sp.inventoryRepo
}

func (sp *ServiceProvider) WithdrawalRepo(ctx context.Context) repository.WithdrawalRepository {
	if sp.withdrawalRepo == nil {
		if sp.usePostgres() {
			sp.withdrawalRepo = withdrawal_repo.NewWithdrawalRepository(sp.DBClient(ctx))
		} else {
			sp.withdrawalRepo = sp.MemoryStore().Withdrawals()
		}
	}
	return sp.withdrawalRepo
}

func (sp *ServiceProvider) LedgerRepo(ctx context.Context) repository.TransactionRepository {
	if sp.ledgerRepo == nil {
		if sp.usePostgres() {
			sp.ledgerRepo = transaction_repo.NewTransactionRepository(sp.DBClient(ctx))
		} else {
			sp.ledgerRepo = sp.MemoryStore().Ledger()
		}
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) StatsRepo(ctx context.Context) repository.StatsRepository {
	if sp.statsRepo == nil {
		if sp.usePostgres() {
			sp.statsRepo = stats_repo.NewStatsRepository(sp.DBClient(ctx))
		} else {
			sp.statsRepo = sp.MemoryStore().Stats()
		}
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) HouseStatsRepo() repository.HouseStatsRepository {
	if sp.houseStatsRepo == nil {
		sp.houseStatsRepo = house_stats_repo.NewHouseStatsRepository(0)
	}
	return sp.houseStatsRepo
}

// Locker Redis, если задан REDIS_ADDR, иначе блокировки внутри процесса
func (sp *ServiceProvider) Locker(ctx context.Context) lock.Locker {
	if sp.locker == nil {
		cfg := sp.RedisCfg()
		if cfg.Addr() == "" {
			sp.locker = lock.NewLocal()
			return sp.locker
		}

		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		l, err := lock.NewRedis(rdb, cfg.LockTTL())
		if err != nil {
			panic("failed to create redis locker: " + err.Error())
		}
		sp.closers = append(sp.closers, rdb)
		sp.locker = l
	}
	return sp.locker
}

// Notifier очередь AMQP, если задан AMQP_URL, иначе заявки только логируются
func (sp *ServiceProvider) Notifier() service.WithdrawalNotifier {
	if sp.notifier == nil {
		cfg := sp.AMQPCfg()
		if cfg.URL() == "" {
			sp.notifier = notifier.NewLog(sp.Logger())
			return sp.notifier
		}

		n, err := notifier.NewAMQP(cfg.URL(), cfg.Queue())
		if err != nil {
			panic("failed to create amqp notifier: " + err.Error())
		}
		sp.closers = append(sp.closers, n)
		sp.notifier = n
	}
	return sp.notifier
}

func (sp *ServiceProvider) Engine() *roulette.Engine {
	if sp.engine == nil {
		cfg := sp.RouletteCfg()
		e, err := roulette.NewEngine(cfg.Items(), cfg.Bonuses(), roulette.Rules{
			SpinCost:      cfg.SpinCost(),
			CreditWins:    cfg.CreditWins(),
			BonusCooldown: cfg.BonusCooldown(),
		})
		if err != nil {
			panic("failed to create roulette engine: " + err.Error())
		}

		log := sp.Logger().With(
			zap.Float64("expected_win", e.ExpectedSpinValue()),
			zap.Float64("house_edge", e.HouseEdge()),
			zap.Int("spin_cost", cfg.SpinCost()),
		)
		if e.HouseEdge() < 0 {
			log.Warn("roulette pays out more than it takes on average")
		} else {
			log.Info("roulette table loaded")
		}
		sp.engine = e
	}
	return sp.engine
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = rouletteServ.NewRouletteService(rouletteServ.Deps{
			Engine:         sp.Engine(),
			UserRepo:       sp.UserRepo(ctx),
			InventoryRepo:  sp.InventoryRepo(ctx),
			WithdrawalRepo: sp.WithdrawalRepo(ctx),
			LedgerRepo:     sp.LedgerRepo(ctx),
			StatsRepo:      sp.StatsRepo(ctx),
			HouseStatsRepo: sp.HouseStatsRepo(),
			Locker:         sp.Locker(ctx),
			Notifier:       sp.Notifier(),
			TxManager:      sp.TXManager(ctx),
			Log:            sp.Logger(),
			ActionTimeout:  sp.HTTPCfg().ActionTimeout(),
		})
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userServ == nil {
		sp.userServ = user.NewUserService(
			sp.UserRepo(ctx),
			sp.StatsRepo(ctx),
			sp.RouletteCfg().StartingBalance(),
			sp.Logger(),
		)
	}
	return sp.userServ
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = admin.NewAdminService(admin.Deps{
			UserRepo:       sp.UserRepo(ctx),
			WithdrawalRepo: sp.WithdrawalRepo(ctx),
			LedgerRepo:     sp.LedgerRepo(ctx),
			HouseStatsRepo: sp.HouseStatsRepo(),
			Locker:         sp.Locker(ctx),
			TxManager:      sp.TXManager(ctx),
			Log:            sp.Logger(),
			ActionTimeout:  sp.HTTPCfg().ActionTimeout(),
		})
	}
	return sp.adminServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv: sp.RouletteService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{
			Serv: sp.UserService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.userHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Serv: sp.AdminService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Logger(sp.Logger()))

		// CORS middleware, мини-приложение открывается с домена платформы
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.HTTPCfg().AllowedOrigins(),
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.NotFound(system.NotFound)
		r.MethodNotAllowed(system.MethodNotAllowed)

		// promhttp сжимает ответ сам
		r.Handle("/metrics", promhttp.Handler())

		rouletteHandler := sp.RouletteHandler(ctx)
		userHandler := sp.UserHandler(ctx)
		adminHandler := sp.AdminHandler(ctx)

		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Gzip)

			rr.Get("/", system.Home)
			rr.Route("/api", func(api chi.Router) {
				api.Get("/health", system.Health)

				api.Post("/register", userHandler.Register)
				api.Get("/user/{id}", userHandler.GetUser)
				api.Get("/user/stats/{id}", userHandler.Stats)

				api.Post("/spin-roulette", rouletteHandler.Spin)
				api.Post("/daily-bonus", rouletteHandler.DailyBonus)
				api.Get("/inventory/{id}", rouletteHandler.Inventory)
				api.Post("/withdraw", rouletteHandler.Withdraw)

				api.Route("/admin", func(ar chi.Router) {
					ar.Use(middleware.AdminToken(sp.AdminCfg().Token()))
					ar.Get("/withdrawals", adminHandler.Withdrawals)
					ar.Post("/add-stars", adminHandler.AddStars)
					ar.Get("/stats", adminHandler.Stats)
					ar.Post("/complete-withdrawal/{id}", adminHandler.CompleteWithdrawal)
				})
			})
		})

		if sp.AdminCfg().Token() == "" {
			sp.Logger().Warn("ADMIN_TOKEN is empty, admin routes are open")
		}

		sp.router = r
	}
	return sp.router
}

// Close освобождает соединения в обратном порядке создания
func (sp *ServiceProvider) Close() {
	for i := len(sp.closers) - 1; i >= 0; i-- {
		if err := sp.closers[i].Close(); err != nil {
			sp.Logger().Warn("close resource", zap.Error(err))
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
