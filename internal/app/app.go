package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"lexiscreen_backend/internal/config"
	"lexiscreen_backend/internal/controller"
	"lexiscreen_backend/internal/exercise"
	"lexiscreen_backend/internal/repository"
	"lexiscreen_backend/internal/service"
	"lexiscreen_backend/pkg/configwatcher"
	"lexiscreen_backend/pkg/database"
	"lexiscreen_backend/pkg/logger"
	"lexiscreen_backend/pkg/monitoring"
	"lexiscreen_backend/pkg/security"
	"lexiscreen_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	// tunables holds the live gameplay settings so config file edits
	// reach new sessions without a restart.
	tunables atomic.Value // config.ScreeningConfig
}

type repositories struct {
	user       *repository.UserRepository
	assignment *repository.AssignmentRepository
	result     *repository.ResultRepository
	screening  *repository.ScreeningRepository
	progress   *repository.ProgressRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	classifier *service.ClassifierService
	screening  *service.ScreeningService
	assignment *service.AssignmentService
	catalog    *service.CatalogService
	result     *service.ResultService
	session    *service.SessionService
}

type controllers struct {
	auth       *controller.AuthController
	screening  *controller.ScreeningController
	exercise   *controller.ExerciseController
	session    *controller.SessionController
	assignment *controller.AssignmentController
	result     *controller.ResultController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		result:     repository.NewResultRepository(db),
		screening:  repository.NewScreeningRepository(db),
		progress:   repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.classifier = service.NewClassifierService(&cfg.Classifier)
	s.screening = service.NewScreeningService(repos.screening, repos.user, s.classifier, rdb)
	s.assignment = service.NewAssignmentService(repos.assignment, rdb)
	s.catalog = service.NewCatalogService(s.screening, s.assignment)
	s.result = service.NewResultService(repos.result, s.storage)
	s.session = service.NewSessionService(s.catalog, repos.progress, s.result, a.gameplayTunables)

	return s
}

// gameplayTunables snapshots the live screening settings for one new
// session.
func (a *App) gameplayTunables() (exercise.Config, bool) {
	sc := a.tunables.Load().(config.ScreeningConfig)
	return exercise.Config{
		PassAccuracy:          sc.PassAccuracy,
		GridTargetProbability: sc.GridTargetProbability,
	}, sc.CaptureEnabled
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		screening:  controller.NewScreeningController(s.screening),
		exercise:   controller.NewExerciseController(s.catalog),
		session:    controller.NewSessionController(s.session),
		assignment: controller.NewAssignmentController(s.assignment),
		result:     controller.NewResultController(s.result),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig feeds config file edits into the live tunables.
func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(raw interface{}) {
		newCfg, ok := raw.(*config.Config)
		if !ok {
			return
		}
		a.tunables.Store(newCfg.Screening)
		logger.Log.Info("gameplay tunables reloaded",
			zap.Int("passAccuracy", newCfg.Screening.PassAccuracy),
			zap.Float64("gridTargetProbability", newCfg.Screening.GridTargetProbability))
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}
	app.tunables.Store(cfg.Screening)

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lexiscreen", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
