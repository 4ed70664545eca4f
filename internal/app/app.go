package app

import (
	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/controller"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/pkg/database"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"
	"ai_tutor_backend/pkg/security"
	"ai_tutor_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
}

type repositories struct {
	profile  *repository.ProfileRepository
	path     *repository.PathRepository
	resource *repository.ResourceRepository
	quiz     *repository.QuizRepository
	pretest  *repository.PretestRepository
}

type services struct {
	gateway      *service.GatewayService
	evaluator    *service.EvaluatorService
	content      *service.ContentService
	path         *service.PathService
	quiz         *service.QuizService
	orchestrator *service.OrchestratorService
	analytics    *service.AnalyticsService
}

type controllers struct {
	learner   *controller.LearnerController
	quiz      *controller.QuizController
	resource  *controller.ResourceController
	analytics *controller.AnalyticsController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		profile:  repository.NewProfileRepository(db),
		path:     repository.NewPathRepository(db),
		resource: repository.NewResourceRepository(db, rdb),
		quiz:     repository.NewQuizRepository(db),
		pretest:  repository.NewPretestRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.gateway = service.NewGatewayService(cfg.AI)
	s.evaluator = service.NewEvaluatorService(s.gateway)
	s.content = service.NewContentService(s.gateway, repos.resource, cfg.Pipeline)
	s.path = service.NewPathService(s.gateway, s.content, repos.resource, repos.path, cfg.Pipeline)
	s.quiz = service.NewQuizService(s.gateway, s.evaluator, repos.quiz, repos.pretest, repos.profile, repos.resource, cfg.Pipeline)
	s.orchestrator = service.NewOrchestratorService(
		repos.profile,
		repos.path,
		repos.resource,
		repos.quiz,
		s.path,
		s.content,
		s.evaluator,
		cfg.Pipeline,
	)
	s.analytics = service.NewAnalyticsService(repos.profile, repos.path, repos.quiz, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client, cfg *config.Config) *controllers {
	return &controllers{
		learner:   controller.NewLearnerController(s.orchestrator, s.quiz),
		quiz:      controller.NewQuizController(s.orchestrator, s.quiz),
		resource:  controller.NewResourceController(s.content, s.quiz),
		analytics: controller.NewAnalyticsController(s.analytics),
		health:    controller.NewHealthController(db, rdb, s.gateway, cfg.AI.Model),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The cache is optional; every read path falls through to MySQL.
		logger.Log.Warn("Redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb, cfg)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ai-tutor", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

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
