package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyquest_backend/internal/config"
	"studyquest_backend/internal/controller"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"
	"studyquest_backend/pkg/configwatcher"
	"studyquest_backend/pkg/logger"
	"studyquest_backend/pkg/monitoring"
	"studyquest_backend/pkg/security"
	"studyquest_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	ConfigPath      string
	Router          *gin.Engine
	Store           *repository.Store
	services        *services
	limiter         *security.Limiter
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	task       *repository.TaskRepository
	timetable  *repository.TimetableRepository
	shop       *repository.ShopRepository
	statistics *repository.StatisticsRepository
}

type services struct {
	hub         *service.NotificationHub
	progression *service.ProgressionService
	task        *service.TaskService
	shop        *service.ShopService
	timetable   *service.TimetableService
	dashboard   *service.DashboardService
	statistics  *service.StatisticsService
	timer       *service.FocusTimer
}

type controllers struct {
	health       *controller.HealthController
	profile      *controller.ProfileController
	dashboard    *controller.DashboardController
	task         *controller.TaskController
	timetable    *controller.TimetableController
	shop         *controller.ShopController
	timer        *controller.TimerController
	notification *controller.NotificationController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// applyConfig 配置文件变更后依次通知各组件
func (a *App) applyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(store *repository.Store) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(store),
		task:       repository.NewTaskRepository(store),
		timetable:  repository.NewTimetableRepository(store),
		shop:       repository.NewShopRepository(repository.DefaultCatalog()),
		statistics: repository.NewStatisticsRepository(store, repository.WeeklyStats(), repository.SubjectStats()),
	}
}

func (a *App) initServices(repos *repositories, store *repository.Store, cfg *config.Config) *services {
	s := &services{}

	s.hub = service.NewNotificationHub(0)
	s.progression = service.NewProgressionService(store, repos.user, s.hub)
	s.task = service.NewTaskService(store, repos.task, s.hub)
	s.shop = service.NewShopService(store, repos.user, repos.shop, s.hub)
	s.timetable = service.NewTimetableService(store, repos.timetable)
	s.dashboard = service.NewDashboardService(repos.user, s.task, cfg.Game)
	s.statistics = service.NewStatisticsService(repos.statistics)
	s.timer = service.NewFocusTimer(s.progression, timerDurations(cfg.Game))

	a.RegisterConfigCallback(func(c *config.Config) {
		s.dashboard.UpdateGameConfig(c.Game)
		s.timer.SetDurations(timerDurations(c.Game))
	})

	return s
}

func timerDurations(game config.GameConfig) service.TimerDurations {
	return service.TimerDurations{
		Work:  time.Duration(game.PomodoroWorkMinutes) * time.Minute,
		Break: time.Duration(game.PomodoroBreakMinutes) * time.Minute,
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		health:       controller.NewHealthController(s.hub),
		profile:      controller.NewProfileController(s.progression),
		dashboard:    controller.NewDashboardController(s.dashboard, s.statistics),
		task:         controller.NewTaskController(s.task),
		timetable:    controller.NewTimetableController(s.timetable),
		shop:         controller.NewShopController(s.shop),
		timer:        controller.NewTimerController(s.timer),
		notification: controller.NewNotificationController(s.hub),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.limiter = security.NewLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(a.limiter.Middleware())
	a.RegisterConfigCallback(func(c *config.Config) {
		a.limiter.SetLimit(c.RateLimit.MaxRequests, time.Duration(c.RateLimit.WindowMinutes)*time.Minute)
	})

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	app := newApp(cfg)
	app.ConfigPath = configPath

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("studyquest", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}
	return app
}

// newApp 组装依赖和路由，不初始化日志和追踪
func newApp(cfg *config.Config) *App {
	gin.SetMode(cfg.Server.Mode)

	store := repository.NewStore(repository.InitialState(time.Now().Format(util.DateFormat)))
	app := &App{
		Config: cfg,
		Store:  store,
	}

	repos := app.initRepositories(store)
	services := app.initServices(repos, store, cfg)
	app.services = services
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	go a.limiter.Run(bgCtx.Done())
	if a.ConfigPath != "" {
		go func() {
			if err := configwatcher.WatchConfig(bgCtx, a.ConfigPath, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	a.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}

// Shutdown 停止计时器并断开所有通知连接
func (a *App) Shutdown() {
	if a.services == nil {
		return
	}
	a.services.timer.Close()
	a.services.hub.Close()
}
