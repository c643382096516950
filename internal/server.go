package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/trainingadventure/internal/auth"
	"github.com/2beens/trainingadventure/internal/config"
	"github.com/2beens/trainingadventure/internal/db"
	"github.com/2beens/trainingadventure/internal/middleware"
	"github.com/2beens/trainingadventure/internal/telemetry/metrics"
	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/internal/training/plan"
	"github.com/2beens/trainingadventure/internal/training/progress"
	"github.com/2beens/trainingadventure/internal/training/workoutlog"
	"github.com/2beens/trainingadventure/internal/training/xp"
	"github.com/2beens/trainingadventure/pkg"
)

const (
	serviceName          = "training-backend"
	loginRateLimitPerMin = 15
	sessionCleanupPeriod = time.Hour
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	// domain
	catalog    *plan.Catalog
	levels     *xp.LevelTable
	ledger     *xp.Ledger
	logService *workoutlog.Service
	analyzer   *progress.Analyzer

	// auth, nil when disabled
	redisClient   *redis.Client
	loginChecker  *auth.LoginChecker
	authService   *auth.Service
	stopCleanup   context.CancelFunc
	writesLimiter middleware.RequestRateLimiter

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

type stores struct {
	logRepo   workoutlog.Repo
	xpRepo    xp.Repo
	dbPool    *pgxpool.Pool
	collector prometheus.Collector
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName)
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	st, err := openStores(ctx, cfg, params.HoneycombTracingEnabled)
	if err != nil {
		otelShutdown()
		return nil, err
	}

	promRegistry := metrics.SetupPrometheus(st.collector)
	metricsManager := metrics.NewManager("backend", "training", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	catalog := plan.DefaultCatalog()
	ledger := xp.NewLedger(st.xpRepo)
	logService := workoutlog.NewService(st.logRepo, ledger, catalog)

	s := &Server{
		versionInfo:    params.VersionInfo,
		config:         cfg,
		dbPool:         st.dbPool,
		catalog:        catalog,
		levels:         xp.DefaultLevelTable(),
		ledger:         ledger,
		logService:     logService,
		analyzer:       progress.NewAnalyzer(logService),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
		stopCleanup:    func() {},
	}

	if cfg.AuthEnabled {
		s.setupAuth(ctx, params)
	}

	return s, nil
}

// openStores picks the log and xp stores once, from the configured backend.
func openStores(ctx context.Context, cfg *config.Config, tracingEnabled bool) (*stores, error) {
	switch backend := cfg.StorageBackend(); backend {
	case config.StorageBackendPostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: tracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}

		// an unreachable db is not fatal, requests get a notice until it is back
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		} else if err := db.EnsureSchema(ctx, dbPool); err != nil {
			log.Errorf("ensure db schema: %s", err)
		}

		log.Infof("storage backend: postgres [%s:%s/%s]", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName)
		return &stores{
			logRepo: workoutlog.NewPsqlRepo(dbPool),
			xpRepo:  xp.NewPsqlRepo(dbPool),
			dbPool:  dbPool,
			collector: pgxpoolprometheus.NewCollector(
				dbPool,
				map[string]string{"db_name": cfg.PostgresDBName},
			),
		}, nil
	case config.StorageBackendCSV:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		log.Infof("storage backend: csv [%s]", cfg.DataDir)
		return &stores{
			logRepo: workoutlog.NewCSVRepo(cfg.DataDir),
			xpRepo:  xp.NewCSVRepo(cfg.DataDir),
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

func (s *Server) setupAuth(ctx context.Context, params NewServerParams) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(s.config.RedisHost, s.config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	s.redisClient = rdb
	s.loginChecker = auth.NewLoginChecker(auth.DefaultTTL, rdb)
	s.authService = auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)

	if s.config.WriteRateLimitPerMinute > 0 {
		s.writesLimiter = redis_rate.NewLimiter(rdb)
	}

	cleanupCtx, cancel := context.WithCancel(context.Background())
	s.stopCleanup = cancel
	go s.authService.RunCleanup(cleanupCtx, sessionCleanupPeriod)
}

// limitWrites applies the shared write rate limit, when one is configured.
func (s *Server) limitWrites(handlerFunc http.HandlerFunc) http.Handler {
	if s.writesLimiter == nil {
		return handlerFunc
	}
	return middleware.RateLimit(
		s.writesLimiter,
		"writes",
		s.config.WriteRateLimitPerMinute,
		s.metricsManager,
	)(handlerFunc)
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("training-router"))

	// CORS preflight for every path
	r.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Name("preflight")

	r.HandleFunc("/", s.handleRoot).Methods("GET").Name("root")
	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")

	planHandler := plan.NewHandler(s.catalog, s.ledger, s.metricsManager)
	r.HandleFunc("/plan/days", planHandler.HandleDays).Methods("GET").Name("plan-days")
	r.HandleFunc("/plan/days/{day}", planHandler.HandleDay).Methods("GET").Name("plan-day")
	r.HandleFunc("/plan/template.csv", planHandler.HandleTemplate).Methods("GET").Name("plan-template")
	r.Handle("/plan/checkoff", s.limitWrites(planHandler.HandleCheckOff)).Methods("POST").Name("plan-checkoff")

	logHandler := workoutlog.NewHandler(s.logService, s.metricsManager)
	r.Handle("/log/sets", s.limitWrites(logHandler.HandleSaveSets)).Methods("POST").Name("log-save-sets")
	r.HandleFunc("/log/preview", logHandler.HandlePreview).Methods("POST").Name("log-preview")
	r.HandleFunc("/log/recent", logHandler.HandleRecent).Methods("GET").Name("log-recent")
	r.Handle("/log/last", s.limitWrites(logHandler.HandleUndoLast)).Methods("DELETE").Name("log-undo-last")
	r.HandleFunc("/log/export.csv", logHandler.HandleExportCSV).Methods("GET").Name("log-export")

	xpHandler := xp.NewHandler(s.ledger, s.levels)
	r.HandleFunc("/xp/level", xpHandler.HandleLevel).Methods("GET").Name("xp-level")
	r.HandleFunc("/xp/entries", xpHandler.HandleEntries).Methods("GET").Name("xp-entries")

	progressHandler := progress.NewHandler(s.analyzer)
	r.HandleFunc("/progress/exercises", progressHandler.HandleExercises).Methods("GET").Name("progress-exercises")
	r.HandleFunc("/progress/series", progressHandler.HandleSeries).Methods("GET").Name("progress-series")
	r.HandleFunc("/progress/best", progressHandler.HandleBestSets).Methods("GET").Name("progress-best")

	if s.authService != nil {
		authHandler := auth.NewHandler(s.authService)
		loginSubrouter := r.PathPrefix("/a").Subrouter()
		loginSubrouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST").Name("login")
		loginSubrouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("GET").Name("logout")

		// rate limit the /login and /logout endpoints to prevent abuse
		loginSubrouter.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"login",
			loginRateLimitPerMin,
			s.metricsManager,
		))
	}

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	if s.loginChecker != nil {
		r.Use(middleware.NewAuthMiddlewareHandler(s.loginChecker).AuthCheck())
	}
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, let's train ;)")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(s.routerSetup(), serviceName),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)
	s.stopCleanup()

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
