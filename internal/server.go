package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
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

	"github.com/2beens/workoutdelivery/internal/civil"
	"github.com/2beens/workoutdelivery/internal/config"
	"github.com/2beens/workoutdelivery/internal/db"
	"github.com/2beens/workoutdelivery/internal/delivery"
	"github.com/2beens/workoutdelivery/internal/distribution"
	"github.com/2beens/workoutdelivery/internal/middleware"
	"github.com/2beens/workoutdelivery/internal/replies"
	"github.com/2beens/workoutdelivery/internal/schedule"
	"github.com/2beens/workoutdelivery/internal/telemetry/metrics"
	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"
	"github.com/2beens/workoutdelivery/internal/users"
	"github.com/2beens/workoutdelivery/internal/workouts"
	"github.com/2beens/workoutdelivery/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter
	scheduler   *distribution.Scheduler

	authMiddleware      *middleware.AuthMiddlewareHandler
	scheduleHandler     *schedule.Handler
	distributionHandler *distribution.Handler
	repliesHandler      *replies.Handler

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombOn, "workouts-backend")
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         secrets.PostgresUser,
		DBPassword:     secrets.PostgresPassword,
		TimeZone:       cfg.CivilTimezone,
		MaxConns:       int32(cfg.DistributionWorkers) + 4,
		TracingEnabled: secrets.HoneycombOn,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("workouts", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})
	if secrets.HoneycombOn {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	clock, err := civil.NewClock(cfg.Location())
	if err != nil {
		return nil, fmt.Errorf("civil clock: %w", err)
	}
	resolver := civil.NewResolver(clock)

	workoutsRepo := workouts.NewRepo(dbPool)
	usersDirectory := users.NewDirectory(users.NewRepo(dbPool), cfg.PhoneCacheSizeMB)
	gateway := delivery.NewGateway(
		newSender(cfg, secrets),
		delivery.NewAuditRepo(dbPool),
		metricsManager,
	)

	runner := distribution.NewRunner(distribution.RunnerParams{
		Users:               usersDirectory,
		Store:               workoutsRepo,
		Gateway:             gateway,
		Clock:               clock,
		Resolver:            resolver,
		Metrics:             metricsManager,
		Workers:             cfg.DistributionWorkers,
		ApprovalBacklogDays: cfg.ApprovalBacklogDays,
	})
	scheduler, err := distribution.NewScheduler(cfg.DistributionCron, cfg.Location(), runner, config.DefaultRunTimeout)
	if err != nil {
		return nil, err
	}

	processor := replies.NewProcessor(
		usersDirectory,
		workoutsRepo,
		gateway,
		clock,
		metricsManager,
		cfg.CompletionPoints,
	)

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		scheduler:   scheduler,
		versionInfo: params.VersionInfo,

		authMiddleware:      middleware.NewAuthMiddlewareHandler(secrets.AdminTokenHash, secrets.WebhookSecret),
		scheduleHandler:     schedule.NewHandler(workoutsRepo, schedule.NewPlanner(resolver), clock),
		distributionHandler: distribution.NewHandler(runner),
		repliesHandler: replies.NewHandler(
			replies.NewDeduplicator(rdb, cfg.MessageDedupTTL()),
			processor,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

type deliverySender interface {
	CheckConfigured() error
	Send(ctx context.Context, phone, text string) (*delivery.SendResult, error)
}

func newSender(cfg *config.Config, secrets *config.Secrets) deliverySender {
	if cfg.DeliveryDryRun {
		log.Warnln("delivery dry run enabled, messages will not be sent")
		return delivery.DryRunSender{}
	}

	sender := delivery.NewHTTPSender(delivery.HTTPSenderParams{
		BaseURL:     cfg.DeliveryBaseURL,
		Token:       secrets.DeliveryToken,
		ClientToken: secrets.DeliveryClient,
		Timeout:     cfg.DeliveryTimeout(),
	})
	if err := sender.CheckConfigured(); err != nil {
		// runs will fail until configured, the rest of the service still works
		log.Errorf("delivery provider: %s", err)
	}
	return sender
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/status", s.handleStatus).Methods("GET")

	scheduleRouter := r.PathPrefix("/schedule").Subrouter()
	scheduleRouter.HandleFunc("/{ownerId}", s.scheduleHandler.HandleDay).Methods("GET", "OPTIONS").Name("schedule-day")
	scheduleRouter.HandleFunc("/{ownerId}/week/{offset}", s.scheduleHandler.HandleWeek).Methods("GET", "OPTIONS").Name("schedule-week")
	// preflight is answered by cors, everything else needs the admin token
	scheduleRouter.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	scheduleRouter.Use(s.authMiddleware.AdminOnly())

	r.Handle(
		"/distribution/run",
		s.authMiddleware.AdminOnly()(http.HandlerFunc(s.distributionHandler.HandleRun)),
	).Methods("POST").Name("distribution-run")

	r.Handle(
		"/webhook/messages",
		s.authMiddleware.WebhookSecret()(
			middleware.RateLimit(s.rateLimiter, s.metricsManager, "webhook-messages", s.config.WebhookRateLimitPerMin)(
				http.HandlerFunc(s.repliesHandler.HandleInbound),
			),
		),
	).Methods("POST").Name("webhook-messages")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{
		"status":  "ok",
		"version": s.versionInfo,
	}, http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
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

	s.scheduler.Start()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// a running distribution still needs the db and redis
	s.scheduler.Stop(ctx)
	log.Debugln("distribution scheduler stopped")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")

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
