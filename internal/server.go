package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bkovacic/liftlog/internal/bodygroups"
	"github.com/bkovacic/liftlog/internal/config"
	"github.com/bkovacic/liftlog/internal/exercises"
	"github.com/bkovacic/liftlog/internal/middleware"
	"github.com/bkovacic/liftlog/internal/notion"
	"github.com/bkovacic/liftlog/internal/schedule"
	"github.com/bkovacic/liftlog/internal/telemetry/metrics"
	"github.com/bkovacic/liftlog/internal/telemetry/tracing"
	"github.com/bkovacic/liftlog/internal/templates"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	notionStore *notion.Client
	redisClient *redis.Client

	bodyGroupsHandler *bodygroups.Handler
	exercisesHandler  *exercises.Handler
	templatesHandler  *templates.Handler
	scheduleHandler   *schedule.Handler

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	NotionAPIKey            string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(ctx context.Context, params NewServerParams) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("liftlog", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftlog-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	notionBaseURL := params.Config.NotionBaseURL
	if notionBaseURL == "" {
		notionBaseURL = notion.DefaultBaseURL
	}
	notionStore := notion.NewClient(notionBaseURL, params.NotionAPIKey, tracedHttpClient)

	bodyGroupsRepo := bodygroups.NewRepo(notionStore, params.Config.BodyGroupsDB)
	exercisesRepo := exercises.NewRepo(notionStore, params.Config.ExercisesDB, bodyGroupsRepo)

	templatesRepo, err := templatesRepoForSource(params.Config, notionStore)
	if err != nil {
		return nil, err
	}

	scheduleRepo := schedule.NewRepo(
		notionStore,
		params.Config.WeeklyWorkoutDB,
		params.Config.DailyWorkoutDB,
	)
	scheduleService := schedule.NewService(
		scheduleRepo,
		templatesRepo,
		exercisesRepo,
		metricsManager,
	)

	return &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		notionStore: notionStore,
		redisClient: rdb,

		bodyGroupsHandler: bodygroups.NewHandler(bodyGroupsRepo),
		exercisesHandler:  exercises.NewHandler(exercisesRepo),
		templatesHandler:  templates.NewHandler(templatesRepo),
		scheduleHandler:   schedule.NewHandler(scheduleRepo, scheduleService),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func templatesRepoForSource(cfg *config.Config, notionStore *notion.Client) (templates.Repo, error) {
	switch cfg.TemplatesSource {
	case "static", "":
		return templates.NewStaticRepo(templates.DefaultTemplates()), nil
	case "store":
		return templates.NewStoreRepo(
			notionStore,
			cfg.TemplatesDB,
			cfg.TemplateExercisesDB,
			cfg.ExercisesDB,
		), nil
	default:
		return nil, fmt.Errorf("unknown templates source: %s", cfg.TemplatesSource)
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/body-groups", s.bodyGroupsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-body-groups")

	r.HandleFunc("/exercises", s.exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/by-body-groups", s.exercisesHandler.HandleListByBodyGroups).Methods("POST", "OPTIONS").Name("exercises-by-body-groups")
	r.HandleFunc("/exercises/best", s.exercisesHandler.HandleBests).Methods("POST", "OPTIONS").Name("exercise-bests")
	r.HandleFunc("/exercises/update-best", s.exercisesHandler.HandleUpdateBest).Methods("POST", "OPTIONS").Name("update-exercise-best")

	r.HandleFunc("/templates", s.templatesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-templates")
	r.HandleFunc("/templates", s.templatesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-template")
	r.HandleFunc("/templates/body-groups", s.templatesHandler.HandleBodyGroups).Methods("GET", "OPTIONS").Name("template-body-groups")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	instantiateHandler := middleware.RateLimit(
		reqRateLimiter,
		"schedule-workout",
		s.config.InstantiateRateLimitAllowedPerMin,
		s.metricsManager,
	)(http.HandlerFunc(s.scheduleHandler.HandleInstantiate))

	r.HandleFunc("/workouts", s.scheduleHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.Handle("/workouts", instantiateHandler).Methods("POST", "OPTIONS").Name("schedule-workout")
	r.HandleFunc("/workouts/create", s.scheduleHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/update", s.scheduleHandler.HandleUpdate).Methods("POST", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/delete", s.scheduleHandler.HandleDelete).Methods("POST", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/move", s.scheduleHandler.HandleMove).Methods("POST", "OPTIONS").Name("move-workouts")

	r.HandleFunc("/daily-workouts", s.scheduleHandler.HandleListDailies).Methods("GET", "OPTIONS").Name("list-daily-workouts")
	r.HandleFunc("/daily-workouts/update", s.scheduleHandler.HandleUpdateDaily).Methods("POST", "OPTIONS").Name("update-daily-workout")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
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
