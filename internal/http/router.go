package http

import (
	"log/slog"

	"github.com/geocoder89/volcanoes/internal/config"
	"github.com/geocoder89/volcanoes/internal/http/handlers"
	"github.com/geocoder89/volcanoes/internal/http/middlewares"
	"github.com/geocoder89/volcanoes/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "volcanoes-api"

type UserStore interface {
	handlers.UserStore
	middlewares.UserFinder
}

type TokenManager interface {
	handlers.TokenIssuer
	middlewares.TokenVerifier
}

// Deps are the collaborators the router wires into handlers. Prom and
// Gatherer are optional; without them no metrics are recorded or exposed.
type Deps struct {
	Users     UserStore
	Volcanoes handlers.VolcanoReader
	Tokens    TokenManager
	Ping      func() error
	Prom      *observability.Prom
	Gatherer  prometheus.Gatherer
}

func NewRouter(log *slog.Logger, cfg config.Config, deps Deps) *gin.Engine {
	if !cfg.IsDevelop() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware
	r.Use(middlewares.DevelopMode(cfg.IsDevelop()))
	r.Use(middlewares.Recovery(log))
	r.Use(middlewares.RequestID())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(middlewares.RequestLogger(log))
	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))

	// health
	health := handlers.NewHealthHandler(deps.Ping)
	r.GET("/", health.Root)
	r.GET("/healthz", health.Healthz)
	r.GET("/readyz", health.Readyz)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	r.GET("/docs", handlers.SwaggerUI)
	r.GET("/docs/openapi.yaml", handlers.OpenAPISpec)

	authMw := middlewares.NewAuthMiddleware(deps.Tokens, deps.Users)
	volcanoes := handlers.NewVolcanoesHandler(deps.Volcanoes)
	users := handlers.NewUsersHandler(deps.Users, deps.Tokens)
	me := handlers.NewMeHandler(cfg.StudentName, cfg.StudentNumber)

	r.GET("/countries", volcanoes.Countries)
	r.GET("/volcanoes", volcanoes.List)
	r.GET("/volcano/:id", authMw.Resolve(), volcanoes.Get)

	r.POST("/user/register", users.Register)
	r.POST("/user/login", users.Login)
	r.GET("/user/:email/profile", authMw.Resolve(), users.Profile)
	r.PUT("/user/:email/profile", authMw.Resolve(), users.UpdateProfile)

	r.GET("/me", me.Me)

	return r
}
