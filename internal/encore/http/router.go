package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/encore/internal/encore/metrics"
	"github.com/aussiebroadwan/encore/internal/encore/service"
	"github.com/aussiebroadwan/encore/internal/encore/store"
	"github.com/aussiebroadwan/encore/pkg/httpx"
	"github.com/aussiebroadwan/encore/pkg/jwtx"
	"github.com/aussiebroadwan/encore/pkg/slogx"

	_ "github.com/aussiebroadwan/encore/api/encore" // Swagger docs
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	tokens       *jwtx.Issuer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	MFAService     *service.MFAService
	ConcertService *service.ConcertService
	FilterService  service.FilterService

	// RequirePartialToken makes the second login step demand the partial
	// token issued by the password step.
	RequirePartialToken bool

	// Limits sets the rate limit buckets per endpoint class.
	Limits httpx.Limits

	// Metrics, when set, observes every request and serves /metrics from
	// Gatherer.
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
}

func NewRouter(
	tokens *jwtx.Issuer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:                 http.NewServeMux(),
		tokens:              tokens,
		buildVersion:        buildVersion,
		startTime:           time.Now(),
		store:               st,
		logger:              logger,
		RequirePartialToken: true,
		Limits:              httpx.DefaultLimits(),
	}
}

func (r *Router) rejectHooks() []httpx.RejectHook {
	if r.Metrics == nil {
		return nil
	}
	return []httpx.RejectHook{r.Metrics.ObserveRateLimited}
}

func (r *Router) byIP(l httpx.Limit) httpx.Middleware {
	return httpx.RateLimitByIP(l, r.rejectHooks()...)
}

func (r *Router) byUser(l httpx.Limit) httpx.Middleware {
	return httpx.RateLimitByUser(l, r.rejectHooks()...)
}

func (r *Router) ApplyRoutes() {
	var observers []slogx.Observer
	if r.Metrics != nil {
		observers = append(observers, r.Metrics.ObserveHTTP)
	}
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger, observers...),
	}

	r.registerAuth()
	r.registerMFA()
	r.registerConcerts()
	r.registerFilters()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Encore Concert Service API
//	@version		0.1.0
//	@description	Concert listings with filtering, analytics and bulk editing, behind password
//	@description	login with optional TOTP two-factor authentication.
//	@description
//	@description				Accounts with two-factor authentication log in in two steps: the password step
//	@description				returns a short lived partial token which is exchanged, together with a TOTP code,
//	@description				for a full token. Partial tokens are refused by every protected endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/encore
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:         r.AuthService,
		RequirePartialToken: r.RequirePartialToken,
	}

	// Credential endpoints - strict rate limit by IP (brute force prevention)
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			r.byIP(r.Limits.Strict),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			r.byIP(r.Limits.Strict),
		),
	)
	r.Mux.Handle("POST /api/auth/2fa/login",
		httpx.Chain(http.HandlerFunc(h.HandleTwoFactorLogin),
			r.byIP(r.Limits.Strict),
		),
	)

	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.tokens),
			r.byUser(r.Limits.Lenient),
		),
	)
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	// POST /2fa/setup - moderate rate limit by user
	r.Mux.Handle("POST /api/auth/2fa/setup",
		httpx.Chain(http.HandlerFunc(h.HandleSetup),
			httpx.AuthnMiddleware(r.tokens),
			r.byUser(r.Limits.Moderate),
		),
	)

	// POST /2fa/verify - strict rate limit by user (TOTP brute force)
	r.Mux.Handle("POST /api/auth/2fa/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerify),
			httpx.AuthnMiddleware(r.tokens),
			r.byUser(r.Limits.Strict),
		),
	)

	r.Mux.Handle("GET /api/auth/2fa/qrcode",
		httpx.Chain(http.HandlerFunc(h.HandleQRCode),
			httpx.AuthnMiddleware(r.tokens),
			r.byUser(r.Limits.Moderate),
		),
	)

	r.Mux.Handle("POST /api/auth/2fa/disable",
		httpx.Chain(http.HandlerFunc(h.HandleDisable),
			httpx.AuthnMiddleware(r.tokens),
			r.byUser(r.Limits.Strict),
		),
	)
}

func (r *Router) registerConcerts() {
	h := &ConcertsHandler{ConcertService: r.ConcertService}

	public := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, r.byIP(r.Limits.Public))
	}
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.tokens),
			r.byUser(r.Limits.Moderate),
		)
	}

	r.Mux.Handle("GET /api/concerts", public(h.HandleList))
	r.Mux.Handle("GET /api/concerts/analytics", public(h.HandleAnalytics))
	r.Mux.Handle("GET /api/concerts/statistics", public(h.HandleStatistics))
	r.Mux.Handle("GET /api/concerts/{id}", public(h.HandleGet))

	r.Mux.Handle("POST /api/concerts", secured(h.HandleCreate))
	r.Mux.Handle("POST /api/concerts/bulk", secured(h.HandleBulk))
	r.Mux.Handle("PUT /api/concerts/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/concerts/{id}", secured(h.HandleDelete))
}

func (r *Router) registerFilters() {
	h := &FiltersHandler{FilterService: r.FilterService}

	for pattern, fn := range map[string]http.HandlerFunc{
		"GET /api/filters":                  h.HandleOptions,
		"GET /api/filters/genres":           h.HandleGenres,
		"GET /api/filters/orderBy":          h.HandleOrderBy,
		"GET /api/filters/countries":        h.HandleCountries,
		"GET /api/filters/cities":           h.HandleCities,
		"GET /api/filters/cities/{country}": h.HandleCitiesOf,
	} {
		r.Mux.Handle(pattern, httpx.Chain(fn, r.byIP(r.Limits.Public)))
	}
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			r.byIP(r.Limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.tokens),
			r.byIP(r.Limits.Lenient),
		),
	)

	if r.Gatherer != nil {
		r.Mux.Handle("GET /metrics", metrics.Handler(r.Gatherer))
	}
}
