package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/mailbatch/internal"
)

// DefaultCORSMaxAge is the default preflight cache duration.
const DefaultCORSMaxAge = 12 * time.Hour

// DefaultCORSConfig is fully permissive: any origin (echoed back), any request
// header, credentials allowed.
var DefaultCORSConfig = CORSConfig{
	AllowOrigins:     []string{"*"},
	AllowMethods:     []string{http.MethodPost, http.MethodGet, http.MethodPatch, http.MethodOptions},
	AllowHeaders:     []string{"*"},
	AllowCredentials: true,
	MaxAge:           DefaultCORSMaxAge,
}

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOriginFunc, when set, replaces the AllowOrigins lookup entirely.
	AllowOriginFunc func(origin string) bool

	// AllowOrigins lists accepted origins; "*" accepts any.
	AllowOrigins  []string
	AllowMethods  []string
	AllowHeaders  []string
	ExposeHeaders []string

	// AllowCredentials makes the middleware echo the request origin instead of "*",
	// since browsers reject a wildcard origin on credentialed responses.
	AllowCredentials bool

	// MaxAge is how long a browser may cache a preflight answer. Zero omits the header.
	MaxAge time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the accepted origins. Empty entries are ignored, and
// an empty list keeps the default.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		clean := slices.DeleteFunc(slices.Clone(origins), func(o string) bool {
			return strings.TrimSpace(o) == ""
		})
		if len(clean) > 0 {
			cfg.AllowOrigins = clean
		}
	}
}

// WithAllowOriginFunc sets a dynamic origin validator.
func WithAllowOriginFunc(fn func(origin string) bool) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOriginFunc = fn
	}
}

// WithAllowMethods sets the methods announced on preflight.
func WithAllowMethods(methods ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowMethods = methods
	}
}

// WithAllowHeaders sets the request headers announced on preflight.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowHeaders = headers
	}
}

// WithExposeHeaders sets the response headers readable by the browser.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.ExposeHeaders = headers
	}
}

// WithAllowCredentials enables credentialed requests.
func WithAllowCredentials() CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowCredentials = true
	}
}

// WithoutCredentials disables credentials support, so a wildcard origin is sent as "*".
func WithoutCredentials() CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowCredentials = false
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(d time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = d
	}
}

// corsPolicy is CORSConfig with header values joined once at construction.
type corsPolicy struct {
	allowFunc   func(string) bool
	origins     []string
	wildcard    bool
	credentials bool
	methods     string
	headers     string
	expose      string
	maxAge      string
}

func newCORSPolicy(cfg CORSConfig) *corsPolicy {
	p := &corsPolicy{
		allowFunc:   cfg.AllowOriginFunc,
		origins:     cfg.AllowOrigins,
		wildcard:    slices.Contains(cfg.AllowOrigins, "*"),
		credentials: cfg.AllowCredentials,
		methods:     strings.Join(cfg.AllowMethods, ", "),
		headers:     strings.Join(cfg.AllowHeaders, ", "),
		expose:      strings.Join(cfg.ExposeHeaders, ", "),
	}
	if cfg.MaxAge > 0 {
		p.maxAge = strconv.Itoa(int(cfg.MaxAge.Seconds()))
	}
	return p
}

func (p *corsPolicy) allows(origin string) bool {
	switch {
	case p.allowFunc != nil:
		return p.allowFunc(origin)
	case p.wildcard:
		return true
	default:
		return slices.Contains(p.origins, origin)
	}
}

// decorate sets the headers shared by simple and preflight responses.
func (p *corsPolicy) decorate(h http.Header, origin string) {
	h.Add("Vary", "Origin")

	if p.credentials || !p.wildcard {
		h.Set("Access-Control-Allow-Origin", origin)
	} else {
		h.Set("Access-Control-Allow-Origin", "*")
	}
	if p.credentials {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
	if p.expose != "" {
		h.Set("Access-Control-Expose-Headers", p.expose)
	}
}

func (p *corsPolicy) preflight(h http.Header) {
	h.Add("Vary", "Access-Control-Request-Method")
	h.Add("Vary", "Access-Control-Request-Headers")
	h.Set("Access-Control-Allow-Methods", p.methods)
	h.Set("Access-Control-Allow-Headers", p.headers)
	if p.maxAge != "" {
		h.Set("Access-Control-Max-Age", p.maxAge)
	}
}

// CORS returns middleware for browser clients of the batch endpoint. It is
// registered globally so preflight requests are answered with 204 before
// routing, and error responses (401, 500) still carry the CORS headers.
// Requests without an Origin header and disallowed origins pass through
// untouched.
func CORS(opts ...CORSOption) internal.Middleware {
	cfg := DefaultCORSConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	policy := newCORSPolicy(cfg)

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")
			if origin == "" || !policy.allows(origin) {
				return next(c)
			}

			headers := c.Response().Header()
			policy.decorate(headers, origin)

			if c.Request().Method == http.MethodOptions {
				policy.preflight(headers)
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
