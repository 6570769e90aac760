package middlewares

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"

	"github.com/dmitrymomot/mailbatch/internal"
)

// DefaultTokenQueryParam is the query parameter carrying the shared secret.
const DefaultTokenQueryParam = "token"

// UnauthorizedMessage is the message returned for any rejected token.
const UnauthorizedMessage = "Unauthorized"

// TokenConfig configures the token gate.
type TokenConfig struct {
	Extractor    internal.Extractor
	extractorSet bool
}

// TokenOption configures TokenConfig.
type TokenOption func(*TokenConfig)

// WithTokenExtractor sets a custom token extractor chain.
//
// Example (also accept "Authorization: Bearer <secret>"):
//
//	middlewares.Token(secret, middlewares.WithTokenExtractor(
//	    mailbatch.NewExtractor(mailbatch.FromQuery("token"), mailbatch.FromBearerToken()),
//	))
func WithTokenExtractor(ext internal.Extractor) TokenOption {
	return func(cfg *TokenConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// Token returns middleware that admits a request only when it carries the
// shared secret (by default in the "token" query parameter). A missing and a
// wrong token are indistinguishable to the caller: both yield
// {"status":401,"message":"Unauthorized"} and the handler never runs.
//
// Token panics if secret is empty, so a misconfigured process fails at startup.
func Token(secret string, opts ...TokenOption) internal.Middleware {
	if secret == "" {
		panic("middlewares.Token: secret must not be empty")
	}

	cfg := &TokenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(internal.FromQuery(DefaultTokenQueryParam))
	}

	// Digests always have equal length, unlike the raw tokens.
	want := sha256.Sum256([]byte(secret))

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			token, ok := cfg.Extractor.Extract(c)
			got := sha256.Sum256([]byte(token))
			if !ok || subtle.ConstantTimeCompare(got[:], want[:]) != 1 {
				c.LogWarn("unauthorized request",
					slog.String("path", c.Request().URL.Path),
					slog.Bool("token_present", ok),
				)
				return internal.ErrUnauthorized(UnauthorizedMessage)
			}

			return next(c)
		}
	}
}
