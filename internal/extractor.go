package internal

import "strings"

// ExtractorSource extracts a value from the request context.
// Returns the value and true if found, or ("", false) if not present.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first non-empty value.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Header(name)
		return v, v != ""
	}
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Query(name)
		return v, v != ""
	}
}

// FromParam returns a source that reads from a URL parameter.
func FromParam(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Param(name)
		return v, v != ""
	}
}

// FromBearerToken returns a source that reads a Bearer token from the Authorization header.
// The "Bearer " prefix is matched case-insensitively.
func FromBearerToken() ExtractorSource {
	return func(c Context) (string, bool) {
		auth := c.Header("Authorization")
		if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
			return "", false
		}
		token := auth[7:]
		return token, token != ""
	}
}
