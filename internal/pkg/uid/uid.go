// Package uid provides small ID generation helpers.
package uid

// StringID generates opaque string identifiers (correlation IDs and the like).
type StringID interface {
	Generate() string
}
