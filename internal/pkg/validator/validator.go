package validator

// Validator validates request and domain structs.
type Validator interface {
	// Validate returns nil when data passes, or an error describing the
	// failed fields.
	Validate(data any) error
}
