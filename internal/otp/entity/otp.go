package entity

// Record is the stored representation of an issued one-time password.
type Record struct {
	// Code is the plain code the user must echo back.
	Code string `json:"otp"`
	// ExpiresAt is the expiry instant in unix milliseconds.
	ExpiresAt int64 `json:"expiresAt"`
}

// Key returns the storage key holding the Record for an identifier.
func Key(identifier string) string {
	return "otp:" + identifier
}

// AttemptsKey returns the storage key counting failed validations for an
// identifier.
func AttemptsKey(identifier string) string {
	return "otp:attempts:" + identifier
}
