package observability

import "go.uber.org/zap"

// Re-exported zap field constructors so callers outside the HTTP layer don't
// need a direct zap import for structured fields.
var (
	String = zap.String
	Int    = zap.Int
	Bool   = zap.Bool
	Error  = zap.Error
)
