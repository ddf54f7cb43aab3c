package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Configuration errors (100-199)
	ErrCodeInvalidConfiguration ErrorCode = 100
	ErrCodeConfigReadFailed     ErrorCode = 101
	ErrCodeConfigParseFailed    ErrorCode = 102
	ErrCodeInvalidTimezone      ErrorCode = 103
	ErrCodeInvalidColorMode     ErrorCode = 104
	ErrCodeInvalidLogLevel      ErrorCode = 105

	// Filesystem errors (200-299)
	ErrCodeLogDirCreateFailed  ErrorCode = 200
	ErrCodeLogFileOpenFailed   ErrorCode = 201
	ErrCodeLogFileAppendFailed ErrorCode = 202

	// Feed errors (300-399)
	ErrCodeInvalidFeedInterval ErrorCode = 300
)
