// Package log is the leveled entry point used by call sites that do not hold
// a Coordinator. Each level forwards to the current Backend with the matching
// LogType; debug and info both render plain.
package log

import (
	"sync"

	"github.com/rxtech-lab/argo-console/internal/console"
)

// Backend receives every leveled log call.
type Backend interface {
	// Log emits message with the given options.
	Log(message string, opts ...console.Options)
}

var (
	mu      sync.RWMutex
	backend Backend
)

// SetBackend replaces the backend used by the package-level functions.
// A nil backend resets to the default coordinator.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()

	backend = b
}

// ResetBackend restores the default coordinator as backend.
func ResetBackend() {
	SetBackend(nil)
}

// CurrentBackend returns the backend the package-level functions write to.
func CurrentBackend() Backend {
	mu.RLock()
	defer mu.RUnlock()

	if backend == nil {
		return console.Default()
	}

	return backend
}

// Error logs message in the error color.
func Error(message string, opts ...console.Options) {
	emit(console.LogTypeError, message, opts)
}

// Warn logs message in the warn color.
func Warn(message string, opts ...console.Options) {
	emit(console.LogTypeWarn, message, opts)
}

// Info logs message without color.
func Info(message string, opts ...console.Options) {
	emit(console.LogTypePlain, message, opts)
}

// Debug logs message without color.
func Debug(message string, opts ...console.Options) {
	emit(console.LogTypePlain, message, opts)
}

func emit(t console.LogType, message string, opts []console.Options) {
	merged := make([]console.Options, 0, len(opts)+1)
	merged = append(merged, opts...)
	merged = append(merged, console.Options{Type: t})

	CurrentBackend().Log(message, merged...)
}
