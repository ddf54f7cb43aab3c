// Package console coordinates every terminal write of the process with an
// interactive prompt.
//
// A Coordinator owns the current prompt text. Each call to Log runs one log
// transaction under a single mutex:
//
//	erase line -> compose -> write to stdout -> persist to file -> redraw prompt
//
// so that log lines emitted from independent goroutines never interleave and
// never leave a half-drawn prompt on screen. Persistence failures are reported
// on stdout through a fallback writer and are never returned to the caller.
package console

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"
	// Bundled zone database so DefaultTimezone resolves on hosts without one.
	_ "time/tzdata"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/moznion/go-optional"
	"github.com/muesli/termenv"
)

// LogType selects the terminal color of a log line.
type LogType string

const (
	LogTypePlain LogType = "plain"
	LogTypeWarn  LogType = "warn"
	LogTypeError LogType = "error"
)

// ColorMode controls whether terminal lines are colorized.
type ColorMode string

const (
	// ColorAuto lets the renderer detect the capabilities of Stdout.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	// DefaultLogDir is the directory log files are written to.
	DefaultLogDir = "logs"
	// DefaultTimezone is the civil timezone used for timestamps and file dates.
	DefaultTimezone = "America/New_York"
	// DefaultRoutingKey names the log file when neither symbol nor source is given.
	DefaultRoutingKey = "system"
)

// Options carries the optional metadata of a single log call.
type Options struct {
	// Type selects the terminal color. The zero value is plain.
	Type LogType
	// Source is rendered as a bracketed tag and names the generic log file.
	Source optional.Option[string]
	// Account is rendered as a bracketed tag.
	Account optional.Option[string]
	// Symbol is rendered as a bracketed tag and routes the line to the symbol log file.
	Symbol optional.Option[string]
	// LogToFile persists the line to the source log file when no symbol is set.
	LogToFile bool
}

// Config configures a Coordinator. Zero values fall back to defaults.
type Config struct {
	// Stdout receives every terminal write. Defaults to os.Stdout.
	Stdout io.Writer
	// LogDir is the directory holding the log files. Defaults to DefaultLogDir.
	LogDir string
	// Location is the civil timezone of timestamps. Defaults to DefaultTimezone.
	Location *time.Location
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// Color controls colorization of terminal lines. Defaults to ColorAuto.
	Color ColorMode
}

// Coordinator is the sole owner of the terminal cursor and the current prompt.
type Coordinator struct {
	mu       sync.Mutex
	prompt   string
	stdout   io.Writer
	logDir   string
	location *time.Location
	clock    func() time.Time
	warn     lipgloss.Style
	err      lipgloss.Style
	fallback *fallbackWriter
}

var (
	defaultOnce        sync.Once
	defaultCoordinator *Coordinator
)

// Default returns the process-wide Coordinator bound to os.Stdout.
// It is created on first use and reused afterwards.
func Default() *Coordinator {
	defaultOnce.Do(func() {
		defaultCoordinator = NewCoordinator(Config{})
	})

	return defaultCoordinator
}

// NewCoordinator creates a Coordinator from the given configuration.
func NewCoordinator(cfg Config) *Coordinator {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	logDir := cfg.LogDir
	if logDir == "" {
		logDir = DefaultLogDir
	}

	location := cfg.Location
	if location == nil {
		location = defaultLocation()
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	renderer := lipgloss.NewRenderer(stdout)

	switch cfg.Color {
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	case ColorAuto, "":
	}

	base := renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &Coordinator{
		mu:       sync.Mutex{},
		prompt:   "",
		stdout:   stdout,
		logDir:   logDir,
		location: location,
		clock:    clock,
		warn:     base.Foreground(lipgloss.Color("3")),
		err:      base.Foreground(lipgloss.Color("1")),
		fallback: newFallbackWriter(stdout),
	}
}

func defaultLocation() *time.Location {
	location, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}

	return location
}

// SetPrompt stores text as the current prompt. It performs no I/O.
func (c *Coordinator) SetPrompt(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prompt = text
}

// Prompt returns the current prompt text.
func (c *Coordinator) Prompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.prompt
}

// LogDir returns the directory log files are written to.
func (c *Coordinator) LogDir() string {
	return c.logDir
}

// Log writes message to the terminal around the current prompt and persists a
// plain-text copy when the options route it to a file. When several Options
// are given, later non-empty fields override earlier ones.
func (c *Coordinator) Log(message string, opts ...Options) {
	o := mergeOptions(opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock().In(c.location)
	plain := composeLine(formatTimestamp(now), o, message)

	c.write(ansi.EraseEntireLine + "\r" + c.colorize(o.Type, plain) + "\n")

	if route, ok := routeFor(o); ok {
		if err := appendLine(c.logDir, route, now, ansi.Strip(plain)); err != nil {
			c.fallback.report(err)
		}
	}

	c.write(c.prompt)
}

// ClearPrompt erases the current terminal line and moves the cursor to column 0.
func (c *Coordinator) ClearPrompt() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.write(ansi.EraseEntireLine + "\r")
}

// RestorePrompt writes the stored prompt verbatim.
func (c *Coordinator) RestorePrompt() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.write(c.prompt)
}

// write must be called with c.mu held. Terminal writes are assumed to succeed.
func (c *Coordinator) write(s string) {
	if s == "" {
		return
	}

	_, _ = io.WriteString(c.stdout, s)
}

func (c *Coordinator) colorize(t LogType, line string) string {
	var style lipgloss.Style

	switch t {
	case LogTypeError:
		style = c.err
	case LogTypeWarn:
		style = c.warn
	case LogTypePlain, "":
		return line
	default:
		return line
	}

	// Rendered line by line so multi-line messages are not padded to a block.
	lines := strings.Split(line, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}

	return strings.Join(lines, "\n")
}

func mergeOptions(opts []Options) Options {
	var merged Options

	for _, o := range opts {
		if o.Type != "" {
			merged.Type = o.Type
		}

		if o.Source.IsSome() {
			merged.Source = o.Source
		}

		if o.Account.IsSome() {
			merged.Account = o.Account
		}

		if o.Symbol.IsSome() {
			merged.Symbol = o.Symbol
		}

		if o.LogToFile {
			merged.LogToFile = true
		}
	}

	return merged
}
