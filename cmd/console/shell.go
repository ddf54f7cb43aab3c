package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-console/internal/console"
	"github.com/rxtech-lab/argo-console/internal/feed"
	applog "github.com/rxtech-lab/argo-console/internal/log"
)

const helpText = `Commands:
  help            show this help
  status          log uptime and quote count to the console log file
  prompt <text>   change the prompt
  quit            stop streaming and exit
`

// warnMovePercent is the absolute quote move that is logged as a warning.
var warnMovePercent = decimal.NewFromFloat(0.5)

// shell reads commands at the prompt while quotes stream above it.
type shell struct {
	coordinator *console.Coordinator
	stdout      io.Writer
	feed        *feed.Feed
	account     string
	logger      *zap.Logger
	started     time.Time
	quotes      atomic.Int64
}

func newShell(c *console.Coordinator, stdout io.Writer, f *feed.Feed, account string, log *zap.Logger) *shell {
	return &shell{
		coordinator: c,
		stdout:      stdout,
		feed:        f,
		account:     account,
		logger:      log,
		started:     time.Now(),
	}
}

// onQuote logs a quote to its symbol log file.
func (s *shell) onQuote(q feed.Quote) {
	s.quotes.Add(1)

	opts := console.Options{
		Source:  optional.Some("Feed"),
		Account: optional.Some(s.account),
		Symbol:  optional.Some(q.Symbol),
	}

	if q.ChangePercent.Abs().GreaterThanOrEqual(warnMovePercent) {
		applog.Warn("large move "+q.String(), opts)

		return
	}

	applog.Info(q.String(), opts)
}

// stream ticks the feed while the shell reads input. Once the shell exits
// the feed is stopped and drained before the prompt line is cleared, so no
// quote redraws the prompt after shutdown.
func (s *shell) stream(ctx context.Context, interval time.Duration, in io.Reader) error {
	if err := feed.CheckInterval(interval); err != nil {
		return err
	}

	feedCtx, stopFeed := context.WithCancel(ctx)
	defer stopFeed()

	feedDone := make(chan error, 1)

	go func() {
		feedDone <- s.feed.Run(feedCtx, interval, s.onQuote)
	}()

	err := s.run(ctx, in)

	stopFeed()

	feedErr := <-feedDone

	s.coordinator.ClearPrompt()

	if err != nil {
		return err
	}

	return feedErr
}

// run handles input lines until quit, EOF or ctx is done.
func (s *shell) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.coordinator.RestorePrompt()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		case line := <-lines:
			if quit := s.handle(line); quit {
				return nil
			}
		}
	}
}

// handle executes one command line and reports whether the shell should exit.
func (s *shell) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		s.coordinator.RestorePrompt()

		return false
	}

	switch fields[0] {
	case "help":
		s.coordinator.ClearPrompt()
		_, _ = io.WriteString(s.stdout, helpText)
		s.coordinator.RestorePrompt()
	case "status":
		applog.Info(fmt.Sprintf("uptime=%s quotes=%d symbols=%s",
			time.Since(s.started).Round(time.Second), s.quotes.Load(), strings.Join(s.feed.Symbols(), ",")),
			console.Options{Source: optional.Some("Console"), LogToFile: true})
	case "prompt":
		if len(fields) < 2 {
			applog.Warn("usage: prompt <text>")

			break
		}

		s.coordinator.SetPrompt(strings.Join(fields[1:], " ") + " ")
		s.coordinator.RestorePrompt()
	case "quit", "exit":
		s.logger.Info("shutting down", zap.Int64("quotes", s.quotes.Load()))

		return true
	default:
		applog.Warn(fmt.Sprintf("unknown command %q, type help", fields[0]))
	}

	return false
}
