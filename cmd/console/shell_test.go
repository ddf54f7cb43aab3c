package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-console/internal/console"
	"github.com/rxtech-lab/argo-console/internal/feed"
	applog "github.com/rxtech-lab/argo-console/internal/log"
	"github.com/rxtech-lab/argo-console/internal/logger"
	"github.com/rxtech-lab/argo-console/pkg/errors"
)

type ShellTestSuite struct {
	suite.Suite
	tempDir     string
	stdout      *bytes.Buffer
	coordinator *console.Coordinator
	shell       *shell
}

func TestShellTestSuite(t *testing.T) {
	suite.Run(t, new(ShellTestSuite))
}

func (s *ShellTestSuite) SetupTest() {
	tempDir, err := os.MkdirTemp("", "console_shell_test_*")
	s.Require().NoError(err)
	s.tempDir = tempDir

	s.stdout = &bytes.Buffer{}
	s.coordinator = console.NewCoordinator(console.Config{
		Stdout: s.stdout,
		LogDir: tempDir,
		Clock:  func() time.Time { return time.Date(2026, 10, 14, 19, 4, 5, 0, time.UTC) },
		Color:  console.ColorNever,
	})
	s.coordinator.SetPrompt("> ")
	applog.SetBackend(s.coordinator)

	diagnostics, err := logger.NewConsoleLogger(s.coordinator, "info")
	s.Require().NoError(err)

	f := feed.New(1, []string{"AAPL"}, feed.DefaultConfig())
	s.shell = newShell(s.coordinator, s.stdout, f, "paper", diagnostics.Named("console"))
}

func (s *ShellTestSuite) TearDownTest() {
	applog.ResetBackend()

	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}
}

func (s *ShellTestSuite) TestOnQuote_RoutesToSymbolFile() {
	q := feed.Quote{
		Symbol:        "AAPL",
		Bid:           decimal.RequireFromString("100"),
		Ask:           decimal.RequireFromString("100.1"),
		Last:          decimal.RequireFromString("100.05"),
		Volume:        10,
		ChangePercent: decimal.RequireFromString("0.01"),
	}

	s.shell.onQuote(q)

	content, err := os.ReadFile(filepath.Join(s.tempDir, "AAPL-2026-10-14.log"))
	s.Require().NoError(err)
	s.Equal("[10/14/2026, 3:04:05 PM] [Feed] [paper] [AAPL] bid=100.00 ask=100.10 last=100.05 vol=10 chg=0.01%\n", string(content))
	s.Equal(int64(1), s.shell.quotes.Load())
}

func (s *ShellTestSuite) TestOnQuote_LargeMoveIsWarning() {
	q := feed.Quote{Symbol: "AAPL", ChangePercent: decimal.RequireFromString("-0.75")}

	s.shell.onQuote(q)

	s.Contains(s.stdout.String(), "[AAPL] large move ")
}

func (s *ShellTestSuite) TestHandle_Help() {
	quit := s.shell.handle("help")

	s.False(quit)
	s.Equal("\x1b[2K\r"+helpText+"> ", s.stdout.String())
}

func (s *ShellTestSuite) TestHandle_StatusWritesConsoleLog() {
	s.False(s.shell.handle("status"))

	s.Contains(s.stdout.String(), "[Console] uptime=")
	s.FileExists(filepath.Join(s.tempDir, "console-2026-10-14.log"))
}

func (s *ShellTestSuite) TestHandle_Prompt() {
	s.False(s.shell.handle("prompt argo>"))

	s.Equal("argo> ", s.coordinator.Prompt())
	s.True(strings.HasSuffix(s.stdout.String(), "argo> "))
}

func (s *ShellTestSuite) TestHandle_PromptWithoutText() {
	s.False(s.shell.handle("prompt"))

	s.Equal("> ", s.coordinator.Prompt())
	s.Contains(s.stdout.String(), "usage: prompt <text>")
}

func (s *ShellTestSuite) TestHandle_Unknown() {
	s.False(s.shell.handle("buy 10"))

	s.Contains(s.stdout.String(), `unknown command "buy", type help`)
}

func (s *ShellTestSuite) TestHandle_Empty() {
	s.False(s.shell.handle("   "))

	s.Equal("> ", s.stdout.String())
}

func (s *ShellTestSuite) TestRun_QuitStops() {
	err := s.shell.run(context.Background(), strings.NewReader("status\nquit\nhelp\n"))

	s.NoError(err)
	s.Contains(s.stdout.String(), "[console] shutting down quotes=0")
	s.NotContains(s.stdout.String(), "Commands:")
}

func (s *ShellTestSuite) TestRun_EOFStops() {
	err := s.shell.run(context.Background(), strings.NewReader("help\n"))

	s.NoError(err)
	s.Contains(s.stdout.String(), "Commands:")
}

func (s *ShellTestSuite) TestStream_RejectsNonPositiveInterval() {
	err := s.shell.stream(context.Background(), 0, strings.NewReader("quit\n"))

	s.Require().Error(err)
	s.True(errors.HasCode(err, errors.ErrCodeInvalidFeedInterval))
	s.Empty(s.stdout.String())
	s.NoFileExists(filepath.Join(s.tempDir, "AAPL-2026-10-14.log"))
}

func (s *ShellTestSuite) TestStream_ClearsPromptAfterFeedStops() {
	in, input := io.Pipe()
	defer input.Close()

	done := make(chan error, 1)

	go func() {
		done <- s.shell.stream(context.Background(), time.Millisecond, in)
	}()

	s.Eventually(func() bool {
		return s.shell.quotes.Load() >= 3
	}, time.Second, time.Millisecond)

	_, err := io.WriteString(input, "quit\n")
	s.Require().NoError(err)

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("stream did not return after quit")
	}

	output := s.stdout.String()
	s.True(strings.HasSuffix(output, "\x1b[2K\r"), "prompt line must be cleared last")

	quotes := s.shell.quotes.Load()
	time.Sleep(20 * time.Millisecond)
	s.Equal(quotes, s.shell.quotes.Load())
	s.Equal(output, s.stdout.String())
}
