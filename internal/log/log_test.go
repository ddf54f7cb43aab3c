package log

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rxtech-lab/argo-console/internal/console"
	"github.com/rxtech-lab/argo-console/mocks"
)

type LogTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	backend *mocks.MockBackend
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (s *LogTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.backend = mocks.NewMockBackend(s.ctrl)
	SetBackend(s.backend)
}

func (s *LogTestSuite) TearDownTest() {
	ResetBackend()
	s.ctrl.Finish()
}

func (s *LogTestSuite) TestLevelsSetType() {
	gomock.InOrder(
		s.backend.EXPECT().Log("e", console.Options{Type: console.LogTypeError}),
		s.backend.EXPECT().Log("w", console.Options{Type: console.LogTypeWarn}),
		s.backend.EXPECT().Log("i", console.Options{Type: console.LogTypePlain}),
		s.backend.EXPECT().Log("d", console.Options{Type: console.LogTypePlain}),
	)

	Error("e")
	Warn("w")
	Info("i")
	Debug("d")
}

func (s *LogTestSuite) TestOptionsForwarded() {
	opts := console.Options{Symbol: optional.Some("AAPL"), LogToFile: true}
	s.backend.EXPECT().Log("fill", opts, console.Options{Type: console.LogTypeWarn})

	Warn("fill", opts)
}

func (s *LogTestSuite) TestLevelOverridesCallerType() {
	s.backend.EXPECT().
		Log("boom", gomock.Any(), gomock.Any()).
		Do(func(message string, opts ...console.Options) {
			s.Equal(console.LogTypeError, opts[len(opts)-1].Type)
		})

	Error("boom", console.Options{Type: console.LogTypeWarn})
}

func (s *LogTestSuite) TestCurrentBackend() {
	s.Same(s.backend, CurrentBackend())

	ResetBackend()
	s.Same(console.Default(), CurrentBackend())

	SetBackend(s.backend)
	s.Same(s.backend, CurrentBackend())
}
