// Package feed produces simulated quotes for a set of symbols. Prices follow
// a geometric Brownian motion so consecutive quotes drift realistically.
package feed

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-console/pkg/errors"
)

// Quote is a single simulated top-of-book update.
type Quote struct {
	ID     string
	Symbol string
	Time   time.Time
	Bid    decimal.Decimal
	Ask    decimal.Decimal
	Last   decimal.Decimal
	Volume int64
	// ChangePercent is the move of Last against the previous quote of the symbol.
	ChangePercent decimal.Decimal
}

// String renders the quote for a log line.
func (q Quote) String() string {
	return fmt.Sprintf("bid=%s ask=%s last=%s vol=%d chg=%s%%",
		q.Bid.StringFixed(2), q.Ask.StringFixed(2), q.Last.StringFixed(2), q.Volume, q.ChangePercent.StringFixed(2))
}

// Config configures the simulated price process.
type Config struct {
	// InitialPrice is the starting price of every symbol, varied by ±20% per symbol.
	InitialPrice float64
	// Volatility is the standard deviation of a single step (0.002 = 0.2%).
	Volatility float64
	// SpreadBps is the bid/ask spread in basis points.
	SpreadBps float64
	// VolumeBase is the average volume per quote.
	VolumeBase float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		InitialPrice: 100.0,
		Volatility:   0.002,
		SpreadBps:    5,
		VolumeBase:   500,
	}
}

// Feed generates quotes. It is safe for concurrent use.
type Feed struct {
	mu      sync.Mutex
	rng     *rand.Rand
	config  Config
	symbols []string
	prices  map[string]float64
}

// New creates a Feed for symbols. Use a fixed seed for reproducible output.
func New(seed int64, symbols []string, config Config) *Feed {
	rng := rand.New(rand.NewSource(seed))
	prices := make(map[string]float64, len(symbols))

	for _, symbol := range symbols {
		prices[symbol] = config.InitialPrice * (0.8 + rng.Float64()*0.4)
	}

	return &Feed{
		mu:      sync.Mutex{},
		rng:     rng,
		config:  config,
		symbols: append([]string(nil), symbols...),
		prices:  prices,
	}
}

// Symbols returns the symbols of the feed in configuration order.
func (f *Feed) Symbols() []string {
	return append([]string(nil), f.symbols...)
}

// Tick returns one quote per symbol stamped with at.
func (f *Feed) Tick(at time.Time) []Quote {
	f.mu.Lock()
	defer f.mu.Unlock()

	quotes := make([]Quote, 0, len(f.symbols))
	for _, symbol := range f.symbols {
		quotes = append(quotes, f.next(symbol, at))
	}

	return quotes
}

// CheckInterval rejects tick intervals that are not positive.
func CheckInterval(interval time.Duration) error {
	if interval <= 0 {
		return errors.Newf(errors.ErrCodeInvalidFeedInterval, "feed interval must be positive, got %s", interval)
	}

	return nil
}

// Run emits a tick every interval until ctx is done. A non-positive interval
// returns an error before any tick.
func (f *Feed) Run(ctx context.Context, interval time.Duration, fn func(Quote)) error {
	if err := CheckInterval(interval); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case at := <-ticker.C:
			for _, q := range f.Tick(at) {
				fn(q)
			}
		}
	}
}

// next must be called with f.mu held.
func (f *Feed) next(symbol string, at time.Time) Quote {
	previous := f.prices[symbol]

	// Box-Muller transform for a standard normal step
	u1 := 1 - f.rng.Float64()
	u2 := f.rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

	last := previous * (1 + f.config.Volatility*z)
	if last <= 0 {
		last = previous * 0.99
	}

	f.prices[symbol] = last

	halfSpread := last * f.config.SpreadBps / 20000
	volume := f.config.VolumeBase * (0.5 + f.rng.Float64())

	lastDec := decimal.NewFromFloat(last).Round(4)
	prevDec := decimal.NewFromFloat(previous).Round(4)

	change := decimal.Zero
	if !prevDec.IsZero() {
		change = lastDec.Sub(prevDec).Div(prevDec).Mul(decimal.NewFromInt(100)).Round(4)
	}

	return Quote{
		ID:            uuid.NewString(),
		Symbol:        symbol,
		Time:          at,
		Bid:           decimal.NewFromFloat(last - halfSpread).Round(4),
		Ask:           decimal.NewFromFloat(last + halfSpread).Round(4),
		Last:          lastDec,
		Volume:        int64(math.Round(volume)),
		ChangePercent: change,
	}
}
