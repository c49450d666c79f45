package ticker

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultInterval = 5 * time.Second

// Maximum absolute random move per refresh.
var (
	fxSwing    = decimal.NewFromInt(1)
	stockSwing = decimal.NewFromInt(50)
	hundred    = decimal.NewFromInt(100)
)

// Source is the random source behind the feed. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Snapshot is a consistent copy of every quote.
type Snapshot struct {
	FX        []Quote   `json:"fx"`
	Stocks    []Quote   `json:"stocks"`
	Version   uint64    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Feed simulates live quotes. Readers may call Snapshot concurrently with
// Tick and Run.
type Feed struct {
	mu        sync.RWMutex
	fx        []Quote
	stocks    []Quote
	version   uint64
	updatedAt time.Time

	src      Source
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

type Option func(*Feed)

func WithSource(src Source) Option        { return func(f *Feed) { f.src = src } }
func WithInterval(d time.Duration) Option { return func(f *Feed) { f.interval = d } }
func WithLogger(l *zap.Logger) Option     { return func(f *Feed) { f.logger = l } }
func WithNow(now func() time.Time) Option { return func(f *Feed) { f.now = now } }

func WithQuotes(fxq, stocks []Quote) Option {
	return func(f *Feed) {
		f.fx = append([]Quote(nil), fxq...)
		f.stocks = append([]Quote(nil), stocks...)
	}
}

func NewFeed(opts ...Option) *Feed {
	f := &Feed{
		fx:       ExchangeRates(),
		stocks:   StockExchanges(),
		interval: DefaultInterval,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.src == nil {
		f.src = &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	f.updatedAt = f.now()
	return f
}

func (f *Feed) Interval() time.Duration { return f.interval }

// Tick moves every quote by a random delta: up to ±1 for FX and ±50 for
// indices. Change is the delta and ChangePercent is the delta relative to
// the value before the move.
func (f *Feed) Tick() Snapshot {
	f.mu.Lock()
	for i := range f.fx {
		f.fx[i] = move(f.fx[i], f.delta(fxSwing))
	}
	for i := range f.stocks {
		f.stocks[i] = move(f.stocks[i], f.delta(stockSwing))
	}
	f.version++
	f.updatedAt = f.now()
	snap := f.snapshotLocked()
	f.mu.Unlock()
	return snap
}

// delta maps a uniform [0,1) draw onto [-swing, swing).
func (f *Feed) delta(swing decimal.Decimal) decimal.Decimal {
	r := decimal.NewFromFloat(f.src.Float64())
	return r.Sub(decimal.NewFromFloat(0.5)).Mul(swing).Mul(decimal.NewFromInt(2))
}

func move(q Quote, delta decimal.Decimal) Quote {
	prev := q.Value
	q.Value = prev.Add(delta)
	q.Change = delta
	if prev.IsZero() {
		q.ChangePercent = decimal.Zero
	} else {
		q.ChangePercent = delta.Div(prev).Mul(hundred)
	}
	return q
}

func (f *Feed) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshotLocked()
}

func (f *Feed) snapshotLocked() Snapshot {
	return Snapshot{
		FX:        append([]Quote(nil), f.fx...),
		Stocks:    append([]Quote(nil), f.stocks...),
		Version:   f.version,
		UpdatedAt: f.updatedAt,
	}
}

// Run ticks on the feed's interval until ctx is done. onTick, if non-nil,
// receives each new snapshot.
func (f *Feed) Run(ctx context.Context, onTick func(Snapshot)) {
	t := time.NewTicker(f.interval)
	defer t.Stop()
	f.logger.Info("ticker feed started", zap.Duration("interval", f.interval))
	for {
		select {
		case <-ctx.Done():
			f.logger.Info("ticker feed stopped")
			return
		case <-t.C:
			snap := f.Tick()
			if onTick != nil {
				onTick(snap)
			}
		}
	}
}
