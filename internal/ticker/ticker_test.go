package ticker

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fixedSource float64

func (s fixedSource) Float64() float64 { return float64(s) }

func TestDefaults(t *testing.T) {
	fxq := ExchangeRates()
	stocks := StockExchanges()
	require.Len(t, fxq, 8)
	require.Len(t, stocks, 8)
	assert.Equal(t, "GBP/NGN", fxq[0].Symbol)
	assert.Equal(t, "GBP/ZMW", fxq[7].Symbol)
	assert.Equal(t, "JSE All Share", stocks[0].Symbol)
	assert.Equal(t, "TUNINDEX", stocks[7].Symbol)
	assert.False(t, fxq[1].Up())
}

func TestTick_PercentIsRelativeToPreviousValue(t *testing.T) {
	f := NewFeed(WithSource(fixedSource(0.75)))
	snap := f.Tick()

	ngn := snap.FX[0]
	assert.Equal(t, "2087.95", ngn.Value.String())
	assert.True(t, ngn.Change.Equal(decimal.RequireFromString("0.5")))
	assert.Equal(t, "0.0240", ngn.ChangePercent.StringFixed(4), "0.5 / 2087.45 * 100")

	jse := snap.Stocks[0]
	assert.Equal(t, "76259.58", jse.Value.String())
	assert.True(t, jse.Change.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "0.03", jse.ChangePercent.StringFixed(2))
	assert.Equal(t, uint64(1), snap.Version)
}

func TestTick_Bounds(t *testing.T) {
	low := NewFeed(WithSource(fixedSource(0))).Tick()
	assert.Equal(t, "-1", low.FX[2].Change.String())
	assert.Equal(t, "-50", low.Stocks[2].Change.String())
	assert.False(t, low.FX[2].Up())

	mid := NewFeed(WithSource(fixedSource(0.5))).Tick()
	assert.True(t, mid.FX[0].Change.IsZero())
	assert.True(t, mid.FX[0].Up(), "zero change counts as up")
}

func TestSnapshot_IsACopy(t *testing.T) {
	f := NewFeed(WithSource(fixedSource(0.75)))
	snap := f.Snapshot()
	snap.FX[0].Symbol = "XXX"
	assert.Equal(t, "GBP/NGN", f.Snapshot().FX[0].Symbol)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2,087.45", FormatValue(decimal.RequireFromString("2087.45")))
	assert.Equal(t, "102,458.23", FormatValue(decimal.RequireFromString("102458.23")))
	assert.Equal(t, "19.87", FormatValue(decimal.RequireFromString("19.87")))
	assert.Equal(t, "4,678.90", FormatValue(decimal.RequireFromString("4678.9")))

	assert.Equal(t, "+0.59%", FormatPercent(decimal.RequireFromString("0.59")))
	assert.Equal(t, "-0.53%", FormatPercent(decimal.RequireFromString("-0.53")))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero))
	assert.Equal(t, "0.00%", FormatPercent(decimal.RequireFromString("0.001")))
}

func TestRenderItem(t *testing.T) {
	out, err := RenderItem(ExchangeRates()[0])
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="ticker-symbol">GBP/NGN</span>`)
	assert.Contains(t, out, `<span class="ticker-value">2,087.45</span>`)
	assert.Contains(t, out, `<span class="ticker-change positive">+0.59%</span>`)

	out, err = RenderItem(StockExchanges()[1])
	require.NoError(t, err)
	assert.Contains(t, out, `stock-ticker-item`)
	assert.Contains(t, out, `<span class="country-badge">NG</span>`)
	assert.Contains(t, out, `<span class="ticker-change negative">-0.85%</span>`)
	assert.Contains(t, out, `Vol: 1.1B`)
}

func TestRender_TracksAreDoubled(t *testing.T) {
	tracks, err := Render(NewFeed().Snapshot())
	require.NoError(t, err)

	assert.Equal(t, 16, strings.Count(tracks.Exchange, "<div "))
	assert.Equal(t, 16, strings.Count(tracks.Stock, "<div "))
	assert.Equal(t, 32, strings.Count(tracks.Combined, "<div "))

	half := tracks.Combined[:len(tracks.Combined)/2]
	assert.Equal(t, half+half, tracks.Combined)
	assert.Less(t, strings.Index(half, "GBP/ZMW"), strings.Index(half, "JSE All Share"))
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := NewFeed(WithInterval(2*time.Millisecond), WithSource(fixedSource(0.6)))
	ctx, cancel := context.WithCancel(context.Background())

	var ticks atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Run(ctx, func(Snapshot) { ticks.Add(1) })
	}()

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	wg.Wait()
	assert.GreaterOrEqual(t, f.Snapshot().Version, uint64(3))
}
