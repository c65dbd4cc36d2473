package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawProgress(t *testing.T) {
	base := Geometry{ContainerTop: 100, ContainerHeight: 1800, ViewportHeight: 800}

	tests := []struct {
		name    string
		scrollY float64
		want    float64
	}{
		{"before container", 0, 0},
		{"at container top", 100, 0},
		{"part way", 500, 0.4},
		{"at container end", 1100, 1},
		{"elastic overshoot", 1500, 1},
		{"negative bounce", -80, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := base
			g.ScrollY = tt.scrollY
			assert.InDelta(t, tt.want, RawProgress(g), eps)
		})
	}
}

func TestRawProgressDegenerateContainer(t *testing.T) {
	zero := RawProgress(Geometry{ScrollY: 300, ContainerHeight: 0, ViewportHeight: 0})
	assert.Equal(t, 0.0, zero)
	assert.False(t, math.IsNaN(zero))

	short := RawProgress(Geometry{ScrollY: 300, ContainerHeight: 400, ViewportHeight: 800})
	assert.Equal(t, 0.0, short)

	assert.Equal(t, 0.0, RawProgress(Geometry{ScrollY: math.NaN(), ContainerHeight: 2000, ViewportHeight: 800}))
	assert.Equal(t, 0.0, RawProgress(Geometry{ScrollY: 10, ContainerHeight: math.Inf(1), ViewportHeight: 800}))
}

func TestSpringConfig(t *testing.T) {
	cfg := DefaultSpring
	assert.InDelta(t, math.Sqrt(200), cfg.AngularFrequency(), eps)
	assert.InDelta(t, 25/(2*math.Sqrt(200)), cfg.DampingRatio(), eps)

	filled := SpringConfig{}.withDefaults()
	assert.Equal(t, DefaultSpring, filled)
}

func TestSourceConvergesToTarget(t *testing.T) {
	src := NewSource(DefaultSpring)
	src.Observe(Geometry{ScrollY: 500, ContainerTop: 0, ContainerHeight: 1800, ViewportHeight: 800})
	require.InDelta(t, 0.5, src.Target(), eps)

	src.Tick()
	first := src.Progress().Get()
	assert.Greater(t, first, 0.0, "spring moves on the first frame")
	assert.Less(t, first, 0.5, "spring lags the raw value")

	ticks := 1
	for src.Tick() {
		ticks++
		require.Less(t, ticks, 600, "spring did not settle")
	}
	assert.Equal(t, 0.5, src.Progress().Get())
	assert.True(t, src.Settled())
}

func TestSourceStaysInRange(t *testing.T) {
	src := NewSource(SpringConfig{Stiffness: 400, Damping: 5})
	src.Observe(Geometry{ScrollY: 5000, ContainerHeight: 1800, ViewportHeight: 800})

	var seen []float64
	unsubscribe := src.Progress().Subscribe(func(v float64) { seen = append(seen, v) })
	defer unsubscribe()

	for i := 0; i < 600 && src.Tick(); i++ {
	}
	require.NotEmpty(t, seen)
	for _, v := range seen {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.Equal(t, 1.0, src.Progress().Get())
}

func TestSourceAppliesSamplesInOrder(t *testing.T) {
	src := NewSource(DefaultSpring)
	g := Geometry{ContainerHeight: 1800, ViewportHeight: 800}
	for _, y := range []float64{100, 700, 300} {
		g.ScrollY = y
		src.Observe(g)
	}
	assert.InDelta(t, 0.3, src.Target(), eps, "the newest sample wins")
}

func TestSourceJump(t *testing.T) {
	src := NewSource(DefaultSpring)
	src.Jump(0.7)
	assert.Equal(t, 0.7, src.Progress().Get())
	assert.True(t, src.Settled())
	assert.False(t, src.Tick())

	src.Jump(3)
	assert.Equal(t, 1.0, src.Progress().Get())
}

func TestCellSubscriptions(t *testing.T) {
	c := NewCell(0)
	var order []string
	unA := c.Subscribe(func(float64) { order = append(order, "a") })
	unB := c.Subscribe(func(float64) { order = append(order, "b") })
	assert.Equal(t, 2, c.Subscribers())

	c.Set(0.5)
	assert.Equal(t, []string{"a", "b"}, order)

	c.Set(0.5)
	assert.Len(t, order, 2, "unchanged value does not notify")

	unA()
	unA()
	assert.Equal(t, 1, c.Subscribers())

	c.Set(0.6)
	assert.Equal(t, []string{"a", "b", "b"}, order)
	assert.Equal(t, 0.6, c.Get())

	unB()
	assert.Equal(t, 0, c.Subscribers())
}

func TestCellUnsubscribeDuringNotify(t *testing.T) {
	c := NewCell(0)
	calls := 0
	var unsubscribe func()
	unsubscribe = c.Subscribe(func(float64) {
		calls++
		unsubscribe()
	})
	c.Set(1)
	c.Set(2)
	assert.Equal(t, 1, calls)
}
