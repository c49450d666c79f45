// Package sections tracks which page sections have had their charts
// initialized. Each section loads at most once per controller, the first
// time it scrolls into view.
package sections

import (
	"errors"
	"sync"

	"algoeconomics/internal/chart"
)

type ID string

const (
	AfricanMarkets    ID = "african-markets"
	RealTimeDashboard ID = "real-time-dashboard"
	RegionalAnalysis  ID = "regional-analysis"
	EconomicModel     ID = "economic-model"
)

var ErrUnknownSection = errors.New("unknown section")

// IDs lists the observed sections in page order.
func IDs() []ID {
	return []ID{AfricanMarkets, RealTimeDashboard, RegionalAnalysis, EconomicModel}
}

func Parse(s string) (ID, error) {
	for _, id := range IDs() {
		if string(id) == s {
			return id, nil
		}
	}
	return "", ErrUnknownSection
}

// State is the load state of one section.
type State int

const (
	NotLoaded State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "not_loaded"
}

// Charts returns the charts a section draws when it loads. The regional
// section starts with the default bloc only; other blocs load per tab.
func Charts(id ID) ([]chart.Named, error) {
	switch id {
	case AfricanMarkets:
		return append(chart.Sparklines(), chart.GDPBar()), nil
	case RealTimeDashboard:
		return chart.DashboardTrends(), nil
	case RegionalAnalysis:
		r, _ := chart.Regional(chart.DefaultRegion)
		return []chart.Named{r}, nil
	case EconomicModel:
		return []chart.Named{{CanvasID: chart.ModelCanvasID, Config: chart.ModelLine()}}, nil
	}
	return nil, ErrUnknownSection
}

// Initializer runs when a section loads for the first time.
type Initializer func(id ID, charts []chart.Named)

// Controller holds the per-section state for one page view.
type Controller struct {
	mu      sync.Mutex
	states  map[ID]State
	regions map[string]bool
	onLoad  Initializer
}

// NewController starts with every section NotLoaded. onLoad may be nil.
func NewController(onLoad Initializer) *Controller {
	c := &Controller{
		states:  make(map[ID]State, len(IDs())),
		regions: map[string]bool{},
		onLoad:  onLoad,
	}
	for _, id := range IDs() {
		c.states[id] = NotLoaded
	}
	return c
}

// Load marks the section loaded and runs the initializer, once. It reports
// whether this call did the loading; repeat calls and unknown ids return false.
func (c *Controller) Load(id string) bool {
	sid, err := Parse(id)
	if err != nil {
		return false
	}

	c.mu.Lock()
	if c.states[sid] == Loaded {
		c.mu.Unlock()
		return false
	}
	c.states[sid] = Loaded
	if sid == RegionalAnalysis {
		c.regions[chart.DefaultRegion] = true
	}
	fn := c.onLoad
	c.mu.Unlock()

	if fn != nil {
		charts, _ := Charts(sid)
		fn(sid, charts)
	}
	return true
}

// LoadRegion returns the chart of a regional bloc the first time its tab is
// opened. It returns false for unknown blocs, for blocs already drawn, and
// while the regional section itself has not loaded.
func (c *Controller) LoadRegion(region string) (chart.Named, bool) {
	r, ok := chart.Regional(region)
	if !ok {
		return chart.Named{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.states[RegionalAnalysis] != Loaded || c.regions[region] {
		return chart.Named{}, false
	}
	c.regions[region] = true
	return r, true
}

// State returns the state of id; unknown ids report NotLoaded.
func (c *Controller) State(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[ID(id)]
}

// Snapshot copies every section's state.
func (c *Controller) Snapshot() map[ID]State {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[ID]State, len(c.states))
	for id, s := range c.states {
		out[id] = s
	}
	return out
}
