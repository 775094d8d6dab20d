package state

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/pokedex/networking"
)

const (
	DefaultCooldownWindow = 60 * time.Minute
	GatherLabel           = "Gather Pokémon"
)

// CooldownTickMsg is sent once a second while a cooldown is running.
// Gen ties the tick to the Start call that scheduled it.
type CooldownTickMsg struct {
	Gen int
	At  time.Time
}

// Shared by every Cooldown so a tick from a torn-down page never matches a live one
var tickGenerations atomic.Int64

func nextGeneration() int {
	return int(tickGenerations.Add(1))
}

// Cooldown tracks when the next gather is allowed.
// A zero nextAllowed means gathering is available.
type Cooldown struct {
	nextAllowed time.Time
	gen         int
	running     bool

	now func() time.Time
}

func NewCooldown() Cooldown {
	return Cooldown{now: time.Now}
}

// Swaps the clock, used by tests
func NewCooldownWithClock(now func() time.Time) Cooldown {
	return Cooldown{now: now}
}

// Records the cooldown reported by a successful gather and schedules a fresh ticker.
// Any ticker started before this one is abandoned.
func (c *Cooldown) Start(result networking.GatherResult, window time.Duration) tea.Cmd {
	if window <= 0 {
		window = DefaultCooldownWindow
	}

	switch {
	case result.NextGatherAt != nil:
		c.nextAllowed = *result.NextGatherAt
	case result.LastGatherAt != nil:
		c.nextAllowed = result.LastGatherAt.Add(window)
	default:
		c.nextAllowed = time.Time{}
	}

	c.gen = nextGeneration()
	c.running = false
	c.refresh()

	if c.nextAllowed.IsZero() {
		return nil
	}

	c.running = true
	return c.Tick()
}

// Schedules the next tick for the current generation
func (c *Cooldown) Tick() tea.Cmd {
	gen := c.gen
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return CooldownTickMsg{Gen: gen, At: t}
	})
}

// Handles a tick. Ticks from an older generation are dropped so only one ticker is ever live.
// Returns the command for the next tick, or nil once the cooldown has run out.
func (c *Cooldown) HandleTick(msg CooldownTickMsg) tea.Cmd {
	if msg.Gen != c.gen || !c.running {
		return nil
	}

	c.refresh()
	if c.nextAllowed.IsZero() {
		c.running = false
		return nil
	}

	return c.Tick()
}

// Tears the ticker down, outstanding ticks become stale
func (c *Cooldown) Stop() {
	c.gen = nextGeneration()
	c.running = false
}

// Clears the stored instant once it has passed
func (c *Cooldown) refresh() {
	if c.nextAllowed.IsZero() {
		return
	}

	if c.Remaining() <= 0 {
		c.nextAllowed = time.Time{}
	}
}

// Recomputes availability without waiting for a tick.
// Used after a rejected gather so whatever cooldown we already had is shown.
func (c *Cooldown) Refresh() {
	c.refresh()
}

func (c Cooldown) Remaining() time.Duration {
	if c.nextAllowed.IsZero() {
		return 0
	}

	return c.nextAllowed.Sub(c.clock())
}

func (c Cooldown) Available() bool {
	return c.Remaining() <= 0
}

func (c Cooldown) Running() bool {
	return c.running
}

// Generation of the live ticker, ticks carrying any other value are stale
func (c Cooldown) Generation() int {
	return c.gen
}

func (c Cooldown) NextAllowed() time.Time {
	return c.nextAllowed
}

func (c Cooldown) Label() string {
	remaining := c.Remaining()
	if remaining <= 0 {
		return GatherLabel
	}

	return fmt.Sprintf("Gather in %s", FormatDuration(remaining))
}

func (c Cooldown) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}

	return c.now()
}

// Formats as m:ss, rounding partial seconds up
func FormatDuration(d time.Duration) string {
	totalSec := int(math.Ceil(d.Seconds()))
	if totalSec < 0 {
		totalSec = 0
	}

	return fmt.Sprintf("%d:%02d", totalSec/60, totalSec%60)
}
