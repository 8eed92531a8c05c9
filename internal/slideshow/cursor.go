// Package slideshow implements the playback cursor over an ordered media
// collection: index, play/pause, loop, and timer-driven advancement. The
// cursor never blocks for wall-clock time; the presentation layer owns the
// timer and calls Tick.
package slideshow

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/driveframe/driveframe/internal/models"
)

// ErrIndexOutOfRange indicates a jump target outside [0, length). The cursor
// is left unchanged.
var ErrIndexOutOfRange = errors.New("index out of range")

// DefaultInterval is the auto-advance period used until configured otherwise.
const DefaultInterval = 3 * time.Second

// State is the cursor's lifecycle state.
type State int

const (
	// StateIdle means no collection has been loaded.
	StateIdle State = iota
	// StateReady means a collection is loaded and playback is paused.
	StateReady
	// StatePlaying means the cursor advances on every tick.
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// PlaybackState is a read-only snapshot of the cursor for the presentation
// layer.
type PlaybackState struct {
	Index    int
	State    State
	Loop     bool
	Interval time.Duration
}

// Playing reports whether the cursor auto-advances.
func (p PlaybackState) Playing() bool { return p.State == StatePlaying }

// Cursor walks an ordered collection of media files. The zero value is not
// usable; construct with NewCursor. Safe for use from a UI goroutine and a
// ticker goroutine.
type Cursor struct {
	mu       sync.RWMutex
	state    State
	all      []models.MediaFile // collection as loaded
	items    []models.MediaFile // working view after filter/sort
	index    int
	loop     bool
	interval time.Duration
	rng      *rand.Rand
}

// NewCursor returns an idle cursor with looping on and the default interval.
func NewCursor() *Cursor {
	return &Cursor{
		state:    StateIdle,
		loop:     true,
		interval: DefaultInterval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetLoop toggles wrap-around at the end of the collection.
func (c *Cursor) SetLoop(loop bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loop = loop
}

// SetInterval configures the auto-advance period. Non-positive values are
// ignored.
func (c *Cursor) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = d
}

// Load replaces the collection from any state, resets the index to 0, and
// leaves the cursor Ready.
func (c *Cursor) Load(files []models.MediaFile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.all = append([]models.MediaFile(nil), files...)
	c.items = append([]models.MediaFile(nil), files...)
	c.index = 0
	c.state = StateReady
}

// Play starts auto-advancing. It only transitions from Ready.
func (c *Cursor) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateReady {
		c.state = StatePlaying
	}
}

// Pause stops auto-advancing. It only transitions from Playing.
func (c *Cursor) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StatePlaying {
		c.state = StateReady
	}
}

// Next moves the index forward by one, wrapping at the end. No-op when the
// collection is empty or nothing is loaded.
func (c *Cursor) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle || len(c.items) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.items)
}

// Prev moves the index back by one, wrapping at the start. Prev is the exact
// inverse of Next.
func (c *Cursor) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle || len(c.items) == 0 {
		return
	}
	c.index = (c.index - 1 + len(c.items)) % len(c.items)
}

// JumpFirst sets the index to the first element.
func (c *Cursor) JumpFirst() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return
	}
	c.index = 0
}

// JumpLast sets the index to the last element.
func (c *Cursor) JumpLast() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return
	}
	c.index = len(c.items) - 1
}

// JumpRandom sets the index to a uniformly random element.
func (c *Cursor) JumpRandom() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return
	}
	c.index = c.rng.Intn(len(c.items))
}

// JumpTo sets the index directly. An index outside [0, length) returns
// ErrIndexOutOfRange and leaves the cursor unchanged.
func (c *Cursor) JumpTo(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.items))
	}
	c.index = i
	return nil
}

// Tick is the auto-advance step, fired by the presentation layer's timer
// while playing. With loop off, an advance that would wrap past the last
// element instead pauses the cursor and leaves the index at the last
// element. It reports whether anything changed.
func (c *Cursor) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePlaying || len(c.items) == 0 {
		return false
	}
	if !c.loop && c.index == len(c.items)-1 {
		c.state = StateReady
		return true
	}
	c.index = (c.index + 1) % len(c.items)
	return true
}

// ApplyFilter replaces the working view with the elements of the loaded
// collection matching pred, in their original order, and resets the index to
// 0. The play/pause state is untouched. Successive filters always start from
// the full collection, so filters do not compound.
func (c *Cursor) ApplyFilter(pred func(models.MediaFile) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := make([]models.MediaFile, 0, len(c.all))
	for _, f := range c.all {
		if pred(f) {
			filtered = append(filtered, f)
		}
	}
	c.items = filtered
	c.index = 0
}

// Sort reorders the working view by less and resets the index to 0. The
// play/pause state is untouched.
func (c *Cursor) Sort(less func(a, b models.MediaFile) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sort.SliceStable(c.items, func(i, j int) bool {
		return less(c.items[i], c.items[j])
	})
	c.index = 0
}

// Files returns a copy of the working view.
func (c *Cursor) Files() []models.MediaFile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.MediaFile(nil), c.items...)
}

// Len returns the size of the working view.
func (c *Cursor) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Current returns the file under the cursor, and false when the collection
// is empty or nothing is loaded.
func (c *Cursor) Current() (models.MediaFile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state == StateIdle || len(c.items) == 0 {
		return models.MediaFile{}, false
	}
	return c.items[c.index], true
}

// Playback returns a snapshot of the playback state.
func (c *Cursor) Playback() PlaybackState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return PlaybackState{
		Index:    c.index,
		State:    c.state,
		Loop:     c.loop,
		Interval: c.interval,
	}
}
