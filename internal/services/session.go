// Package services provides the frontend-agnostic slideshow session. A UI
// binds its buttons and timer to a Session and renders from its snapshots;
// nothing here depends on any rendering framework.
package services

import (
	"context"

	"github.com/driveframe/driveframe/internal/events"
	"github.com/driveframe/driveframe/internal/logging"
	"github.com/driveframe/driveframe/internal/models"
	"github.com/driveframe/driveframe/internal/slideshow"
)

// Lister produces the media collection for one source (remote folder or
// local directory).
type Lister interface {
	List(ctx context.Context) ([]models.MediaFile, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func(ctx context.Context) ([]models.MediaFile, error)

func (f ListerFunc) List(ctx context.Context) ([]models.MediaFile, error) { return f(ctx) }

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Files    []models.MediaFile
	Playback slideshow.PlaybackState
	Current  *models.MediaFile
}

// Session owns all mutable state for one slideshow: the media source, the
// working collection, and the playback cursor. Every operation goes through
// the Session; there is no ambient global state.
type Session struct {
	log    *logging.Logger
	bus    *events.Bus
	lister Lister
	cursor *slideshow.Cursor
}

// NewSession creates a session over the given source. The cursor starts
// idle; call Reload to populate it.
func NewSession(lister Lister, log *logging.Logger) *Session {
	if log == nil {
		log = logging.NewDefaultLogger()
	}
	return &Session{
		log:    log,
		bus:    events.NewBus(0),
		lister: lister,
		cursor: slideshow.NewCursor(),
	}
}

// Events returns the bus a frontend subscribes to for re-render requests.
func (s *Session) Events() *events.Bus { return s.bus }

// Cursor exposes the playback cursor for configuration (loop, interval).
func (s *Session) Cursor() *slideshow.Cursor { return s.cursor }

// Reload fetches a fresh collection from the source and loads it into the
// cursor, replacing whatever was there. On failure the previous collection
// is kept and the error is surfaced; nothing partial is ever loaded.
func (s *Session) Reload(ctx context.Context) error {
	files, err := s.lister.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reload failed")
		s.publishError(err)
		return err
	}

	s.cursor.Load(files)
	s.log.Debug().Int("count", len(files)).Msg("collection reloaded")
	s.publishCollection()
	s.publishPlayback()
	return nil
}

// ApplyFilter narrows the working collection; the index resets to 0 and the
// play/pause state is kept.
func (s *Session) ApplyFilter(pred func(models.MediaFile) bool) {
	s.cursor.ApplyFilter(pred)
	s.publishCollection()
	s.publishPlayback()
}

// Sort reorders the working collection; the index resets to 0.
func (s *Session) Sort(less func(a, b models.MediaFile) bool) {
	s.cursor.Sort(less)
	s.publishCollection()
	s.publishPlayback()
}

// Play starts auto-advancing.
func (s *Session) Play() {
	s.cursor.Play()
	s.publishPlayback()
}

// Pause stops auto-advancing.
func (s *Session) Pause() {
	s.cursor.Pause()
	s.publishPlayback()
}

// Next advances to the next file.
func (s *Session) Next() {
	s.cursor.Next()
	s.publishPlayback()
}

// Prev steps back to the previous file.
func (s *Session) Prev() {
	s.cursor.Prev()
	s.publishPlayback()
}

// JumpFirst moves to the first file.
func (s *Session) JumpFirst() {
	s.cursor.JumpFirst()
	s.publishPlayback()
}

// JumpLast moves to the last file.
func (s *Session) JumpLast() {
	s.cursor.JumpLast()
	s.publishPlayback()
}

// JumpRandom moves to a random file.
func (s *Session) JumpRandom() {
	s.cursor.JumpRandom()
	s.publishPlayback()
}

// JumpTo moves to index i; out-of-range values are surfaced and leave the
// session unchanged.
func (s *Session) JumpTo(i int) error {
	if err := s.cursor.JumpTo(i); err != nil {
		s.publishError(err)
		return err
	}
	s.publishPlayback()
	return nil
}

// Tick is called by the frontend's timer while playing.
func (s *Session) Tick() {
	if s.cursor.Tick() {
		s.publishPlayback()
	}
}

// Current returns the file under the cursor.
func (s *Session) Current() (models.MediaFile, bool) {
	return s.cursor.Current()
}

// Snapshot returns a read-only view of the whole session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Files:    s.cursor.Files(),
		Playback: s.cursor.Playback(),
	}
	if cur, ok := s.cursor.Current(); ok {
		snap.Current = &cur
	}
	return snap
}

// Close releases the event bus. The session is not usable afterwards.
func (s *Session) Close() {
	s.bus.Close()
}

func (s *Session) publishCollection() {
	s.bus.Publish(&events.CollectionChangedEvent{
		BaseEvent: events.NewBaseEvent(events.EventCollectionChanged),
		Count:     s.cursor.Len(),
	})
}

func (s *Session) publishPlayback() {
	pb := s.cursor.Playback()
	s.bus.Publish(&events.PlaybackChangedEvent{
		BaseEvent: events.NewBaseEvent(events.EventPlaybackChanged),
		Index:     pb.Index,
		Playing:   pb.Playing(),
	})
}

func (s *Session) publishError(err error) {
	s.bus.Publish(&events.SessionErrorEvent{
		BaseEvent: events.NewBaseEvent(events.EventSessionError),
		Err:       err,
	})
}
