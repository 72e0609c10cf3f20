package carousel

import "fmt"

// LifetimeError is the panic value raised when the Store is used before it is
// created through NewStore or after Close.
type LifetimeError struct {
	Op string
}

func (e *LifetimeError) Error() string {
	return fmt.Sprintf("carousel: %s called outside the carousel lifetime", e.Op)
}

// Store is the shared carousel view-state: the focused item, the scroll
// progress and the settings. Only the view-state methods and ScrollMapper
// mutate it; everything else reads it through Snapshot.
type Store struct {
	mounted bool

	settings Settings

	activeIndex int
	hasActive   bool

	progress         float64
	previousProgress float64
	scrollVelocity   float64
}

func NewStore(settings Settings) *Store {
	return &Store{
		mounted:  true,
		settings: settings,
	}
}

// Close ends the carousel lifetime. Any accessor called afterwards panics.
func (s *Store) Close() {
	s.mustBeMounted("Store.Close")
	s.mounted = false
}

// Mounted reports whether the store may be used. It never panics.
func (s *Store) Mounted() bool {
	return s != nil && s.mounted
}

func (s *Store) mustBeMounted(op string) {
	if !s.Mounted() {
		panic(&LifetimeError{Op: op})
	}
}

func (s *Store) Settings() *Settings {
	s.mustBeMounted("Store.Settings")
	return &s.settings
}

func (s *Store) ActiveIndex() (int, bool) {
	s.mustBeMounted("Store.ActiveIndex")
	return s.activeIndex, s.hasActive
}

func (s *Store) IsActive() bool {
	s.mustBeMounted("Store.IsActive")
	return s.hasActive
}

func (s *Store) Progress() float64 {
	s.mustBeMounted("Store.Progress")
	return s.progress
}

func (s *Store) ScrollVelocity() float64 {
	s.mustBeMounted("Store.ScrollVelocity")
	return s.scrollVelocity
}

// OnItemClick toggles focus: clicking the focused item clears focus, clicking
// any other item focuses it.
func (s *Store) OnItemClick(index int) {
	s.mustBeMounted("Store.OnItemClick")
	if s.hasActive && s.activeIndex == index {
		s.setActive(0, false)
		return
	}
	s.setActive(index, true)
}

// ClearActive drops focus if any item has it.
func (s *Store) ClearActive() {
	s.mustBeMounted("Store.ClearActive")
	if s.hasActive {
		s.setActive(0, false)
	}
}

func (s *Store) setActive(index int, ok bool) {
	wasActive := s.hasActive
	s.activeIndex, s.hasActive = index, ok
	if !ok {
		s.activeIndex = 0
	}
	if wasActive != ok {
		s.settings.ApplyPreset(ok)
	}
}

// Snapshot is a consistent copy of the view-state for one frame.
type Snapshot struct {
	Progress       float64
	ScrollVelocity float64
	ActiveIndex    int
	HasActive      bool
	Settings       Settings
}

// BeginFrame does the per-frame velocity bookkeeping and returns the snapshot
// every item of this frame is solved from.
func (s *Store) BeginFrame() Snapshot {
	s.mustBeMounted("Store.BeginFrame")
	s.scrollVelocity = s.progress - s.previousProgress
	s.previousProgress = s.progress

	return Snapshot{
		Progress:       s.progress,
		ScrollVelocity: s.scrollVelocity,
		ActiveIndex:    s.activeIndex,
		HasActive:      s.hasActive,
		Settings:       s.settings,
	}
}
