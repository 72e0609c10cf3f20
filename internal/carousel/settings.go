package carousel

// Settings are the tunable carousel parameters. Rotation and Position hold
// the preset currently in effect; the Default/Active pairs are what the
// view-state swaps in when focus changes.
type Settings struct {
	ItemWidth      float64
	ItemHeight     float64
	ItemGap        float64
	Rotation       Vec3
	Position       Vec3
	EnableParallax bool
	EnableFloating bool

	DefaultRotation Vec3
	ActiveRotation  Vec3
	DefaultPosition Vec3
	ActivePosition  Vec3
}

func DefaultSettings() Settings {
	s := Settings{
		ItemWidth:       5.5,
		ItemHeight:      4,
		ItemGap:         15,
		EnableParallax:  true,
		EnableFloating:  true,
		DefaultRotation: Vec3{X: -0.1, Y: -0.3, Z: -0.1},
		ActiveRotation:  Vec3{},
		DefaultPosition: Vec3{},
		ActivePosition:  Vec3{X: 20, Y: 0, Z: -5},
	}
	s.ApplyPreset(false)
	return s
}

// ApplyPreset copies the active or default rotation/position preset into the
// current one.
func (s *Settings) ApplyPreset(active bool) {
	if active {
		s.Rotation = s.ActiveRotation
		s.Position = s.ActivePosition
		return
	}
	s.Rotation = s.DefaultRotation
	s.Position = s.DefaultPosition
}

// Pitch is the vertical distance between neighbouring item centers.
func (s Settings) Pitch() float64 {
	return s.ItemHeight + s.ItemGap
}
