package camera

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/screenreel/screenreel/internal/logging"
	"github.com/screenreel/screenreel/internal/telemetry"
)

// Session is one synthesized camera plan: a keyframe sequence plus the
// inputs that produced it. Sessions are immutable once returned; the
// engine replaces its active session wholesale rather than mutating it.
type Session struct {
	ID        string
	Mode      Mode
	Viewport  telemetry.Viewport
	Config    Config
	Keyframes []Keyframe
}

// Engine owns the synthesis pipeline and the active session. All
// methods are safe for concurrent use.
type Engine struct {
	cfg Config
	log zerolog.Logger

	mu      sync.RWMutex
	session *Session
}

// NewEngine validates the config, clamping its soft ranges, and returns
// an engine with no active session.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, log: logging.WithComponent("camera")}, nil
}

// Config returns the engine's validated configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Synthesize builds the keyframe sequence for a recording in the given
// mode, reduces it, and installs the result as the active session.
func (e *Engine) Synthesize(rec *telemetry.Recording, mode Mode) *Session {
	if rec == nil {
		rec = &telemetry.Recording{}
	}
	vw, vh := rec.Viewport.Width, rec.Viewport.Height

	var keyframes []Keyframe
	switch mode {
	case ModeBasic:
		keyframes = ZoomFromClicks(rec.Clicks, vw, vh, e.cfg)
	case ModeFollow:
		keyframes = FollowPath(rec.Positions, vw, vh, e.cfg)
	case ModeSmart:
		baseline := FollowPath(rec.Positions, vw, vh, e.cfg)
		points := DetectFocusPoints(rec.Positions, rec.Clicks, e.cfg)
		keyframes = ComposeFocus(baseline, points, e.cfg)
	}

	keyframes = Reduce(keyframes, 0, 0, 0)

	session := &Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		Viewport:  rec.Viewport,
		Config:    e.cfg,
		Keyframes: keyframes,
	}

	e.mu.Lock()
	e.session = session
	e.mu.Unlock()

	e.log.Debug().
		Str("session", session.ID).
		Stringer("mode", mode).
		Int("keyframes", len(keyframes)).
		Msg("camera session synthesized")

	return session
}

// Session returns the active session, or nil before the first
// synthesis.
func (e *Engine) Session() *Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session
}

// PoseAt samples the active session at time t in milliseconds. Before
// any synthesis it returns a neutral pose.
func (e *Engine) PoseAt(t int64) Pose {
	s := e.Session()
	if s == nil {
		return Pose{Zoom: 1}
	}
	return Sample(s.Keyframes, t)
}
