// internal/scene/scene.go
package scene

import (
	"go-beams/internal/component"
	"go-beams/internal/config"
	"go-beams/internal/entity"
	"go-beams/internal/event"
	"go-beams/internal/logging"
	"go-beams/internal/system"
	"go-beams/internal/timer"
	"go-beams/internal/types"
	"go-beams/internal/utils"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Layer is host content drawn above the effect layer.
type Layer interface {
	Draw(screen *ebiten.Image)
}

// LayerFunc adapts a function to Layer.
type LayerFunc func(screen *ebiten.Image)

func (f LayerFunc) Draw(screen *ebiten.Image) { f(screen) }

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the scene's logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scene) { s.logger = logging.OrNop(l) }
}

// WithBoundary replaces the built-in boundary with host-provided geometry.
func WithBoundary(g component.Geometry) Option {
	return func(s *Scene) { s.boundary = g }
}

// WithPlacement pins the effect layer to r inside the host screen instead of
// filling it.
func WithPlacement(r component.Rect) Option {
	return func(s *Scene) { s.placement = &r }
}

// Stats are running totals since the scene was created.
type Stats struct {
	Beams      int
	Explosions int
	Timers     int
	Collisions int
	Resets     int
	Now        time.Duration
}

// BeamView is a read-only snapshot of one beam.
type BeamView struct {
	ID          types.EntityID
	Phase       component.Phase
	CycleKey    int
	Detected    bool
	Coordinates *component.Coordinates
	Bounds      component.Rect
	LaidOut     bool

	// Set while the beam cools down after a collision.
	CollidedAt time.Duration
	ResetAt    time.Duration
	Burst      types.EntityID
}

// Scene owns the beams, the boundary and the timer queue they share.
type Scene struct {
	settings config.Settings
	logger   *zap.Logger

	ECS        *entity.ECS
	Clock      *timer.Scheduler
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService

	Generator  *system.BeamGenerator
	Travel     *system.TravelSystem
	Prober     *system.CollisionProber
	Explosions *system.ExplosionSystem
	Lifecycle  *system.LifecycleSystem
	Render     *system.RenderSystem

	container       *component.Element
	boundaryElement *component.Element
	boundary        component.Geometry
	placement       *component.Rect

	configs  []component.BeamConfig
	beams    []types.EntityID
	children []Layer
	mounted  bool

	collisions int
	resets     int
}

// New builds an unmounted scene.
func New(settings config.Settings, opts ...Option) *Scene {
	s := &Scene{
		settings:        settings,
		logger:          zap.NewNop(),
		ECS:             entity.NewECS(),
		Clock:           timer.New(),
		Dispatcher:      event.NewDispatcher(),
		Rng:             utils.NewPRNGService(settings.Scene.Seed),
		container:       &component.Element{},
		boundaryElement: &component.Element{},
	}
	s.boundary = s.boundaryElement
	for _, opt := range opts {
		opt(s)
	}

	s.Generator = system.NewBeamGenerator(s.Rng, settings.Beam)
	s.Travel = system.NewTravelSystem(s.ECS, s.Clock, s.container)
	s.Prober = system.NewCollisionProber(s.ECS, s.Clock, s.Dispatcher, s.Travel, s.boundary, s.container, settings.Scene.PollInterval, s.logger)
	s.Explosions = system.NewExplosionSystem(s.ECS, s.Clock, s.Dispatcher, s.Rng, settings.Explosion, s.logger)
	s.Lifecycle = system.NewLifecycleSystem(s.ECS, s.Clock, s.Dispatcher, s.Travel, s.Prober, s.Explosions, settings.Beam.Cooldown, s.logger)
	s.Render = system.NewRenderSystem(s.ECS, s.Clock, s.Travel, s.boundary, s.container)
	s.Render.ShowBoundary = settings.Scene.ShowBoundary

	s.Dispatcher.Subscribe(event.BeamCollided, s)
	s.Dispatcher.Subscribe(event.BeamReset, s)
	return s
}

func (s *Scene) OnEvent(e event.Event) {
	switch e.Type {
	case event.BeamCollided:
		s.collisions++
	case event.BeamReset:
		s.resets++
	}
}

// Settings returns the settings the scene was built with.
func (s *Scene) Settings() config.Settings {
	return s.settings
}

// Seed returns the seed of the scene's random stream.
func (s *Scene) Seed() int64 {
	return s.Rng.Seed()
}

// Mount generates the beams and starts them. Children are drawn above the
// beams in the order given. Mounting an already mounted scene only adds
// children.
func (s *Scene) Mount(children ...Layer) {
	s.children = append(s.children, children...)
	if s.mounted {
		return
	}
	s.mounted = true

	s.configs = s.Generator.Generate(s.settings.Scene.BeamCount)
	s.beams = make([]types.EntityID, 0, len(s.configs))
	for _, cfg := range s.configs {
		s.beams = append(s.beams, s.Lifecycle.Spawn(cfg))
	}
	s.logger.Info("scene mounted",
		zap.Int("beams", len(s.beams)),
		zap.Int64("seed", s.Rng.Seed()))
}

// Unmount tears down every beam and cancels every pending timer.
func (s *Scene) Unmount() {
	if !s.mounted {
		return
	}
	for _, id := range s.beams {
		s.Lifecycle.Teardown(id)
	}
	s.Clock.CancelAll()
	s.beams = nil
	s.configs = nil
	s.children = nil
	s.mounted = false
	s.logger.Info("scene unmounted",
		zap.Int("collisions", s.collisions),
		zap.Int("resets", s.resets))
}

// Mounted reports whether the beams are running.
func (s *Scene) Mounted() bool {
	return s.mounted
}

// Layout sizes the container to the host screen, or to the placement rect
// when one was given, and places the boundary along its bottom edge.
func (s *Scene) Layout(width, height int) {
	r := component.Rect{W: float64(width), H: float64(height)}
	if s.placement != nil {
		r = *s.placement
	}
	s.SetBounds(r)
}

// SetBounds lays the container out at r.
func (s *Scene) SetBounds(r component.Rect) {
	s.container.SetRect(r)
	h := s.settings.Scene.BoundaryHeight
	s.boundaryElement.SetRect(component.Rect{
		X: r.X,
		Y: r.Bottom() - h,
		W: r.W,
		H: h,
	})
}

// Container exposes the container's geometry.
func (s *Scene) Container() component.Geometry {
	return s.container
}

// Boundary exposes the shared collision plane.
func (s *Scene) Boundary() component.Geometry {
	return s.boundary
}

// Update advances the scene's virtual time by dt.
func (s *Scene) Update(dt time.Duration) {
	s.Clock.Advance(dt)
}

// Draw renders the beams, the bursts and then the children.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.Render.Draw(screen)
	for _, c := range s.children {
		c.Draw(screen)
	}
}

// Beams returns the ids of the mounted beams in creation order.
func (s *Scene) Beams() []types.EntityID {
	return append([]types.EntityID(nil), s.beams...)
}

// Configs returns the generated configurations in creation order.
func (s *Scene) Configs() []component.BeamConfig {
	return append([]component.BeamConfig(nil), s.configs...)
}

// Snapshot returns a view of every live beam, ordered by id.
func (s *Scene) Snapshot() []BeamView {
	views := make([]BeamView, 0, len(s.ECS.Lifecycles))
	for id, lc := range s.ECS.Lifecycles {
		v := BeamView{ID: id, Phase: lc.Phase}
		if lc.Phase == component.Cooldown {
			v.CollidedAt = lc.CollidedAt
			v.ResetAt = lc.Cooldown.Due()
			v.Burst = lc.Explosion
		}
		if inst, ok := s.ECS.Instances[id]; ok {
			v.CycleKey = inst.CycleKey
		}
		if st, ok := s.ECS.Collisions[id]; ok {
			v.Detected = st.Detected
			if st.Coordinates != nil {
				c := *st.Coordinates
				v.Coordinates = &c
			}
		}
		v.Bounds, v.LaidOut = s.Travel.BeamBounds(id)
		views = append(views, v)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// Stats returns running totals.
func (s *Scene) Stats() Stats {
	return Stats{
		Beams:      len(s.ECS.Lifecycles),
		Explosions: s.Explosions.Active(),
		Timers:     s.Clock.Pending(),
		Collisions: s.collisions,
		Resets:     s.resets,
		Now:        s.Clock.Now(),
	}
}
