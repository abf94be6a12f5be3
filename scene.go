package rangeslider

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, the scene-level
// event listeners, input state, the frame clock and running animations.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before the tree is drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color

	// Input state
	listeners    listenerRegistry
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	seq          uint64
	touchScroll  bool
	scrollY      float64
	scrollLock   *ScrollLock

	// Clock
	now      time.Duration
	timers   []*Timer
	timerSeq uint64

	tweens []*valueTween

	width, height int
	testRunner    *TestRunner
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{
		root:      NewNode("root"),
		listeners: newListenerRegistry(),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances the scene by one tick: scripted steps, input, then the
// clock (timers and animations).
func (s *Scene) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.advance(time.Second / time.Duration(ebiten.TPS()))
}

// advance moves the scene clock forward by dt, firing due timers and
// stepping animations.
func (s *Scene) advance(dt time.Duration) {
	s.now += dt
	s.runTimers()
	s.updateTweens(dt)
}

// refreshTransforms recomputes world transforms for dirty subtrees.
func (s *Scene) refreshTransforms() {
	updateWorldTransform(s.root, identityTransform, false)
}

// Resize records the logical screen size and dispatches EventResize when it
// changes. Run calls it from the game's Layout.
func (s *Scene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	logger.Debug("scene resized", slog.Int("width", width), slog.Int("height", height))
	s.listeners.dispatch(&Event{Type: EventResize, Width: width, Height: height})
}

// Size returns the last size passed to Resize.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// SetTouchScroll enables the default touch action: dragging a finger
// vertically scrolls the root node unless a listener prevents it.
func (s *Scene) SetTouchScroll(enabled bool) {
	s.touchScroll = enabled
}

// ScrollOffset returns the accumulated touch-scroll offset of the root.
func (s *Scene) ScrollOffset() float64 {
	return s.scrollY
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and debug-level log records are emitted.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelWarn)
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
