package laser

// BlendMode selects how a draw is composited.
type BlendMode int

const (
	// BlendSrcAlpha is src*alpha + dst*(1-alpha).
	BlendSrcAlpha BlendMode = iota
	BlendAdditive
)

// CullMode selects which triangle faces are dropped.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
)

// StateKey identifies a render state configuration.
type StateKey struct {
	Blend BlendMode
	Cull  CullMode
}

// BeamState is the state every beam is drawn with: alpha blended, double
// sided, no depth test, unlit.
var BeamState = StateKey{Blend: BlendSrcAlpha, Cull: CullNone}

// RenderState is a built state. Handle holds the backend object.
type RenderState struct {
	Key       StateKey
	DepthTest bool
	Lit       bool
	Handle    any
}

// StateCache builds render states on first use and keeps them until Reset.
// Its lifetime follows the graphics context that owns the handles.
type StateCache struct {
	build  func(StateKey) any
	states map[StateKey]*RenderState
	builds int
}

// NewStateCache creates a cache. build turns a key into a backend handle and
// may be nil for headless use.
func NewStateCache(build func(StateKey) any) *StateCache {
	return &StateCache{
		build:  build,
		states: make(map[StateKey]*RenderState),
	}
}

// Get returns the state for key, building it if needed.
func (c *StateCache) Get(key StateKey) *RenderState {
	if s, ok := c.states[key]; ok {
		return s
	}
	s := &RenderState{Key: key}
	if c.build != nil {
		s.Handle = c.build(key)
	}
	c.states[key] = s
	c.builds++
	return s
}

// Reset drops every state; call it when the graphics context goes away.
func (c *StateCache) Reset() {
	clear(c.states)
}

// Len returns the number of cached states.
func (c *StateCache) Len() int {
	return len(c.states)
}

// Builds counts how many states have been constructed over the cache's life.
func (c *StateCache) Builds() int {
	return c.builds
}
