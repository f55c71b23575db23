package xrview

import "time"

// animCall records one SetAnimation invocation on the fake renderer.
type animCall struct {
	name      string
	loop      bool
	crossFade time.Duration
}

// fakeSession is a test double for an active AR session.
type fakeSession struct {
	ended  int
	endErr error
}

func (s *fakeSession) End() error {
	s.ended++
	return s.endErr
}

// fakeRenderer records every renderer call and lets tests settle texture
// loads manually, mirroring the host's asynchronous delivery.
type fakeRenderer struct {
	yaws    []float64
	renders int

	animNames []string
	setAnims  []animCall
	plays     []int
	pauses    int

	hasSlot   bool
	pendLoads map[string][]func(Texture, error)
	loadOrder []string
	applied   []Texture

	exposure float64
	bbox     Vec3

	arSupported bool
	enterErr    error
	mode        OverlayMode
	session     *fakeSession
	enterCalls  int
	onEnter     func() // runs inside EnterAR, before returning
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		animNames:   []string{"A_Chair", "A_Stretch"},
		hasSlot:     true,
		pendLoads:   make(map[string][]func(Texture, error)),
		bbox:        Vec3{X: 0.5, Y: 1.0, Z: 0.5},
		arSupported: true,
		mode:        OverlayScreen,
	}
}

func (r *fakeRenderer) SetYaw(degrees float64) { r.yaws = append(r.yaws, degrees) }
func (r *fakeRenderer) RequestRender()         { r.renders++ }

func (r *fakeRenderer) AnimationNames() []string { return r.animNames }
func (r *fakeRenderer) SetAnimation(name string, loop bool, crossFade time.Duration) {
	r.setAnims = append(r.setAnims, animCall{name: name, loop: loop, crossFade: crossFade})
}
func (r *fakeRenderer) Play(repetitions int) { r.plays = append(r.plays, repetitions) }
func (r *fakeRenderer) Pause()               { r.pauses++ }

func (r *fakeRenderer) HasTextureSlot() bool { return r.hasSlot }
func (r *fakeRenderer) CreateTexture(uri string, done func(Texture, error)) {
	r.loadOrder = append(r.loadOrder, uri)
	r.pendLoads[uri] = append(r.pendLoads[uri], done)
}
func (r *fakeRenderer) ApplyTexture(tex Texture) { r.applied = append(r.applied, tex) }

// settle delivers the outcome of a pending texture load to every waiter.
func (r *fakeRenderer) settle(uri string, tex Texture, err error) {
	waiters := r.pendLoads[uri]
	delete(r.pendLoads, uri)
	for _, done := range waiters {
		done(tex, err)
	}
}

func (r *fakeRenderer) SetExposure(v float64) { r.exposure = v }
func (r *fakeRenderer) BoundingBox() Vec3     { return r.bbox }

func (r *fakeRenderer) ARSupported() bool { return r.arSupported }
func (r *fakeRenderer) EnterAR() (ARSession, OverlayMode, error) {
	r.enterCalls++
	if r.onEnter != nil {
		r.onEnter()
	}
	if r.enterErr != nil {
		return nil, OverlayNone, r.enterErr
	}
	r.session = &fakeSession{}
	return r.session, r.mode, nil
}

// lastYaw returns the most recent SetYaw value, or -1 if none.
func (r *fakeRenderer) lastYaw() float64 {
	if len(r.yaws) == 0 {
		return -1
	}
	return r.yaws[len(r.yaws)-1]
}

// lastApplied returns the most recent ApplyTexture argument.
// ok is false if ApplyTexture was never called.
func (r *fakeRenderer) lastApplied() (Texture, bool) {
	if len(r.applied) == 0 {
		return nil, false
	}
	return r.applied[len(r.applied)-1], true
}
