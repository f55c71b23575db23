package xrview

import "time"

// Texture is an opaque handle to a texture loaded by the renderer.
type Texture any

// ARSession is the handle to an active AR session. End requests session
// termination; the resulting teardown is reported asynchronously through
// a StatusChange notification, not through the return value.
type ARSession interface {
	End() error
}

// ModelRenderer is the boundary to the 3D rendering and AR host that owns
// the model, materials, animations, and session negotiation. All calls are
// made from the UI loop; implementations must not block.
type ModelRenderer interface {
	// SetYaw sets the model's yaw orientation attribute in degrees.
	SetYaw(degrees float64)
	// RequestRender asks the host to redraw with the current state.
	RequestRender()

	// AnimationNames returns the renderer-reported animation identifiers
	// for the loaded model. Empty until a model has loaded.
	AnimationNames() []string
	// SetAnimation selects the active animation by renderer-native name,
	// with the given loop flag and cross-fade blend duration.
	SetAnimation(name string, loop bool, crossFade time.Duration)
	// Play starts playback of the active animation for the given number
	// of repetitions.
	Play(repetitions int)
	// Pause freezes playback on the current frame.
	Pause()

	// HasTextureSlot reports whether the loaded model's material exposes
	// a texture slot that ApplyTexture can target.
	HasTextureSlot() bool
	// CreateTexture asynchronously loads a texture from the given URI.
	// done is invoked on the UI loop with the handle or the load error.
	CreateTexture(uri string, done func(Texture, error))
	// ApplyTexture sets the model's texture. A nil texture restores the
	// model's original material.
	ApplyTexture(tex Texture)

	// SetExposure sets the render exposure value.
	SetExposure(v float64)
	// BoundingBox returns the model's current extent in meters.
	BoundingBox() Vec3

	// ARSupported reports whether AR activation is available on this
	// platform.
	ARSupported() bool
	// EnterAR requests entry into an AR session. The overlay element must
	// already be parented under the AR slot when this is called. A nil
	// error means the request was accepted; session activation itself is
	// reported via a subsequent StatusChange.
	EnterAR() (ARSession, OverlayMode, error)
}
