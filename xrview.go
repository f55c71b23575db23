package xrview

// ARStatus is the session status reported by the rendering/AR host.
// The controller treats any value other than the named constants as
// "not presenting" — new transient statuses must not break placement.
type ARStatus string

const (
	// ARStatusNotPresenting means no AR session is active.
	ARStatusNotPresenting ARStatus = "not-presenting"
	// ARStatusSessionStarted means an AR session is active and presenting.
	ARStatusSessionStarted ARStatus = "session-started"
	// ARStatusFailed means session negotiation or presentation failed.
	ARStatusFailed ARStatus = "failed"
)

// StatusChange carries one AR status notification from the host.
// Reason is optional failure detail; empty outside the failed status.
type StatusChange struct {
	Status ARStatus
	Reason string
}

// OverlayMode is the overlay presentation type negotiated for an AR session.
type OverlayMode string

const (
	OverlayNone       OverlayMode = ""            // no session / no overlay
	OverlayScreen     OverlayMode = "screen"      // flat screen-space overlay
	OverlayFloating   OverlayMode = "floating"    // overlay floats in the scene
	OverlayHeadLocked OverlayMode = "head-locked" // overlay follows the viewer's head
)

// Affordance describes the state the AR entry control should present.
type Affordance uint8

const (
	AffordanceStart       Affordance = iota // no session; control starts AR
	AffordanceExit                          // session active; control exits AR
	AffordanceRetry                         // last attempt failed; control retries
	AffordanceUnsupported                   // platform cannot start AR at all
)

// String returns the control label for the affordance state.
func (a Affordance) String() string {
	switch a {
	case AffordanceExit:
		return "Exit AR"
	case AffordanceRetry:
		return "Retry AR"
	case AffordanceUnsupported:
		return "AR unavailable"
	default:
		return "Start AR"
	}
}

// Vec3 is a 3D extent in meters, as reported by the renderer's bounding box.
type Vec3 struct {
	X, Y, Z float64
}

// Role is a semantic animation role independent of the renderer's clip names.
type Role string

const (
	RoleChair   Role = "chair"   // the default resting pose animation
	RoleStretch Role = "stretch" // the alternate stretch animation
)
