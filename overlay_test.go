package xrview

import (
	"errors"
	"testing"
)

// newOverlayFixture builds a controller with a fresh element tree.
func newOverlayFixture(r *fakeRenderer) (*OverlayController, *Element, *Element, *Element) {
	overlay := NewElement("overlay")
	host := NewElement("host")
	slot := NewElement("slot")
	c := NewOverlayController(r, overlay, host, slot)
	return c, overlay, host, slot
}

func TestOverlayStartsHosted(t *testing.T) {
	c, overlay, host, _ := newOverlayFixture(newFakeRenderer())

	if overlay.Parent != host {
		t.Error("overlay should start under host")
	}
	if c.Attached() {
		t.Error("Attached should be false initially")
	}
	if c.Affordance() != AffordanceStart {
		t.Errorf("Affordance = %v, want AffordanceStart", c.Affordance())
	}
}

func TestAttachIsIdempotent(t *testing.T) {
	c, overlay, _, slot := newOverlayFixture(newFakeRenderer())

	c.Attach()
	c.Attach()

	if overlay.Parent != slot {
		t.Error("overlay should be under slot")
	}
	if slot.NumChildren() != 1 {
		t.Errorf("slot.NumChildren = %d, want 1 (no duplicates)", slot.NumChildren())
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	c, overlay, host, _ := newOverlayFixture(newFakeRenderer())

	c.Attach()
	c.Restore()
	c.Restore()

	if overlay.Parent != host {
		t.Error("overlay should be back under host")
	}
	if host.NumChildren() != 1 {
		t.Errorf("host.NumChildren = %d, want 1 (no duplicates)", host.NumChildren())
	}
}

func TestStatusSequencesConvergePlacement(t *testing.T) {
	// The overlay's parent after the final status must match that status,
	// no matter how many redundant notifications were delivered.
	sequences := [][]ARStatus{
		{ARStatusSessionStarted},
		{ARStatusSessionStarted, ARStatusSessionStarted, ARStatusSessionStarted},
		{ARStatusSessionStarted, ARStatusNotPresenting},
		{ARStatusSessionStarted, ARStatusFailed},
		{ARStatusNotPresenting, ARStatusNotPresenting},
		{ARStatusFailed, ARStatusSessionStarted},
		{ARStatusSessionStarted, ARStatusFailed, ARStatusSessionStarted, ARStatusNotPresenting},
		{"some-future-status"},
	}
	for _, seq := range sequences {
		c, overlay, host, slot := newOverlayFixture(newFakeRenderer())
		for _, status := range seq {
			c.HandleStatusChange(StatusChange{Status: status})
		}
		final := seq[len(seq)-1]
		if final == ARStatusSessionStarted {
			if overlay.Parent != slot {
				t.Errorf("seq %v: overlay under %v, want slot", seq, overlay.Parent)
			}
		} else {
			if overlay.Parent != host {
				t.Errorf("seq %v: overlay under %v, want host", seq, overlay.Parent)
			}
		}
		if slot.NumChildren()+host.NumChildren() != 1 {
			t.Errorf("seq %v: overlay has %d placements, want exactly 1",
				seq, slot.NumChildren()+host.NumChildren())
		}
	}
}

func TestSessionStartedUpdatesAffordanceAndReadout(t *testing.T) {
	r := newFakeRenderer()
	c, _, _, _ := newOverlayFixture(r)

	var affordances []Affordance
	c.OnAffordance = func(a Affordance) { affordances = append(affordances, a) }

	c.ToggleSession() // negotiates mode
	c.HandleStatusChange(StatusChange{Status: ARStatusSessionStarted})

	if c.Affordance() != AffordanceExit {
		t.Errorf("Affordance = %v, want AffordanceExit", c.Affordance())
	}
	if c.Mode() != OverlayScreen {
		t.Errorf("Mode = %q, want screen", c.Mode())
	}
	if c.Readout() != "AR session active (screen overlay)" {
		t.Errorf("Readout = %q", c.Readout())
	}
	if len(affordances) == 0 || affordances[len(affordances)-1] != AffordanceExit {
		t.Errorf("OnAffordance calls = %v, want final AffordanceExit", affordances)
	}
}

func TestFailedStatusRestoresWithReason(t *testing.T) {
	c, overlay, host, _ := newOverlayFixture(newFakeRenderer())

	c.Attach()
	c.HandleStatusChange(StatusChange{Status: ARStatusFailed, Reason: "camera permission denied"})

	if overlay.Parent != host {
		t.Error("overlay should be restored on failure")
	}
	if c.Affordance() != AffordanceRetry {
		t.Errorf("Affordance = %v, want AffordanceRetry", c.Affordance())
	}
	if c.Readout() != "camera permission denied" {
		t.Errorf("Readout = %q, want the failure reason", c.Readout())
	}
}

func TestFailedStatusWithoutReasonUsesFallback(t *testing.T) {
	c, _, _, _ := newOverlayFixture(newFakeRenderer())

	c.HandleStatusChange(StatusChange{Status: ARStatusFailed})

	if c.Readout() != "AR session failed" {
		t.Errorf("Readout = %q, want generic fallback", c.Readout())
	}
}

func TestEndedStatusResetsToStart(t *testing.T) {
	r := newFakeRenderer()
	c, overlay, host, _ := newOverlayFixture(r)

	c.ToggleSession()
	c.HandleStatusChange(StatusChange{Status: ARStatusSessionStarted})
	c.HandleStatusChange(StatusChange{Status: ARStatusNotPresenting})

	if overlay.Parent != host {
		t.Error("overlay should be hosted after session end")
	}
	if c.Affordance() != AffordanceStart {
		t.Errorf("Affordance = %v, want AffordanceStart", c.Affordance())
	}
	if c.Mode() != OverlayNone {
		t.Errorf("Mode = %q, want none", c.Mode())
	}
}

func TestToggleSessionUnsupported(t *testing.T) {
	r := newFakeRenderer()
	r.arSupported = false
	c, overlay, host, _ := newOverlayFixture(r)

	c.ToggleSession()

	if r.enterCalls != 0 {
		t.Error("EnterAR should not be called when unsupported")
	}
	if overlay.Parent != host {
		t.Error("placement should be untouched when unsupported")
	}
	if c.Affordance() != AffordanceUnsupported {
		t.Errorf("Affordance = %v, want AffordanceUnsupported", c.Affordance())
	}
}

func TestToggleSessionAttachesBeforeEntry(t *testing.T) {
	r := newFakeRenderer()
	c, _, _, _ := newOverlayFixture(r)

	attachedAtEntry := false
	r.onEnter = func() { attachedAtEntry = c.Attached() }

	c.ToggleSession()

	if !attachedAtEntry {
		t.Error("overlay must already be in the AR slot when EnterAR runs")
	}
	if r.enterCalls != 1 {
		t.Errorf("enterCalls = %d, want 1", r.enterCalls)
	}
}

func TestToggleSessionEntryFailureRollsBack(t *testing.T) {
	r := newFakeRenderer()
	r.enterErr = errors.New("session rejected")
	c, overlay, host, _ := newOverlayFixture(r)

	c.ToggleSession()

	if overlay.Parent != host {
		t.Error("overlay should be restored after entry failure")
	}
	if c.Affordance() != AffordanceRetry {
		t.Errorf("Affordance = %v, want AffordanceRetry", c.Affordance())
	}
	if c.Readout() != "Failed to start AR session" {
		t.Errorf("Readout = %q, want generic start failure", c.Readout())
	}
}

func TestToggleSessionWithActiveSessionEndsIt(t *testing.T) {
	r := newFakeRenderer()
	c, overlay, _, slot := newOverlayFixture(r)

	c.ToggleSession()
	c.HandleStatusChange(StatusChange{Status: ARStatusSessionStarted})

	c.ToggleSession()

	if r.session.ended != 1 {
		t.Errorf("session.ended = %d, want 1", r.session.ended)
	}
	// Placement changes only on the subsequent status notification.
	if overlay.Parent != slot {
		t.Error("overlay should remain attached until teardown status arrives")
	}

	c.HandleStatusChange(StatusChange{Status: ARStatusNotPresenting})
	if c.Attached() {
		t.Error("overlay should be hosted after teardown status")
	}
}

func TestToggleSessionSessionEndErrorIsNonFatal(t *testing.T) {
	r := newFakeRenderer()
	c, _, _, _ := newOverlayFixture(r)

	c.ToggleSession()
	c.HandleStatusChange(StatusChange{Status: ARStatusSessionStarted})
	r.session.endErr = errors.New("already ended")

	c.ToggleSession() // must not panic or change affordance

	if c.Affordance() != AffordanceExit {
		t.Errorf("Affordance = %v, want AffordanceExit until status arrives", c.Affordance())
	}
}

func TestRetryAfterFailureCanSucceed(t *testing.T) {
	r := newFakeRenderer()
	r.enterErr = errors.New("busy")
	c, _, _, _ := newOverlayFixture(r)

	c.ToggleSession()
	if c.Affordance() != AffordanceRetry {
		t.Fatalf("Affordance = %v, want AffordanceRetry", c.Affordance())
	}

	r.enterErr = nil
	c.ToggleSession()
	c.HandleStatusChange(StatusChange{Status: ARStatusSessionStarted})

	if !c.Attached() {
		t.Error("overlay should be attached after successful retry")
	}
	if c.Affordance() != AffordanceExit {
		t.Errorf("Affordance = %v, want AffordanceExit", c.Affordance())
	}
}

func TestOnReadoutFiresOnChangeOnly(t *testing.T) {
	c, _, _, _ := newOverlayFixture(newFakeRenderer())

	var readouts []string
	c.OnReadout = func(text string) { readouts = append(readouts, text) }

	c.HandleStatusChange(StatusChange{Status: ARStatusFailed, Reason: "x"})
	c.HandleStatusChange(StatusChange{Status: ARStatusFailed, Reason: "x"})

	if len(readouts) != 1 {
		t.Errorf("OnReadout fired %d times, want 1 for identical text", len(readouts))
	}
}
