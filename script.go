package xrview

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	Status string  `json:"status,omitempty"`
	Reason string  `json:"reason,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences control clicks and host notifications across
// frames for automated interaction testing. Attach to a Viewer via
// SetScriptRunner; one step executes per frame.
//
// Supported actions: "ar-toggle", "animation-toggle", "texture-cycle",
// "rotate", "exposure" (value), "status" (status, reason),
// "model-load", "playback-finished", "interaction-start",
// "interaction-end", "pointer", "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the viewer. The runner's
// step method is called at the top of each Viewer.Update.
func (v *Viewer) SetScriptRunner(runner *ScriptRunner) {
	v.runner = runner
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step executes the next due script step. Called from Viewer.Update.
func (r *ScriptRunner) step(v *Viewer) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "ar-toggle":
		v.ToggleAR()
	case "animation-toggle":
		v.ToggleAnimation()
	case "texture-cycle":
		v.CycleTexture()
	case "rotate":
		v.Rotate()
	case "exposure":
		v.SetExposure(st.Value)
	case "status":
		v.HandleStatusChange(StatusChange{Status: ARStatus(st.Status), Reason: st.Reason})
	case "model-load":
		v.HandleModelLoad()
	case "playback-finished":
		v.HandlePlaybackFinished()
	case "interaction-start":
		v.HandleInteractionStart()
	case "interaction-end":
		v.HandleInteractionEnd()
	case "pointer":
		v.HandlePointer()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		warnf("interaction script: unknown action %q", st.Action)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
