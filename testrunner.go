package thicket

import (
	"encoding/json"
	"fmt"
)

// testStep is a single action in a test script. Control indexes refer to
// the order in which controls were added to the scene.
type testStep struct {
	Action  string `json:"action"`
	Label   string `json:"label,omitempty"`
	Control int    `json:"control,omitempty"`
	On      bool   `json:"on,omitempty"`
	Frames  int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Controls driven by test scripts implement some of these.
type (
	toggler   interface{ Toggle() }
	hoverable interface{ SetHovered(bool) }
	disabler  interface{ SetDisabled(bool) }
)

// TestRunner sequences control state changes and screenshots across frames
// for automated visual testing of skins. Attach to a Scene via
// SetTestRunner.
//
// Supported actions: "screenshot" (label), "toggle" (control),
// "hover" (control, on), "disable" (control, on) and "wait" (frames).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("thicket: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("thicket: parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner advances one
// step per Scene.Update, before the paint trees are reconciled.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
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
	case "screenshot":
		s.Screenshot(st.Label)
	case "toggle":
		if c, ok := s.controlAt(st.Control).(toggler); ok {
			c.Toggle()
		}
	case "hover":
		if c, ok := s.controlAt(st.Control).(hoverable); ok {
			c.SetHovered(st.On)
		}
	case "disable":
		if c, ok := s.controlAt(st.Control).(disabler); ok {
			c.SetDisabled(st.On)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		logger().Warn("thicket: unknown test step", "action", st.Action, "index", r.cursor-1)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
