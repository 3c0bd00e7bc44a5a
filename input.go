package main

import (
	"sync"

	"github.com/eiannone/keyboard"
)

// InputState mirrors the §6 input contract's enumerated actions.
type InputState struct {
	StrafeLeft, StrafeRight   bool
	Up, Down                  bool
	Forward, Backward         bool
	YawLeft, YawRight         bool
	PitchUp, PitchDown        bool
	FOVWider, FOVNarrower     bool
	Quit                      bool
	ToggleFill                bool
	ToggleWireframe           bool
	ToggleFog                 bool
	ToggleFaceLighting        bool
	ToggleLightTracksCamera   bool
	ToggleVertexColor         bool
	ToggleShadeFlat           bool
	ToggleTextureFilter       bool
	ToggleBloom               bool
	ToggleDOFBlur             bool
	ToggleSpin                bool
}

// InputManager polls the keyboard on a background goroutine without
// blocking the frame loop, grounded on the teacher's win_input.go
// SilentInputManager (same github.com/eiannone/keyboard dependency,
// same map[rune]bool + sync.RWMutex shape). The derived InputState is
// remapped to spec.md §6's key table instead of the teacher's own
// WASD/IJKL/orbit scheme.
//
// Numpad digits aren't reliably distinguishable from the top-row digit
// keys through a plain terminal byte stream (neither eiannone/keyboard
// nor the terminal itself tags NumLock-off keypad input separately in
// the general case), so the numpad pitch/roll and FOV nudge keys from
// §6's table (8/2, 4/6) have no working binding here: giving the same
// rune two meanings would make every top-row digit toggle also nudge
// the camera. PitchUp/PitchDown/FOVWider/FOVNarrower are always false;
// see DESIGN.md for this resolved ambiguity.
type InputManager struct {
	mu      sync.RWMutex
	keys    map[rune]bool
	special map[keyboard.Key]bool
	stop    chan struct{}
	running bool
}

func NewInputManager() *InputManager {
	return &InputManager{
		keys:    make(map[rune]bool),
		special: make(map[keyboard.Key]bool),
		stop:    make(chan struct{}),
	}
}

func (im *InputManager) Start() error {
	if im.running {
		return nil
	}
	if err := keyboard.Open(); err != nil {
		return err
	}
	im.running = true

	go func() {
		for {
			select {
			case <-im.stop:
				return
			default:
				char, key, err := keyboard.GetKey()
				if err != nil {
					continue
				}
				im.mu.Lock()
				if char != 0 {
					im.keys[char] = true
				}
				if key == keyboard.KeyEsc {
					im.special[keyboard.KeyEsc] = true
				} else if key != 0 {
					im.special[key] = true
				}
				im.mu.Unlock()
			}
		}
	}()
	return nil
}

func (im *InputManager) Stop() {
	if !im.running {
		return
	}
	im.running = false
	close(im.stop)
	keyboard.Close()
}

// Poll returns the current InputState and clears every recorded key.
// Toggle keys are edge-triggered; the keyboard library reports presses
// but not releases, so velocity keys also act as one-shot-per-poll
// impulses, matching how the teacher's CameraController consumes
// InputState once per frame.
func (im *InputManager) Poll() InputState {
	im.mu.Lock()
	defer im.mu.Unlock()

	s := InputState{
		StrafeLeft:              im.keys['a'] || im.keys['A'],
		StrafeRight:             im.keys['d'] || im.keys['D'],
		Up:                      im.special[keyboard.KeyArrowUp],
		Down:                    im.special[keyboard.KeyArrowDown],
		Forward:                 im.keys['w'] || im.keys['W'],
		Backward:                im.keys['s'] || im.keys['S'],
		YawLeft:                 im.special[keyboard.KeyArrowLeft],
		YawRight:                im.special[keyboard.KeyArrowRight],
		Quit:                    im.special[keyboard.KeyEsc],
		ToggleFill:              im.keys['1'],
		ToggleWireframe:         im.keys['2'],
		ToggleFog:               im.keys['3'],
		ToggleFaceLighting:      im.keys['4'],
		ToggleLightTracksCamera: im.keys['5'],
		ToggleVertexColor:       im.keys['6'],
		ToggleShadeFlat:         im.keys['7'],
		ToggleTextureFilter:     im.keys['8'],
		ToggleBloom:             im.keys['9'],
		ToggleDOFBlur:           im.keys['0'],
		ToggleSpin:              im.special[keyboard.KeySpace],
	}

	im.keys = make(map[rune]bool)
	im.special = make(map[keyboard.Key]bool)
	return s
}

// ApplyInput updates camera velocities and config toggles from one
// polled InputState, implementing the velocity/toggle split of §6.
func ApplyInput(s InputState, cam *Camera, cfg *Config) {
	const moveSpeed = 2.0
	const turnSpeed = 0.05
	const fovStep = 0.05

	cam.Velocity = Vec3{}
	if s.StrafeLeft {
		cam.Velocity.X -= moveSpeed
	}
	if s.StrafeRight {
		cam.Velocity.X += moveSpeed
	}
	if s.Up {
		cam.Velocity.Y += moveSpeed
	}
	if s.Down {
		cam.Velocity.Y -= moveSpeed
	}
	if s.Forward {
		cam.Velocity.Z += moveSpeed
	}
	if s.Backward {
		cam.Velocity.Z -= moveSpeed
	}

	cam.YawVelocity = 0
	if s.YawLeft {
		cam.YawVelocity -= turnSpeed
	}
	if s.YawRight {
		cam.YawVelocity += turnSpeed
	}

	cam.PitchVel = 0
	if s.PitchUp {
		cam.PitchVel += turnSpeed
	}
	if s.PitchDown {
		cam.PitchVel -= turnSpeed
	}

	if s.FOVWider {
		cfg.FOV += fovStep
	}
	if s.FOVNarrower {
		cfg.FOV = maxF(0.01, cfg.FOV-fovStep)
	}

	if s.ToggleFill {
		cfg.FillTris = !cfg.FillTris
	}
	if s.ToggleWireframe {
		cfg.Wireframe = !cfg.Wireframe
	}
	if s.ToggleFog {
		cfg.Fog = !cfg.Fog
	}
	if s.ToggleFaceLighting {
		cfg.FaceLighting = !cfg.FaceLighting
	}
	if s.ToggleLightTracksCamera {
		cfg.LightTracksCamera = !cfg.LightTracksCamera
	}
	if s.ToggleVertexColor {
		cfg.VertexColor = !cfg.VertexColor
	}
	if s.ToggleShadeFlat {
		cfg.ShadeFlat = !cfg.ShadeFlat
	}
	if s.ToggleTextureFilter {
		cfg.TextureFilter = !cfg.TextureFilter
	}
	if s.ToggleBloom {
		cfg.Bloom = !cfg.Bloom
	}
	if s.ToggleDOFBlur {
		cfg.DOFBlur = !cfg.DOFBlur
	}
	if s.ToggleSpin {
		cfg.Spin = !cfg.Spin
	}
}
