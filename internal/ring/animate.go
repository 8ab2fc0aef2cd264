package ring

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultSmoothing = 5.0
	DefaultFPS       = 60

	// SnapThreshold is the distance at which the displayed value jumps to its target.
	SnapThreshold = 0.1

	springFrequency = 6.0
	springDamping   = 1.0
)

// Tick advances the displayed value one frame toward target and reports
// whether it has settled. smoothing below 1 is treated as 1; a non-finite
// smoothing falls back to DefaultSmoothing.
func Tick(animated, target, smoothing float64) (float64, bool) {
	switch {
	case !finite(smoothing):
		smoothing = DefaultSmoothing
	case smoothing < 1:
		smoothing = 1
	}
	if !finite(animated) || math.Abs(animated-target) <= SnapThreshold {
		return target, true
	}
	next := animated + (target-animated)/smoothing
	if math.Abs(next-target) <= SnapThreshold {
		return target, true
	}
	return next, false
}

type Easing string

const (
	EasingExponential Easing = "exponential"
	EasingSpring      Easing = "spring"
)

// ValidEasing reports whether e names a supported easing.
func ValidEasing(e Easing) bool {
	return e == EasingExponential || e == EasingSpring
}

// State is the animation state.
type State int

const (
	Settled State = iota
	Settling
)

func (s State) String() string {
	if s == Settling {
		return "settling"
	}
	return "settled"
}

// Animator owns the displayed value and eases it toward Target.
type Animator struct {
	Value     float64
	Target    float64
	Smoothing float64

	easing   Easing
	spring   harmonica.Spring
	velocity float64
}

// NewAnimator creates a settled animator at zero. Unknown easings fall back
// to exponential.
func NewAnimator(easing Easing, smoothing float64, fps int) *Animator {
	if !ValidEasing(easing) {
		easing = EasingExponential
	}
	if smoothing < 1 || !finite(smoothing) {
		smoothing = DefaultSmoothing
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator{
		Smoothing: smoothing,
		easing:    easing,
		spring:    harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

func (a *Animator) Easing() Easing { return a.easing }

// SetTarget points the animation at a new value. A change within the snap
// threshold of the displayed value settles immediately.
func (a *Animator) SetTarget(target float64) State {
	a.Target = target
	if math.Abs(a.Value-target) <= SnapThreshold {
		a.settle()
	}
	return a.State()
}

// Jump moves both the displayed value and the target without animating.
func (a *Animator) Jump(v float64) {
	a.Target = v
	a.settle()
}

// Step advances one frame. It returns true while more frames are needed.
func (a *Animator) Step() bool {
	if a.State() == Settled {
		return false
	}
	switch a.easing {
	case EasingSpring:
		pos, vel := a.spring.Update(a.Value, a.velocity, a.Target)
		if !finite(pos) || math.Abs(pos-a.Target) <= SnapThreshold {
			a.settle()
			return false
		}
		a.Value, a.velocity = pos, vel
		return true
	default:
		next, done := Tick(a.Value, a.Target, a.Smoothing)
		a.Value = next
		if done {
			a.velocity = 0
		}
		return !done
	}
}

func (a *Animator) State() State {
	if a.Value == a.Target {
		return Settled
	}
	return Settling
}

// Run steps until settled or maxFrames is reached and returns every value
// shown, starting with the current one.
func (a *Animator) Run(maxFrames int) []float64 {
	values := []float64{a.Value}
	for i := 0; i < maxFrames && a.Step(); i++ {
		values = append(values, a.Value)
	}
	if a.State() == Settled && values[len(values)-1] != a.Value {
		values = append(values, a.Value)
	}
	return values
}

func (a *Animator) settle() {
	a.Value = a.Target
	a.velocity = 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
