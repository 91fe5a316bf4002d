package activestep

import (
	"fmt"
	"math/bits"
)

// Commands is a set of active-step UI commands packed into a bitmask.
// The zero value is the empty set.
type Commands uint64

const (
	// PlaySoundOnStart plays a default sound when the step starts.
	PlaySoundOnStart Commands = 1 << iota
	// PlaySoundOnFinish plays a default sound when the step finishes.
	PlaySoundOnFinish
	// VibrateOnStart vibrates when the step starts.
	VibrateOnStart
	// VibrateOnFinish vibrates when the step finishes.
	VibrateOnFinish
	// StartTimerAutomatically starts the countdown timer when the step starts.
	StartTimerAutomatically
	// ContinueOnFinish transitions to the next step when the step finishes.
	ContinueOnFinish
)

const (
	// PlaySound plays a sound when the step starts and when it finishes.
	PlaySound = PlaySoundOnStart | PlaySoundOnFinish
	// Vibrate vibrates when the step starts and when it finishes.
	Vibrate = VibrateOnStart | VibrateOnFinish
	// TransitionAutomatically starts the timer on start and continues on finish.
	TransitionAutomatically = StartTimerAutomatically | ContinueOnFinish

	// DefaultCommands is the command set of a step that declares none.
	DefaultCommands Commands = 0
)

// MakeCommands wraps a raw bitmask. Bits are not checked against any vocabulary.
func MakeCommands(raw uint64) Commands { return Commands(raw) }

// Raw returns the underlying bitmask.
func (c Commands) Raw() uint64 { return uint64(c) }

// IsEmpty reports whether no command is set.
func (c Commands) IsEmpty() bool { return c == 0 }

// Union returns the bitwise OR of c and others.
func (c Commands) Union(others ...Commands) Commands {
	for _, o := range others {
		c |= o
	}
	return c
}

// Has reports whether every bit of other is set in c.
func (c Commands) Has(other Commands) bool { return c&other == other }

// IsPrimitive reports whether c is exactly one bit.
func (c Commands) IsPrimitive() bool { return bits.OnesCount64(uint64(c)) == 1 }

// Primitives splits c into its single-bit members, lowest bit first.
func (c Commands) Primitives() []Commands {
	out := make([]Commands, 0, bits.OnesCount64(uint64(c)))
	for rest := uint64(c); rest != 0; rest &= rest - 1 {
		out = append(out, Commands(rest&-rest))
	}
	return out
}

func (c Commands) String() string { return fmt.Sprintf("%#x", uint64(c)) }
