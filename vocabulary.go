package activestep

import (
	"sync"
)

// Flag is a named command. Value is a single bit for a primitive flag or a
// union of registered bits for a composite flag.
type Flag struct {
	Name  string
	Value Commands
}

// DefaultFlags returns the built-in command vocabulary in registration order.
func DefaultFlags() []Flag {
	return []Flag{
		{Name: "playSoundOnStart", Value: PlaySoundOnStart},
		{Name: "playSoundOnFinish", Value: PlaySoundOnFinish},
		{Name: "playSound", Value: PlaySound},
		{Name: "vibrateOnStart", Value: VibrateOnStart},
		{Name: "vibrateOnFinish", Value: VibrateOnFinish},
		{Name: "vibrate", Value: Vibrate},
		{Name: "startTimerAutomatically", Value: StartTimerAutomatically},
		{Name: "continueOnFinish", Value: ContinueOnFinish},
		{Name: "transitionAutomatically", Value: TransitionAutomatically},
	}
}

// Vocabulary maps command identifiers to bit values. It is safe for
// concurrent use; registration is serialized against lookups.
type Vocabulary struct {
	mu      sync.RWMutex
	byName  map[string]Commands
	owners  map[Commands]string // primitive bit -> name
	order   []string
	covered Commands
}

// NewVocabulary creates a vocabulary holding flags, registered in order.
func NewVocabulary(flags ...Flag) (*Vocabulary, error) {
	v := &Vocabulary{
		byName: make(map[string]Commands, len(flags)),
		owners: make(map[Commands]string),
	}
	for _, f := range flags {
		if err := v.Register(f); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NewDefaultVocabulary creates a vocabulary seeded with DefaultFlags.
func NewDefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(DefaultFlags()...)
	if err != nil {
		panic("activestep: invalid default vocabulary: " + err.Error())
	}
	return v
}

// Register adds f to the vocabulary. Registering an existing name with the
// same value is a no-op.
func (v *Vocabulary) Register(f Flag) error {
	if f.Name == "" {
		return NewInvalidFlagError(f.Name, "name is empty")
	}
	if f.Value == 0 {
		return NewInvalidFlagError(f.Name, "value is zero")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if existing, ok := v.byName[f.Name]; ok {
		if existing == f.Value {
			return nil
		}
		return NewDuplicateFlagError(f.Name, existing, f.Value)
	}

	if f.Value.IsPrimitive() {
		if owner, ok := v.owners[f.Value]; ok {
			return NewFlagCollisionError(f.Name, owner, f.Value)
		}
		v.owners[f.Value] = f.Name
		v.covered |= f.Value
	} else if missing := f.Value &^ v.covered; missing != 0 {
		return NewCompositeFlagError(f.Name, missing)
	}

	v.byName[f.Name] = f.Value
	v.order = append(v.order, f.Name)
	return nil
}

// Lookup returns the value registered for name.
func (v *Vocabulary) Lookup(name string) (Commands, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	c, ok := v.byName[name]
	return c, ok
}

// Names returns the registered identifiers in registration order.
func (v *Vocabulary) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]string(nil), v.order...)
}

// Flags returns a snapshot of the registered flags in registration order.
func (v *Vocabulary) Flags() []Flag {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Flag, len(v.order))
	for i, n := range v.order {
		out[i] = Flag{Name: n, Value: v.byName[n]}
	}
	return out
}

// Len returns the number of registered flags.
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.order)
}
