package activestep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Errors(t *testing.T) {
	t.Run("should describe each flag error", func(t *testing.T) {
		assert.Equal(t, `unknown command flag "bogus"`, NewUnknownFlagError("bogus").Error())
		assert.Equal(t, `flag "playSound" already registered as 0x3, refusing 0x1`,
			NewDuplicateFlagError("playSound", PlaySound, PlaySoundOnStart).Error())
		assert.Equal(t, `flag "beep" collides with "playSoundOnStart" on bit 0x1`,
			NewFlagCollisionError("beep", "playSoundOnStart", PlaySoundOnStart).Error())
		assert.Equal(t, `composite flag "ab" uses unregistered bits 0x2`,
			NewCompositeFlagError("ab", 2).Error())
		assert.Equal(t, `flag "": name is empty`,
			NewInvalidFlagError("", "name is empty").Error())
	})

	t.Run("should include source, step and field in step definition errors", func(t *testing.T) {
		err := &StepDefinitionError{
			Source:     "steps.json",
			Identifier: "walk",
			Field:      "commands",
			Err:        NewUnknownFlagError("bogus"),
		}
		assert.Equal(t, `step definition in steps.json (step "walk") field "commands": unknown command flag "bogus"`, err.Error())

		var unknown *UnknownFlagError
		assert.True(t, errors.As(err, &unknown))
	})

	t.Run("should omit empty context", func(t *testing.T) {
		err := &StepDefinitionError{Err: errors.New("boom")}
		assert.Equal(t, "step definition: boom", err.Error())
		assert.Equal(t, "boom", errors.Unwrap(err).Error())
	})
}
