package activestep

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// ActiveStep is a timed step whose UI behavior is driven by Commands.
type ActiveStep struct {
	Identifier string
	Type       string
	Title      string
	Text       string
	Detail     string
	Duration   time.Duration
	// SpokenInstructions maps a time offset in seconds (or "end") to text.
	SpokenInstructions map[string]string
	Commands           Commands
}

// stepDocument is the persisted form shared by the JSON and YAML codecs.
type stepDocument struct {
	Identifier         string            `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Type               string            `json:"type,omitempty" yaml:"type,omitempty"`
	Title              string            `json:"title,omitempty" yaml:"title,omitempty"`
	Text               string            `json:"text,omitempty" yaml:"text,omitempty"`
	Detail             string            `json:"detail,omitempty" yaml:"detail,omitempty"`
	Duration           float64           `json:"duration,omitempty" yaml:"duration,omitempty"`
	SpokenInstructions map[string]string `json:"spokenInstructions,omitempty" yaml:"spokenInstructions,omitempty"`
	Commands           []string          `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// maxDurationSeconds is the first value that no longer fits a time.Duration.
const maxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)

var errInvalidDuration = errors.New("duration must be a non-negative number of seconds")

// toStep validates doc and decodes its commands with codec.
func (doc *stepDocument) toStep(codec *Codec, source string) (*ActiveStep, error) {
	step := &ActiveStep{
		Identifier:         doc.Identifier,
		Type:               doc.Type,
		Title:              doc.Title,
		Text:               doc.Text,
		Detail:             doc.Detail,
		SpokenInstructions: doc.SpokenInstructions,
	}
	if step.Identifier == "" {
		step.Identifier = uuid.NewString()
	}
	d, err := secondsToDuration(doc.Duration)
	if err != nil {
		return nil, &StepDefinitionError{Source: source, Identifier: step.Identifier, Field: "duration", Err: err}
	}
	step.Duration = d

	cmds, err := codec.Decode(doc.Commands)
	if err != nil {
		return nil, &StepDefinitionError{Source: source, Identifier: step.Identifier, Field: "commands", Err: err}
	}
	step.Commands = cmds
	return step, nil
}

func newStepDocument(step *ActiveStep, codec *Codec) *stepDocument {
	return &stepDocument{
		Identifier:         step.Identifier,
		Type:               step.Type,
		Title:              step.Title,
		Text:               step.Text,
		Detail:             step.Detail,
		Duration:           step.Duration.Seconds(),
		SpokenInstructions: step.SpokenInstructions,
		Commands:           codec.EncodeNames(step.Commands),
	}
}

func secondsToDuration(s float64) (time.Duration, error) {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) || s >= maxDurationSeconds {
		return 0, errInvalidDuration
	}
	return time.Duration(s * float64(time.Second)), nil
}
