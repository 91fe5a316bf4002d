package activestep

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grahms/activestep/internal/ctxlog"
)

// StepLoader reads and writes step definition documents.
type StepLoader struct {
	codec      *Codec
	validators *ValidatorRegistry
}

// NewStepLoader creates a loader that decodes commands with codec. A nil
// codec uses the default vocabulary.
func NewStepLoader(codec *Codec, opts ...func(*StepLoader)) *StepLoader {
	if codec == nil {
		codec = NewCodec(nil)
	}
	l := &StepLoader{codec: codec}
	for _, o := range opts {
		o(l)
	}
	return l
}

// WithValidators runs reg against every decoded step.
func WithValidators(reg *ValidatorRegistry) func(*StepLoader) {
	return func(l *StepLoader) { l.validators = reg }
}

// Codec returns the codec used for the commands field.
func (l *StepLoader) Codec() *Codec { return l.codec }

// ContextWithLogger returns a context carrying logger for LoadFile.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return ctxlog.WithLogger(ctx, logger)
}

// DecodeJSON reads a single JSON step object from r.
func (l *StepLoader) DecodeJSON(r io.Reader) (*ActiveStep, error) {
	var doc stepDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &StepDefinitionError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &StepDefinitionError{Err: errors.New("invalid JSON: unexpected content after step object")}
	}
	return l.build(&doc, "")
}

// DecodeYAML reads a single YAML step document from r.
func (l *StepLoader) DecodeYAML(r io.Reader) (*ActiveStep, error) {
	steps, err := l.decodeYAMLStream(r, "")
	if err != nil {
		return nil, err
	}
	if len(steps) != 1 {
		return nil, &StepDefinitionError{Err: fmt.Errorf("expected one YAML document, found %d", len(steps))}
	}
	return steps[0], nil
}

// EncodeJSON writes step as an indented JSON object.
func (l *StepLoader) EncodeJSON(w io.Writer, step *ActiveStep) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newStepDocument(step, l.codec))
}

// EncodeYAML writes step as a YAML document.
func (l *StepLoader) EncodeYAML(w io.Writer, step *ActiveStep) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newStepDocument(step, l.codec)); err != nil {
		return err
	}
	return enc.Close()
}

// LoadFile reads every step defined in path. The format follows the file
// extension: .json (object or array), .yaml/.yml (one step per document)
// or .hcl (step blocks).
func (l *StepLoader) LoadFile(ctx context.Context, path string) ([]*ActiveStep, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading step definitions.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read step file %s: %w", path, err)
	}

	var steps []*ActiveStep
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		steps, err = l.decodeJSONFile(src, path)
	case ".yaml", ".yml":
		steps, err = l.decodeYAMLStream(bytes.NewReader(src), path)
	case ".hcl":
		steps, err = l.DecodeHCL(path, src)
	default:
		return nil, fmt.Errorf("unsupported step file extension %q: %s", ext, path)
	}
	if err != nil {
		logger.Debug("Failed to load step definitions.", "path", path, "error", err)
		return nil, err
	}

	logger.Debug("Loaded step definitions.", "path", path, "steps_found", len(steps))
	return steps, nil
}

func (l *StepLoader) decodeJSONFile(src []byte, source string) ([]*ActiveStep, error) {
	var docs []stepDocument
	if trimmed := bytes.TrimSpace(src); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, &StepDefinitionError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
		}
	} else {
		var doc stepDocument
		if err := json.Unmarshal(src, &doc); err != nil {
			return nil, &StepDefinitionError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
		}
		docs = append(docs, doc)
	}

	steps := make([]*ActiveStep, 0, len(docs))
	for i := range docs {
		step, err := l.build(&docs[i], source)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (l *StepLoader) decodeYAMLStream(r io.Reader, source string) ([]*ActiveStep, error) {
	dec := yaml.NewDecoder(r)
	var steps []*ActiveStep
	for {
		var doc stepDocument
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return steps, nil
		}
		if err != nil {
			return nil, &StepDefinitionError{Source: source, Err: fmt.Errorf("invalid YAML: %w", err)}
		}
		step, err := l.build(&doc, source)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
}

// build converts doc and runs the configured validators.
func (l *StepLoader) build(doc *stepDocument, source string) (*ActiveStep, error) {
	step, err := doc.toStep(l.codec, source)
	if err != nil {
		return nil, err
	}
	if err := l.validators.ValidateStep(step); err != nil {
		return nil, &StepDefinitionError{Source: source, Identifier: step.Identifier, Err: err}
	}
	return step, nil
}
