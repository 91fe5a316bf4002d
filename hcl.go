package activestep

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top level of an HCL step file.
type hclFile struct {
	Steps []*hclStep `hcl:"step,block"`
}

// hclStep is a single `step "<identifier>" { ... }` block.
type hclStep struct {
	Identifier         string            `hcl:"identifier,label"`
	Type               string            `hcl:"type,optional"`
	Title              string            `hcl:"title,optional"`
	Text               string            `hcl:"text,optional"`
	Detail             string            `hcl:"detail,optional"`
	Duration           float64           `hcl:"duration,optional"`
	SpokenInstructions map[string]string `hcl:"spoken_instructions,optional"`
	Commands           hcl.Expression    `hcl:"commands,optional"`
}

// DecodeHCL parses the step blocks in src. filename is used in diagnostics.
func (l *StepLoader) DecodeHCL(filename string, src []byte) ([]*ActiveStep, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, &StepDefinitionError{Source: filename, Err: fmt.Errorf("failed to parse HCL: %s", diags.Error())}
	}

	var cfg hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, &StepDefinitionError{Source: filename, Err: fmt.Errorf("failed to decode HCL: %s", diags.Error())}
	}

	steps := make([]*ActiveStep, 0, len(cfg.Steps))
	for _, hs := range cfg.Steps {
		names, err := commandNames(hs.Commands)
		if err != nil {
			return nil, &StepDefinitionError{Source: filename, Identifier: hs.Identifier, Field: "commands", Err: err}
		}
		doc := stepDocument{
			Identifier:         hs.Identifier,
			Type:               hs.Type,
			Title:              hs.Title,
			Text:               hs.Text,
			Detail:             hs.Detail,
			Duration:           hs.Duration,
			SpokenInstructions: hs.SpokenInstructions,
			Commands:           names,
		}
		step, err := l.build(&doc, filename)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// commandNames evaluates a commands expression into its string elements.
// A missing or null expression yields no names.
func commandNames(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s", diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() || !val.CanIterateElements() || val.Type().IsMapType() || val.Type().IsObjectType() {
		return nil, fmt.Errorf("commands must be a list of strings, got %s", val.Type().FriendlyName())
	}

	names := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.IsNull() || ev.Type() != cty.String {
			return nil, fmt.Errorf("commands must be a list of strings, found %s element", ev.Type().FriendlyName())
		}
		names = append(names, ev.AsString())
	}
	return names, nil
}
