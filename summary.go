package activestep

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
)

// SequenceType describes how a multi-valued answer is stored.
type SequenceType string

// SequenceArray marks an answer stored as an ordered list.
const SequenceArray SequenceType = "array"

// AnswerType describes the shape of an answer value.
type AnswerType struct {
	BaseType          string
	SequenceType      SequenceType // empty for single values
	SequenceSeparator string       // joins array answers when set
}

// AnswerResult is the answer recorded for one step or question.
type AnswerResult struct {
	Identifier string
	AnswerType AnswerType
	Value      any
}

// TaskResult collects the answers of a task run in recording order.
type TaskResult struct {
	Answers []AnswerResult
}

// Add records an answer.
func (r *TaskResult) Add(a AnswerResult) { r.Answers = append(r.Answers, a) }

// FindAnswerResult returns the most recent answer recorded for identifier.
func (r *TaskResult) FindAnswerResult(identifier string) (AnswerResult, bool) {
	if r == nil {
		return AnswerResult{}, false
	}
	for i := len(r.Answers) - 1; i >= 0; i-- {
		if r.Answers[i].Identifier == identifier {
			return r.Answers[i], true
		}
	}
	return AnswerResult{}, false
}

// ResultSummaryStep displays a previously recorded answer.
type ResultSummaryStep struct {
	ActiveStep
	ResultIdentifier string
	UnitText         string
}

// ResultSummary derives the text a result summary step displays.
type ResultSummary struct {
	Step   *ResultSummaryStep
	Result *TaskResult
}

// UnitText returns the unit shown next to the result, if any.
func (s ResultSummary) UnitText() (string, bool) {
	if s.Step == nil || s.Step.UnitText == "" {
		return "", false
	}
	return s.Step.UnitText, true
}

// ResultText returns the formatted answer for the step's result identifier.
func (s ResultSummary) ResultText() (string, bool) {
	if s.Step == nil || s.Step.ResultIdentifier == "" {
		return "", false
	}
	answer, ok := s.Result.FindAnswerResult(s.Step.ResultIdentifier)
	if !ok || answer.Value == nil {
		return "", false
	}

	if answer.AnswerType.SequenceType == SequenceArray {
		if items, ok := stringItems(answer.Value); ok {
			sep := answer.AnswerType.SequenceSeparator
			if sep == "" {
				sep = ", "
			}
			return strings.Join(items, sep), true
		}
	}
	if answer.AnswerType.SequenceType == "" {
		if n, ok := toFloat(answer.Value); ok {
			return humanize.CommafWithDigits(math.RoundToEven(n), 0), true
		}
	}
	return fmt.Sprint(answer.Value), true
}

func stringItems(v any) ([]string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]string, rv.Len())
	for i := range items {
		items[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return items, true
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
