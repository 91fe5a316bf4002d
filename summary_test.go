package activestep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSummary(answer AnswerResult, unit string) ResultSummary {
	result := &TaskResult{}
	result.Add(answer)
	return ResultSummary{
		Step: &ResultSummaryStep{
			ActiveStep:       ActiveStep{Identifier: "summary"},
			ResultIdentifier: answer.Identifier,
			UnitText:         unit,
		},
		Result: result,
	}
}

func Test_ResultSummary(t *testing.T) {
	t.Run("should format numbers without fraction digits", func(t *testing.T) {
		s := newSummary(AnswerResult{Identifier: "steps", AnswerType: AnswerType{BaseType: "decimal"}, Value: 1234.6}, "steps")
		text, ok := s.ResultText()
		assert.True(t, ok)
		assert.Equal(t, "1,235", text)

		unit, ok := s.UnitText()
		assert.True(t, ok)
		assert.Equal(t, "steps", unit)
	})

	t.Run("should format integers with grouping", func(t *testing.T) {
		s := newSummary(AnswerResult{Identifier: "n", Value: 1000000}, "")
		text, _ := s.ResultText()
		assert.Equal(t, "1,000,000", text)

		_, ok := s.UnitText()
		assert.False(t, ok)
	})

	t.Run("should round half to even without overflowing", func(t *testing.T) {
		for _, tc := range []struct {
			value any
			want  string
		}{
			{2.5, "2"},
			{3.5, "4"},
			{-1234.5, "-1,234"},
			{1e20, "100,000,000,000,000,000,000"},
			{uint64(math.MaxUint64), "18,446,744,073,709,551,616"},
			{int64(math.MinInt64), "-9,223,372,036,854,775,808"},
		} {
			s := newSummary(AnswerResult{Identifier: "n", Value: tc.value}, "")
			text, ok := s.ResultText()
			assert.True(t, ok)
			assert.Equal(t, tc.want, text, "value %v", tc.value)
		}
	})

	t.Run("should join arrays with the separator", func(t *testing.T) {
		s := newSummary(AnswerResult{
			Identifier: "colors",
			AnswerType: AnswerType{BaseType: "string", SequenceType: SequenceArray, SequenceSeparator: " / "},
			Value:      []string{"red", "blue"},
		}, "")
		text, ok := s.ResultText()
		assert.True(t, ok)
		assert.Equal(t, "red / blue", text)
	})

	t.Run("should join arrays with a comma when no separator is set", func(t *testing.T) {
		s := newSummary(AnswerResult{
			Identifier: "scores",
			AnswerType: AnswerType{BaseType: "integer", SequenceType: SequenceArray},
			Value:      []any{3, 1, 4},
		}, "")
		text, _ := s.ResultText()
		assert.Equal(t, "3, 1, 4", text)
	})

	t.Run("should print other values as is", func(t *testing.T) {
		s := newSummary(AnswerResult{Identifier: "mood", Value: "happy"}, "")
		text, ok := s.ResultText()
		assert.True(t, ok)
		assert.Equal(t, "happy", text)
	})

	t.Run("should use the latest answer for an identifier", func(t *testing.T) {
		s := newSummary(AnswerResult{Identifier: "x", Value: 1}, "")
		s.Result.Add(AnswerResult{Identifier: "x", Value: 2})
		text, _ := s.ResultText()
		assert.Equal(t, "2", text)
	})

	t.Run("should report no text when the answer is missing", func(t *testing.T) {
		s := newSummary(AnswerResult{Identifier: "x", Value: nil}, "")
		_, ok := s.ResultText()
		assert.False(t, ok)

		s.Step.ResultIdentifier = "other"
		_, ok = s.ResultText()
		assert.False(t, ok)

		_, ok = ResultSummary{}.ResultText()
		assert.False(t, ok)

		_, ok = ResultSummary{Step: &ResultSummaryStep{ResultIdentifier: "x"}}.ResultText()
		assert.False(t, ok)
	})
}
