package assess

import "fmt"

// Summary is the derived view of a sheet: its total and interpretation.
type Summary struct {
	Total int
	Band  Band
}

// Sheet holds one score per question. The zero value is not valid; use NewSheet.
type Sheet struct {
	scores [NumQuestions]int
}

// NewSheet returns a sheet with every score at the minimum.
func NewSheet() *Sheet {
	s := &Sheet{}
	s.Reset()
	return s
}

// SetScore overwrites the score of one question and returns the new summary.
func (s *Sheet) SetScore(index, value int) (Summary, error) {
	if index < 0 || index >= NumQuestions || value < MinScore || value > MaxScore {
		return s.Summary(), &ScoreError{Index: index, Value: value, Wrapped: ErrOutOfRange}
	}
	s.scores[index] = value
	return s.Summary(), nil
}

// Adjust moves one score by delta, clamped into [MinScore, MaxScore].
func (s *Sheet) Adjust(index, delta int) (Summary, error) {
	if index < 0 || index >= NumQuestions {
		return s.Summary(), &ScoreError{Index: index, Value: delta, Wrapped: ErrOutOfRange}
	}
	v := s.scores[index] + delta
	if v < MinScore {
		v = MinScore
	}
	if v > MaxScore {
		v = MaxScore
	}
	s.scores[index] = v
	return s.Summary(), nil
}

// Score returns the score of question index, or 0 when index is out of range.
func (s *Sheet) Score(index int) int {
	if index < 0 || index >= NumQuestions {
		return 0
	}
	return s.scores[index]
}

// Scores returns a copy of all scores in question order.
func (s *Sheet) Scores() []int {
	out := make([]int, NumQuestions)
	copy(out, s.scores[:])
	return out
}

// LoadScores replaces every score. Nothing changes unless all values are valid.
func (s *Sheet) LoadScores(values []int) error {
	if len(values) != NumQuestions {
		return fmt.Errorf("%w: got %d, want %d", ErrScoreCount, len(values), NumQuestions)
	}
	for i, v := range values {
		if v < MinScore || v > MaxScore {
			return &ScoreError{Index: i, Value: v, Wrapped: ErrOutOfRange}
		}
	}
	copy(s.scores[:], values)
	return nil
}

func (s *Sheet) Total() int {
	total := 0
	for _, v := range s.scores {
		total += v
	}
	return total
}

func (s *Sheet) Summary() Summary {
	total := s.Total()
	return Summary{Total: total, Band: Interpret(total)}
}

// Reset puts every score back to the minimum.
func (s *Sheet) Reset() Summary {
	for i := range s.scores {
		s.scores[i] = MinScore
	}
	return s.Summary()
}
