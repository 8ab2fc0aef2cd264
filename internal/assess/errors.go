package assess

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a question index or score value outside its domain.
	ErrOutOfRange = errors.New("assess: score or index out of range")

	// ErrScoreCount indicates a bulk load with the wrong number of scores.
	ErrScoreCount = errors.New("assess: wrong number of scores")
)

// ScoreError wraps an error with the rejected mutation.
type ScoreError struct {
	Index   int
	Value   int
	Wrapped error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("%v (question %d, score %d)", e.Wrapped, e.Index, e.Value)
}

func (e *ScoreError) Unwrap() error {
	return e.Wrapped
}
