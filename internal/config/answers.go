package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/psyops/internal/assess"
)

// Answers is a pre-filled questionnaire, one score per question in order.
type Answers struct {
	Scores []int `yaml:"scores"`
}

func LoadAnswers(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &a, nil
}

// Sheet builds a sheet from the answers, rejecting any invalid score.
func (a *Answers) Sheet() (*assess.Sheet, error) {
	s := assess.NewSheet()
	if err := s.LoadScores(a.Scores); err != nil {
		return nil, err
	}
	return s, nil
}
