// Package report renders an assessment into the exported document.
package report

import (
	"fmt"
	"time"

	"github.com/san-kum/psyops/internal/assess"
)

const (
	Title         = "PSYOPS Assessment Results"
	DocumentTitle = "PSYOPS Assessment Report"
	TimeLayout    = "2006-01-02 15:04:05"
)

// Document is the content of one export, independent of the output format.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Items       []Item
	Total       int
	Band        assess.Band
}

// Item is one answered question.
type Item struct {
	Question string
	Score    int
}

// Build snapshots a sheet into a document.
func Build(s *assess.Sheet, now time.Time) Document {
	scores := s.Scores()
	items := make([]Item, len(scores))
	for i, v := range scores {
		items[i] = Item{Question: assess.Question(i), Score: v}
	}
	sum := s.Summary()
	return Document{
		Title:       Title,
		GeneratedAt: now,
		Items:       items,
		Total:       sum.Total,
		Band:        sum.Band,
	}
}

func (d Document) GeneratedLine() string {
	return "Generated on: " + d.GeneratedAt.Format(TimeLayout)
}

func (it Item) Line() string {
	return fmt.Sprintf("%s - Score: %d", it.Question, it.Score)
}

func (d Document) TotalLine() string {
	return fmt.Sprintf("Total Score: %d", d.Total)
}

func (d Document) InterpretationLine() string {
	return "Interpretation: " + d.Band.Label
}

// Lines is the plain text rendition, one entry per printed line. The blank
// entries are the separators.
func (d Document) Lines() []string {
	lines := make([]string, 0, len(d.Items)+6)
	lines = append(lines, d.Title, d.GeneratedLine(), "")
	for _, it := range d.Items {
		lines = append(lines, it.Line())
	}
	lines = append(lines, "", d.TotalLine(), d.InterpretationLine())
	return lines
}
