package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/psyops/internal/assess"
	"github.com/san-kum/psyops/internal/config"
	"github.com/san-kum/psyops/internal/ring"
	"github.com/san-kum/psyops/internal/viz"
)

const (
	ringCols = 16
	ringRows = 8

	questionWidth = 30
	minRows       = 5

	// status and key hint lines under the panels
	footerRows = 2
	// panel border, top and bottom
	panelFrame = 2
	// ▲ and ▼ scroll marks
	scrollMarks = 2
)

// screen is what fits on the terminal: the header, the side panel content
// and how many questions the list shows.
type screen struct {
	header string
	side   string
	rows   int
}

// layout picks the richest header and side panel that still leave room for
// minRows questions, falling back to the smallest ones on tiny terminals.
func (m model) layout() screen {
	full := m.styles.Title.Render("🧠 PSYOPS Likelihood Assessment") + "\n" +
		m.styles.Subtitle.Render("Evaluate psychological operations traits on a scale of 1 to 5.") + "\n"
	if m.height == 0 {
		return screen{header: full, side: m.sideView(), rows: assess.NumQuestions}
	}

	short := m.styles.Title.Render("🧠 PSYOPS Likelihood Assessment")
	sides := []string{m.sideView(), m.compactSideView(), m.summaryLine()}
	for _, side := range sides {
		for _, header := range []string{full, short} {
			avail := m.height - lipgloss.Height(header) - footerRows
			if lipgloss.Height(m.styles.Panel.Render(side)) > avail {
				continue
			}
			if rows := questionRows(avail); rows >= minRows {
				return screen{header: header, side: side, rows: rows}
			}
		}
	}
	return screen{header: short, side: sides[len(sides)-1], rows: minRows}
}

// questionRows is the list length whose panel fits in avail lines.
func questionRows(avail int) int {
	if avail-panelFrame >= assess.NumQuestions {
		return assess.NumQuestions
	}
	return avail - panelFrame - scrollMarks
}

func (m model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	sc := m.layout()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Panel.Render(m.questionsView(sc.rows)),
		" ",
		m.styles.Panel.Render(sc.side),
	)
	return strings.Join([]string{
		sc.header,
		body,
		m.statusView(),
		m.styles.Help.Render("↑↓ move  ←→/1-5 score  r reset  p print  w widget  t theme  ? help  q quit"),
	}, "\n")
}

func (m model) questionsView(rows int) string {
	end := m.offset + rows
	if end > assess.NumQuestions {
		end = assess.NumQuestions
	}

	lines := make([]string, 0, rows+2)
	if m.offset > 0 {
		lines = append(lines, m.styles.Muted.Render("  ▲"))
	}
	for i := m.offset; i < end; i++ {
		q := fmt.Sprintf("%-*s", questionWidth, assess.Question(i))
		w := m.widgetView(m.sheet.Score(i))
		if i == m.cursor {
			lines = append(lines, m.styles.Selected.Render("> "+q+" "+w))
		} else {
			lines = append(lines, "  "+m.styles.Question.Render(q)+" "+m.styles.Value.Render(w))
		}
	}
	if end < assess.NumQuestions {
		lines = append(lines, m.styles.Muted.Render("  ▼"))
	}
	return strings.Join(lines, "\n")
}

func (m model) widgetView(score int) string {
	if m.widget == config.WidgetSelector {
		return viz.Selector(score, assess.MinScore, assess.MaxScore)
	}
	return viz.Slider(score, assess.MinScore, assess.MaxScore)
}

func (m model) sideView() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.ringView(true), "", m.summaryView())
}

func (m model) compactSideView() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.ringView(false), m.summaryLine())
}

func (m model) ringView(heading bool) string {
	arc := viz.NewCanvas(ringCols, ringRows)
	track := viz.NewCanvas(ringCols, ringRows)
	f := ring.CanvasGeometry(arc, m.opts.Segments).Frame(m.anim.Value)
	f.DrawTrack(track)
	f.DrawArc(arc)

	band := m.styles.Band(m.theme.BandColor(f.Color))
	art := viz.Overlay(arc, track, band, m.styles.Track)
	if !heading {
		return lipgloss.JoinVertical(lipgloss.Center, art, band.Render(f.Label))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Heading.Render("📈 Score Progress"),
		art,
		band.Render(f.Label),
	)
}

func (m model) summaryView() string {
	band := m.styles.Band(m.theme.BandColor(m.summary.Band.Color))
	return strings.Join([]string{
		m.styles.Heading.Render("📊 Total Score"),
		m.styles.Value.Render(fmt.Sprintf("%d", m.summary.Total)),
		"",
		m.styles.Heading.Render("🧾 Interpretation"),
		band.Render(m.summary.Band.Label),
	}, "\n")
}

func (m model) summaryLine() string {
	band := m.styles.Band(m.theme.BandColor(m.summary.Band.Color))
	return m.styles.Value.Render(fmt.Sprintf("Total Score: %d", m.summary.Total)) + "\n" +
		band.Render(m.summary.Band.Label)
}

func (m model) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.failed {
		return m.styles.Failed.Render("❌ " + m.status)
	}
	return m.styles.OK.Render("✅ " + m.status + " → " + m.opts.Output)
}

func (m model) helpView() string {
	return m.styles.Panel.Render(`KEYBOARD SHORTCUTS

  ↑/k ↓/j   Move between questions
  ←/h →/l   Lower / raise the score
  1-5       Set the score directly
  r         Reset every score to 1
  p         Print results to PDF
  w         Switch slider / selector
  t         Switch light / dark theme
  ?         Toggle this help
  q         Quit`) + "\n" + m.styles.Help.Render("press any key to return")
}
