package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/psyops/internal/assess"
	"github.com/san-kum/psyops/internal/config"
	"github.com/san-kum/psyops/internal/report"
	"github.com/san-kum/psyops/internal/ring"
	"github.com/san-kum/psyops/internal/viz"
)

// Options configures one form session.
type Options struct {
	Widget    config.Widget
	Theme     string
	FPS       int
	Smoothing float64
	Easing    ring.Easing
	Segments  int
	Output    string
	Report    report.Options

	// Now stamps exported documents; defaults to time.Now.
	Now func() time.Time
}

// OptionsFrom builds session options from a loaded config.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Widget:    cfg.Widget,
		Theme:     cfg.Theme,
		FPS:       cfg.FPS,
		Smoothing: cfg.Smoothing,
		Easing:    cfg.Easing,
		Segments:  cfg.Segments,
		Output:    cfg.Output,
		Report:    cfg.ReportOptions(),
	}
}

// model is the whole form state. Every update receives it and returns the
// next one; nothing lives outside it.
type model struct {
	sheet   *assess.Sheet
	anim    *ring.Animator
	summary assess.Summary

	cursor int
	offset int

	widget   config.Widget
	theme    viz.Theme
	styles   viz.Styles
	status   string
	failed   bool
	showHelp bool
	ticking  bool

	opts   Options
	width  int
	height int
}

// New returns the form with every score at the minimum. The ring starts
// empty and eases up to the initial total.
func New(opts Options) model {
	if opts.FPS <= 0 {
		opts.FPS = ring.DefaultFPS
	}
	if opts.Segments <= 0 {
		opts.Segments = ring.DefaultSegments
	}
	if opts.Output == "" {
		opts.Output = report.DefaultFileName
	}
	if opts.Widget == "" {
		opts.Widget = config.DefaultWidget
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	theme := viz.GetTheme(opts.Theme)
	m := model{
		sheet:  assess.NewSheet(),
		anim:   ring.NewAnimator(opts.Easing, opts.Smoothing, opts.FPS),
		widget: opts.Widget,
		theme:  theme,
		styles: viz.NewStyles(theme),
		opts:   opts,
	}
	m.summary = m.sheet.Summary()
	m.ticking = m.anim.SetTarget(float64(m.summary.Total)) == ring.Settling
	return m
}

func (m model) Init() tea.Cmd {
	if m.ticking {
		return m.frame()
	}
	return nil
}

type tickMsg time.Time

func (m model) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollTo(m.cursor)
		return m, nil
	case tickMsg:
		if m.anim.Step() {
			return m, m.frame()
		}
		m.ticking = false
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.scrollTo(m.cursor - 1)
	case "down", "j", "tab":
		m.scrollTo(m.cursor + 1)
	case "home", "g":
		m.scrollTo(0)
	case "end", "G":
		m.scrollTo(assess.NumQuestions - 1)
	case "left", "h", "-":
		sum, _ := m.sheet.Adjust(m.cursor, -1)
		return m, m.retarget(sum)
	case "right", "l", "+", "=":
		sum, _ := m.sheet.Adjust(m.cursor, 1)
		return m, m.retarget(sum)
	case "1", "2", "3", "4", "5":
		sum, err := m.sheet.SetScore(m.cursor, int(msg.String()[0]-'0'))
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		return m, m.retarget(sum)
	case "r":
		return m, m.retarget(m.sheet.Reset())
	case "p":
		m.export()
	case "t":
		m.theme = m.theme.Next()
		m.styles = viz.NewStyles(m.theme)
	case "w":
		if m.widget == config.WidgetSlider {
			m.widget = config.WidgetSelector
		} else {
			m.widget = config.WidgetSlider
		}
	case "?":
		m.showHelp = true
	}
	return m, nil
}

// retarget records a new summary and starts the frame loop if the ring has
// somewhere to go and no frame is already pending.
func (m *model) retarget(sum assess.Summary) tea.Cmd {
	m.summary = sum
	if m.anim.SetTarget(float64(sum.Total)) == ring.Settled || m.ticking {
		return nil
	}
	m.ticking = true
	return m.frame()
}

func (m *model) export() {
	doc := report.Build(m.sheet, m.opts.Now())
	err := report.WritePDF(doc, m.opts.Output, m.opts.Report)
	m.setStatus(report.Status(err), err != nil)
}

func (m *model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

func (m *model) scrollTo(i int) {
	if i < 0 {
		i = 0
	}
	if i >= assess.NumQuestions {
		i = assess.NumQuestions - 1
	}
	m.cursor = i
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset > assess.NumQuestions-rows {
		m.offset = assess.NumQuestions - rows
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m model) visibleRows() int {
	return m.layout().rows
}

// Run starts the form in the alternate screen and blocks until it exits.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}
