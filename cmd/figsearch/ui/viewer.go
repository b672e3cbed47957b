package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"figsearch/internal/bitmap"
	"figsearch/internal/render"
	"figsearch/internal/scan"
)

// Mode selects which query result the viewer highlights.
type Mode int

const (
	ModeHLine Mode = iota
	ModeVLine
	ModeSquare
)

func (m Mode) String() string {
	switch m {
	case ModeHLine:
		return "hline"
	case ModeVLine:
		return "vline"
	case ModeSquare:
		return "square"
	}
	return "unknown"
}

// result is one precomputed query outcome.
type result struct {
	shape bitmap.Shape
	ok    bool
}

// Viewer is the bubbletea model rendering the grid with one query
// result highlighted. All three queries are computed once up front;
// switching modes is a pure re-render.
type Viewer struct {
	path    string
	bm      *bitmap.Bitmap
	styles  Styles
	mode    Mode
	results map[Mode]result

	viewport viewport.Model
	ready    bool
}

// NewViewer builds a Viewer for the loaded bitmap.
func NewViewer(path string, bm *bitmap.Bitmap) Viewer {
	results := make(map[Mode]result, 3)
	hs, hok := scan.LongestHorizontal(bm)
	results[ModeHLine] = result{shape: hs, ok: hok}
	vs, vok := scan.LongestVertical(bm)
	results[ModeVLine] = result{shape: vs, ok: vok}
	ss, sok := scan.LargestSquare(bm)
	results[ModeSquare] = result{shape: ss, ok: sok}
	return Viewer{
		path:    path,
		bm:      bm,
		styles:  DefaultStyles(),
		mode:    ModeHLine,
		results: results,
	}
}

// Init implements tea.Model.
func (v Viewer) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "h":
			v.mode = ModeHLine
			v.refresh()
			return v, nil
		case "v":
			v.mode = ModeVLine
			v.refresh()
			return v, nil
		case "s":
			v.mode = ModeSquare
			v.refresh()
			return v, nil
		}
	case tea.WindowSizeMsg:
		// Header and status bar take one line each plus spacing.
		contentHeight := msg.Height - 4
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !v.ready {
			v.viewport = viewport.New(msg.Width, contentHeight)
			v.ready = true
		} else {
			v.viewport.Width = msg.Width
			v.viewport.Height = contentHeight
		}
		v.refresh()
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements tea.Model.
func (v Viewer) View() string {
	if !v.ready {
		return "loading..."
	}

	r := v.results[v.mode]
	header := v.styles.Header.Render(fmt.Sprintf("figsearch %s — %s: %s",
		v.path, v.mode, render.Result(r.shape, r.ok)))
	status := v.styles.Status.Render(fmt.Sprintf(
		"%dx%d | h/v/s: switch query | arrows: scroll | q: quit",
		v.bm.Height(), v.bm.Width()))

	return header + "\n\n" + v.viewport.View() + "\n" + status
}

// refresh re-renders the grid into the viewport.
func (v *Viewer) refresh() {
	if v.ready {
		v.viewport.SetContent(v.renderGrid())
	}
}

// renderGrid draws the whole grid, styling filled pixels, empty pixels,
// and the highlighted result cells.
func (v *Viewer) renderGrid() string {
	highlight := highlightCells(v.results[v.mode], v.mode)

	var b strings.Builder
	for row := uint32(0); row < v.bm.Height(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := uint32(0); col < v.bm.Width(); col++ {
			p := bitmap.Point{X: col, Y: row}
			switch {
			case highlight[p]:
				b.WriteString(v.styles.Highlight.Render("1"))
			case v.bm.At(row, col):
				b.WriteString(v.styles.Filled.Render("1"))
			default:
				b.WriteString(v.styles.Empty.Render("·"))
			}
		}
	}
	return b.String()
}

// highlightCells returns the set of cells the current result covers:
// the segment cells for a line, the border cells for a square.
func highlightCells(r result, mode Mode) map[bitmap.Point]bool {
	cells := make(map[bitmap.Point]bool)
	if !r.ok {
		return cells
	}
	s := r.shape
	switch mode {
	case ModeHLine:
		for x := s.Start.X; x <= s.End.X; x++ {
			cells[bitmap.Point{X: x, Y: s.Start.Y}] = true
		}
	case ModeVLine:
		for y := s.Start.Y; y <= s.End.Y; y++ {
			cells[bitmap.Point{X: s.Start.X, Y: y}] = true
		}
	case ModeSquare:
		for x := s.Start.X; x <= s.End.X; x++ {
			cells[bitmap.Point{X: x, Y: s.Start.Y}] = true
			cells[bitmap.Point{X: x, Y: s.End.Y}] = true
		}
		for y := s.Start.Y; y <= s.End.Y; y++ {
			cells[bitmap.Point{X: s.Start.X, Y: y}] = true
			cells[bitmap.Point{X: s.End.X, Y: y}] = true
		}
	}
	return cells
}
