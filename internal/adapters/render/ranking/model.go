package ranking

import (
	"errors"
	"io"

	"github.com/bnema/skycircle/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{render: render, styles: newStyles()}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the ranked accounts of run as a table.
func Render(run domain.AnalysisRun, opts RenderOptions) (string, error) {
	return renderOnce(func(s styles) string { return renderRanking(run, opts, s) })
}

// RenderRuns draws a listing of stored analysis runs.
func RenderRuns(runs []domain.AnalysisRun) (string, error) {
	return renderOnce(func(s styles) string { return renderRuns(runs, s) })
}

// RenderPacks draws a listing of published starter packs.
func RenderPacks(packs []domain.StarterPack) (string, error) {
	return renderOnce(func(s styles) string { return renderPacks(packs, s) })
}

func renderOnce(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
