package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/skycircle/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type progressMsg struct {
	stage string
}

type taskDoneMsg struct {
	err error
}

type progressSpinnerModel struct {
	spinner spinner.Model
	label   string
	task    tea.Cmd
	err     error
	done    bool
}

func newProgressSpinnerModel(label string, task tea.Cmd) progressSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	)

	return progressSpinnerModel{
		spinner: s,
		label:   label,
		task:    task,
	}
}

func (m progressSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m progressSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressMsg:
		m.label = msg.stage
		return m, nil
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runWithProgress runs task while a spinner on output shows the latest stage
// the task reports.
func runWithProgress(ctx context.Context, output io.Writer, label string, task func(context.Context, ports.ProgressObserver) error) error {
	var p *tea.Program
	observer := ports.ProgressFunc(func(stage string, _ int) {
		p.Send(progressMsg{stage: stage})
	})

	taskCmd := func() tea.Msg {
		return taskDoneMsg{err: task(ctx, observer)}
	}

	p = tea.NewProgram(
		newProgressSpinnerModel(label, taskCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
