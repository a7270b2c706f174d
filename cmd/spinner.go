package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	doneMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	failedMark = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type exchangeDoneMsg struct {
	err error
}

type exchangeSpinnerModel struct {
	spinner spinner.Model
	label   string
	run     tea.Cmd
	err     error
	done    bool
}

func newExchangeSpinnerModel(label string, run tea.Cmd) exchangeSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return exchangeSpinnerModel{
		spinner: s,
		label:   label,
		run:     run,
	}
}

func (m exchangeSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m exchangeSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case exchangeDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

// View leaves a one-line outcome behind once the exchange returns.
func (m exchangeSpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	label := strings.TrimSuffix(m.label, "...")
	if m.err != nil {
		return failedMark.Render("✗") + " " + label + "\n"
	}
	return doneMark.Render("✓") + " " + label + "\n"
}

// runExchangeSpinner shows a spinner on output until exchange returns.
func runExchangeSpinner(ctx context.Context, output io.Writer, label string, exchange func(context.Context) error) error {
	exchangeCmd := func() tea.Msg {
		return exchangeDoneMsg{err: exchange(ctx)}
	}

	p := tea.NewProgram(
		newExchangeSpinnerModel(label, exchangeCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(exchangeSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
