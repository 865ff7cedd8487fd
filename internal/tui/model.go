// Package tui hosts the input page and the result page as a bubbletea
// program. Both screens share one page state that the controllers drive.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joshdurbin/url-shortener-client/internal/controller"
	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/feedback"
	"github.com/joshdurbin/url-shortener-client/internal/i18n"
	"github.com/joshdurbin/url-shortener-client/internal/logger"
)

type screen int

const (
	screenInput screen = iota
	screenResult
)

// submittedMsg reports a settled OnSubmit
type submittedMsg struct {
	err error
}

// qrDoneMsg reports that the result controller finished its QR request
type qrDoneMsg struct{}

// copiedMsg reports a settled copy request
type copiedMsg struct {
	err error
}

// redrawMsg is sent when page state changed outside of Update
type redrawMsg struct{}

// Options tune the model
type Options struct {
	// InvertQR swaps dark and light modules for light terminal themes
	InvertQR bool

	// FeedbackOptions are passed to the copy feedback of the result screen
	FeedbackOptions []feedback.Option
}

// Model is the bubbletea model of the client
type Model struct {
	ctx    context.Context
	opts   Options
	keys   keyMap
	page   *page
	screen screen

	input   textinput.Model
	spinner spinner.Model

	feedback   *feedback.Feedback
	submission *controller.SubmissionController
	result     *controller.ResultController

	submitting bool
	qrDone     bool
	copyErr    string
	width      int
}

// New creates the model. ctx bounds every request the controllers make.
func New(ctx context.Context, deps controller.Deps, opts Options) *Model {
	p := &page{}

	input := textinput.New()
	input.Placeholder = i18n.T("submit.placeholder")
	input.Prompt = "> "
	input.CharLimit = 2048
	input.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	fb := feedback.New(p, opts.FeedbackOptions...)
	copier := controller.NewCopier(deps.Clipboard, deps.Legacy, fb, deps.Metrics)

	return &Model{
		ctx:     ctx,
		opts:    opts,
		keys:    defaultKeyMap,
		page:    p,
		screen:  screenInput,
		input:   input,
		spinner: sp,

		feedback: fb,
		submission: controller.NewSubmissionController(p, deps.Shortener,
			controller.WithSubmissionCopier(copier),
			controller.WithSubmissionMetrics(deps.Metrics),
		),
		result: controller.NewResultController(p, deps.Encoder, copier,
			controller.WithResultMetrics(deps.Metrics),
		),
	}
}

// Init focuses the URL field
func (m *Model) Init() tea.Cmd {
	m.submission.Activate()
	if m.page.snapshot().focused {
		return tea.Batch(m.input.Focus(), textinput.Blink)
	}
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, m.quit()
		}
		if m.screen == screenInput {
			return m.updateInput(msg)
		}
		return m.updateResult(msg)

	case submittedMsg:
		m.submitting = false
		if msg.err != nil || m.submission.State().Phase != domain.PhaseResult {
			// The error banner already shows the message
			return m, m.input.Focus()
		}
		m.screen = screenResult
		m.input.Blur()
		shortURL := m.page.ShortURL()
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			m.result.Activate(m.ctx, shortURL)
			return qrDoneMsg{}
		})

	case qrDoneMsg:
		m.qrDone = true
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			logger.Log.Warnw("copy failed", "error", msg.err)
			m.copyErr = i18n.T("copy.failed")
		} else {
			m.copyErr = ""
		}
		return m, nil

	case redrawMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.submitting && (m.screen != screenResult || m.qrDone) {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.screen == screenInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		value := m.input.Value()
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return submittedMsg{err: m.submission.OnSubmit(m.ctx, value)}
		})
	}

	if m.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Leave):
		return m, m.quit()
	case key.Matches(msg, m.keys.Copy):
		return m, func() tea.Msg {
			return copiedMsg{err: m.result.OnCopyRequested(m.ctx)}
		}
	}
	return m, nil
}

func (m *Model) quit() tea.Cmd {
	m.feedback.Stop()
	return tea.Quit
}

// View renders the current screen
func (m *Model) View() string {
	s := m.page.snapshot()
	if m.screen == screenResult {
		return docStyle.Render(m.viewResult(s))
	}
	return docStyle.Render(m.viewInput(s))
}

func (m *Model) viewInput(s snapshot) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("submit.title")))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if s.loading {
		b.WriteString(disabledButtonStyle.Render(m.spinner.View() + " " + i18n.T("submit.loading")))
	} else {
		b.WriteString(buttonStyle.Render(i18n.T("submit.button")))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(s.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("submit.help")))
	return b.String()
}

func (m *Model) viewResult(s snapshot) string {
	field := fieldStyle
	if s.selected {
		field = selectedFieldStyle
	}

	copyButton := buttonStyle.Render(i18n.T("copy.label"))
	if s.copied {
		copyButton = buttonStyle.Render(successStyle.Render(i18n.T("copy.copied")))
	}

	var qrBlock string
	switch {
	case s.qrImage != nil:
		qrBlock = lipgloss.JoinVertical(lipgloss.Center,
			s.qrImage.Text(m.opts.InvertQR),
			labelStyle.Render(s.qrCaption),
		)
	case s.qrFailure != "":
		qrBlock = errorStyle.Render(s.qrFailure)
	default:
		qrBlock = m.spinner.View() + " " + i18n.T("qr.pending")
	}

	parts := []string{
		titleStyle.Render(i18n.T("result.title")),
		labelStyle.Render(i18n.T("result.short_url")),
		field.Render(s.shortURL),
		copyButton,
	}
	if m.copyErr != "" {
		parts = append(parts, errorStyle.Render(m.copyErr))
	}
	parts = append(parts,
		qrStyle.Render(qrBlock),
		helpStyle.Render(i18n.T("result.help")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the program and blocks until the user quits
func Run(ctx context.Context, deps controller.Deps, opts Options) error {
	m := New(ctx, deps, opts)

	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	m.page.mu.Lock()
	m.page.notify = func() {
		go program.Send(redrawMsg{})
	}
	m.page.mu.Unlock()

	_, err := program.Run()
	m.feedback.Stop()
	return err
}
