package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/wordahead/internal/clipboard"
	"github.com/f3rmion/wordahead/internal/reader"
	"github.com/f3rmion/wordahead/internal/wordahead"
	"go.uber.org/zap"
)

// Layout constants
const (
	gridLeft       = 2   // left margin of the word grid
	wideWidth      = 100 // terminal width from which the panel sits beside the grid
	sidePanelWidth = 44
	defaultWidth   = 80
	copiedTimeout  = 2 * time.Second
)

// Service is the remote analysis service as the UI uses it.
type Service interface {
	reader.Analyzer
	reader.Translator
	TranslateSentence(ctx context.Context, sentence string) (*wordahead.SentenceTranslation, error)
}

// Options configures a Model.
type Options struct {
	CloseDelay time.Duration
	Logger     *zap.Logger
	// Copy writes to the clipboard. Defaults to clipboard.Write.
	Copy func(string) error
}

type focusArea int

const (
	focusEditor focusArea = iota
	focusWords
)

// Messages
type analysisResultMsg struct {
	seq   uint64
	words []wordahead.WordAnnotation
	err   error
}

type translationResultMsg struct {
	ticket reader.Ticket
	patch  wordahead.Patch
	err    error
}

type panelClearMsg struct {
	ticket reader.Ticket
}

type sentenceResultMsg struct {
	ticket reader.Ticket
	result *wordahead.SentenceTranslation
	err    error
}

type clearCopiedMsg struct{}

// Model is the Bubble Tea model of the reading assistant.
type Model struct {
	svc    Service
	log    *zap.Logger
	copyFn func(string) error

	input *reader.Input
	panel *reader.Panel

	editor  textarea.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	focus    focusArea
	cursor   int
	units    []reader.Unit
	sentence sentenceState
	copied   bool

	width  int
	height int
	ready  bool
}

// New creates the model. svc is called from commands, never from Update.
func New(svc Service, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.Write
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type English text, then press ctrl+s..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(5)
	ta.SetWidth(defaultWidth - gridLeft*2)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = LoadingStyle

	return Model{
		svc:     svc,
		log:     log.With(zap.String("component", "tui")),
		copyFn:  copyFn,
		input:   &reader.Input{},
		panel:   reader.NewPanel(opts.CloseDelay, log),
		editor:  ta,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeyMap(),
		width:   defaultWidth,
	}
}

// SetText replaces the editor contents.
func (m *Model) SetText(s string) {
	m.editor.SetValue(s)
	m.input.SetText(s)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.editor.SetWidth(m.gridWidth())
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if !m.input.Loading() && !m.sentence.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisResultMsg:
		if !m.input.Finish(msg.seq, msg.words, msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn("analysis failed", zap.Error(msg.err))
			return m, nil
		}
		m.panel.Reset()
		m.sentence = sentenceState{}
		m.cursor = 0
		m.relayout()
		if len(m.units) > 0 {
			m.setFocus(focusWords)
		}
		return m, nil

	case translationResultMsg:
		if msg.err != nil {
			m.panel.Fail(msg.ticket, msg.err)
			return m, nil
		}
		m.panel.Resolve(msg.ticket, msg.patch)
		return m, nil

	case panelClearMsg:
		if m.panel.Clear(msg.ticket) {
			m.sentence = sentenceState{}
		}
		return m, nil

	case sentenceResultMsg:
		if msg.ticket != m.panel.Current() {
			return m, nil
		}
		m.sentence.loading = false
		m.sentence.result = msg.result
		m.sentence.err = msg.err
		if msg.err != nil {
			m.log.Error("sentence translation failed", zap.Error(msg.err))
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	if m.focus == focusEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusEditor && len(m.units) > 0 {
			return m, m.setFocus(focusWords)
		}
		return m, m.setFocus(focusEditor)
	}

	if m.focus == focusEditor {
		if key.Matches(msg, m.keys.Close) && m.panel.Visible() {
			return m, m.closePanel()
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.input.SetText(m.editor.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(reader.Neighbor(m.units, m.cursor, -1))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(reader.Neighbor(m.units, m.cursor, 1))
	case key.Matches(msg, m.keys.Select):
		return m, m.selectWord(m.cursor)
	case key.Matches(msg, m.keys.Close):
		if m.panel.Visible() {
			return m, m.closePanel()
		}
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyTranslation()
	case key.Matches(msg, m.keys.Sentence):
		return m, m.translateSentence()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	idx := reader.HitTest(m.units, msg.X-gridLeft, msg.Y-m.wordsTop())
	if idx < 0 {
		return m, nil
	}
	m.cursor = idx
	focusCmd := m.setFocus(focusWords)
	return m, tea.Batch(focusCmd, m.selectWord(idx))
}

// submit starts an analysis of the editor contents.
func (m *Model) submit() tea.Cmd {
	m.input.SetText(m.editor.Value())
	text, seq, err := m.input.Begin()
	if err != nil {
		if errors.Is(err, reader.ErrBusy) {
			m.log.Debug("submit ignored while loading")
		}
		return nil
	}

	m.log.Info("analyzing text", zap.Int("chars", len(text)), zap.Uint64("seq", seq))
	svc := m.svc
	return tea.Batch(
		func() tea.Msg {
			words, err := svc.ProcessText(context.Background(), text)
			return analysisResultMsg{seq: seq, words: words, err: err}
		},
		m.spinner.Tick,
	)
}

// selectWord opens the panel on the word at idx and fetches its translation.
func (m *Model) selectWord(idx int) tea.Cmd {
	words := m.input.Words()
	if idx < 0 || idx >= len(words) {
		return nil
	}

	t := m.panel.Select(idx, words[idx])
	m.sentence = sentenceState{}
	m.log.Debug("word selected", zap.String("word", t.Word), zap.Uint64("seq", t.Seq))

	svc := m.svc
	return func() tea.Msg {
		patch, err := svc.TranslateWord(context.Background(), t.Word)
		return translationResultMsg{ticket: t, patch: patch, err: err}
	}
}

// closePanel hides the panel and schedules the selection to be cleared.
func (m *Model) closePanel() tea.Cmd {
	t, delay := m.panel.Close()
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return panelClearMsg{ticket: t}
	})
}

func (m *Model) translateSentence() tea.Cmd {
	if !m.panel.Visible() || m.sentence.loading {
		return nil
	}
	text := reader.SentenceAt(m.input.Words(), m.panel.Index())
	if text == "" {
		return nil
	}

	t := m.panel.Current()
	m.sentence = sentenceState{text: text, loading: true}

	svc := m.svc
	return tea.Batch(
		func() tea.Msg {
			res, err := svc.TranslateSentence(context.Background(), text)
			return sentenceResultMsg{ticket: t, result: res, err: err}
		},
		m.spinner.Tick,
	)
}

func (m *Model) copyTranslation() tea.Cmd {
	sel := m.panel.Selection()
	if !m.panel.Visible() || sel == nil || sel.Translation == "" {
		return nil
	}
	if err := m.copyFn(sel.Translation); err != nil {
		m.log.Warn("copying to clipboard", zap.Error(err))
		return nil
	}
	m.copied = true
	return tea.Tick(copiedTimeout, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

func (m *Model) moveCursor(idx int) {
	if len(m.units) == 0 {
		return
	}
	m.cursor = max(0, min(idx, len(m.units)-1))
}

func (m *Model) relayout() {
	m.units = reader.Layout(m.input.Words(), m.gridWidth())
	if m.cursor >= len(m.units) {
		m.cursor = 0
	}
}

func (m Model) wide() bool {
	return m.width >= wideWidth
}

// gridWidth does not depend on the panel, so opening it never reflows words.
func (m Model) gridWidth() int {
	w := m.width - gridLeft*2
	if m.wide() {
		w -= sidePanelWidth
	}
	return max(w, 20)
}

func (m Model) panelWidth() int {
	if m.wide() {
		return sidePanelWidth
	}
	return max(m.width-gridLeft, 24)
}

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	body := m.bodyView()
	if m.panel.Visible() {
		panel := renderPanel(m.panel.Selection(), m.sentence, m.panelWidth(), m.spinner.View())
		if m.wide() {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, panel)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.topView(), body, m.footerView())
}

// topView is everything above the word grid. Its height is the grid's
// vertical offset for mouse hit-testing.
func (m Model) topView() string {
	title := TitleStyle.Render("WordAhead") + " " + SubtitleStyle.Render("reading assistant")

	editorStyle := EditorStyle
	if m.focus == focusEditor {
		editorStyle = EditorFocusedStyle
	}
	editor := editorStyle.Render(m.editor.View())

	var status string
	switch {
	case m.input.Loading():
		status = m.spinner.View() + LoadingStyle.Render(" Analyzing...")
	case m.input.ErrorMessage() != "":
		status = ErrorStyle.Render(m.input.ErrorMessage())
	case m.copied:
		status = CopiedStyle.Render("Copied translation to clipboard")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", editor, status, "")
}

func (m Model) wordsTop() int {
	return lipgloss.Height(m.topView())
}

func (m Model) bodyView() string {
	grid := renderWords(m.units, m.cursor, m.panel.Index(), m.focus == focusWords)
	if grid == "" {
		grid = HelpStyle.Render("Analyzed words will appear here.")
	}

	pad := lipgloss.NewStyle().PaddingLeft(gridLeft).Width(m.gridWidth() + gridLeft*2)
	return lipgloss.JoinVertical(lipgloss.Left, pad.Render(grid), pad.Render(renderLegend()))
}

func (m Model) footerView() string {
	return "\n" + strings.TrimRight(m.help.View(m.keys), "\n")
}
