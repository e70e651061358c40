package quizui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	romanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea quiz UI.
type Model struct {
	questions []Question
	index     int
	cursor    int
	answered  bool
	picked    string
	score     int
	done      bool
	quit      bool
}

// NewModel constructs a quiz model over pre-generated questions.
func NewModel(questions []Question) *Model {
	return &Model{questions: questions}
}

// Finished reports whether the user reached the results screen. Only a
// finished quiz counts as a study session.
func (m *Model) Finished() bool {
	return m.done && !m.quit
}

// Score returns correct answers and the question count.
func (m *Model) Score() (int, int) {
	return m.score, len(m.questions)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC || key.String() == "q" {
		m.quit = true
		return m, tea.Quit
	}
	if m.done {
		if key.Type == tea.KeyEnter {
			return m, tea.Quit
		}
		return m, nil
	}
	q := m.questions[m.index]
	switch key.String() {
	case "up", "k":
		if !m.answered && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if !m.answered && m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "enter", " ":
		if !m.answered {
			m.answered = true
			m.picked = q.Options[m.cursor]
			if m.picked == q.Answer {
				m.score++
			}
			return m, nil
		}
		m.next()
	}
	return m, nil
}

func (m *Model) next() {
	if m.index < len(m.questions)-1 {
		m.index++
		m.cursor = 0
		m.answered = false
		m.picked = ""
		return
	}
	m.done = true
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.questions) == 0 {
		return wrongStyle.Render("Not enough vocabulary for a quiz.") + "\n"
	}
	if m.done {
		return m.viewResult()
	}
	q := m.questions[m.index]
	var b strings.Builder
	b.WriteString(footerStyle.Render(fmt.Sprintf("Question %d/%d", m.index+1, len(m.questions))) + "\n\n")
	b.WriteString(questionStyle.Render(q.Item.Korean) + "  " +
		romanStyle.Render(q.Item.Romanized) + "\n\n")
	for i, opt := range q.Options {
		b.WriteString(m.renderOption(i, opt, q) + "\n")
	}
	b.WriteString("\n" + footerStyle.Render(m.footer()))
	return b.String()
}

func (m *Model) renderOption(i int, opt string, q Question) string {
	prefix := "  "
	style := optionStyle
	if i == m.cursor {
		prefix = "> "
		style = selectedStyle
	}
	if m.answered {
		switch {
		case opt == q.Answer:
			style = correctStyle
		case opt == m.picked:
			style = wrongStyle
		default:
			style = optionStyle
		}
	}
	return prefix + style.Render(opt)
}

func (m *Model) viewResult() string {
	pct := 0
	if len(m.questions) > 0 {
		pct = m.score * 100 / len(m.questions)
	}
	var verdict string
	switch {
	case pct == 100:
		verdict = "Perfect! Your Korean is dojang-ready."
	case pct >= 70:
		verdict = "Well done. Keep studying!"
	default:
		verdict = "Keep practicing, it will come."
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n",
		questionStyle.Render("Quiz finished"),
		correctStyle.Render(fmt.Sprintf("Score: %d/%d (%d%%)", m.score, len(m.questions), pct)),
		footerStyle.Render(verdict+"  (enter to close)"))
}

func (m *Model) footer() string {
	if m.answered {
		return "enter: next | q: quit"
	}
	return "up/down: select | enter: answer | q: quit"
}
