package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/icash/internal/game"
	"github.com/vovakirdan/icash/internal/state"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	lettersStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	alertStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const banner = "I C A $ H"

// View renders the current scene.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.game.Scene() {
	case state.SceneStart:
		body = m.viewStart()
	case state.SceneModes:
		body = m.viewModes()
	case state.SceneSetTimer:
		body = m.viewTimer()
	case state.ScenePlay:
		body = m.viewPlay()
	case state.SceneGameOver:
		body = m.viewGameOver()
	case state.SceneSave:
		body = m.viewSave()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(banner), m.width))
	b.WriteString("\n\n")
	b.WriteString(body)
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(messageStyle.Render(m.message), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys.forScene(m.game.Scene()))), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewStart() string {
	var b strings.Builder
	b.WriteString(centerText("Find every word hidden in the letters.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Press ENTER to start", m.width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewModes() string {
	var b strings.Builder
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, info := range m.modes {
		cursor := "  "
		line := info.Title
		if i == m.cursor {
			cursor = "> "
			line = activeStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	if len(m.modes) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(labelStyle.Render(m.modes[m.cursor].Description), m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewTimer() string {
	var b strings.Builder
	b.WriteString(centerText("Set the timer", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("< "+activeStyle.Render(m.game.TimerLabel())+" >", m.width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewPlay() string {
	st := m.game.State()

	var b strings.Builder
	b.WriteString(centerText(m.statusLine(st), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(lettersStyle.Render(spaceLetters(st.CharSeq)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(labelStyle.Render(fmt.Sprintf("%d words to find", len(st.ValidWords))), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewGameOver() string {
	st := m.game.State()

	var b strings.Builder
	b.WriteString(centerText(alertStyle.Render("GAME OVER"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(field("Score", fmt.Sprint(st.Score)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(field("Words found", fmt.Sprint(m.game.WordsFound())), m.width))
	b.WriteString("\n")
	if m.highScore > 0 {
		b.WriteString(centerText(field("Best "+st.Mode.String(), fmt.Sprint(m.highScore)), m.width))
		b.WriteString("\n")
	}
	if len(st.ValidWords) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(labelStyle.Render("Missed: "+strings.Join(st.ValidWords, ", ")), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(activeStyle.Render("PRESS [N] FOR NEW GAME."), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewSave() string {
	var b strings.Builder
	b.WriteString(centerText(activeStyle.Render("SAVE STATE?"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("[y] yes    [n] no", m.width))
	b.WriteString("\n")
	return b.String()
}

// statusLine shows score, retries and, for timed games, the time left.
func (m Model) statusLine(st *state.GameState) string {
	parts := []string{
		field("Score", fmt.Sprint(st.Score)),
		field("Retries", fmt.Sprintf("%d X", st.Retries)),
	}
	if st.Timed() {
		left := game.FormatTime(*st.TimeLeft)
		if *st.TimeLeft <= 10 {
			left = alertStyle.Render(left)
		} else {
			left = valueStyle.Render(left)
		}
		parts = append(parts, labelStyle.Render("Time ")+left)
	}
	return strings.Join(parts, "   ")
}

func field(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value)
}

// spaceLetters renders letters upper-case with a gap between them.
func spaceLetters(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// centerText centers text within given width.
// Width is measured without ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
