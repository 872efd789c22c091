package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mkessel/cumulus/pkg/words"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listDroppedStyle  = lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)
)

// =============================================================================
// wordListModel - Interactive word selection
// =============================================================================

// wordEntry is one row in the picker: a word plus its keep flag.
type wordEntry struct {
	word words.Word
	keep bool
}

// wordListModel is the bubbletea model for interactive word selection.
// Every word starts kept; space toggles the word under the cursor.
type wordListModel struct {
	entries []wordEntry
	cursor  int
	height  int
	offset  int
	aborted bool
}

// newWordListModel creates a picker with every word kept.
func newWordListModel(ws []words.Word) wordListModel {
	entries := make([]wordEntry, len(ws))
	for i, w := range ws {
		entries[i] = wordEntry{word: w, keep: true}
	}
	return wordListModel{
		entries: entries,
		height:  15,
	}
}

func (m wordListModel) Init() tea.Cmd {
	return nil
}

func (m wordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case " ":
			m.entries[m.cursor].keep = !m.entries[m.cursor].keep
		case "a":
			for i := range m.entries {
				m.entries[i].keep = true
			}
		case "n":
			for i := range m.entries {
				m.entries[i].keep = false
			}
		case "enter":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m wordListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Words"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle  a all  n none  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.entries) {
		end = len(m.entries)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		e := m.entries[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		mark := "✓"
		if !e.keep {
			mark = " "
		}
		rows = append(rows, []string{cursor, mark, e.word.Text, fmt.Sprintf("%g", e.word.Weight)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Word", "Weight").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.offset + row
			if idx >= len(m.entries) {
				return lipgloss.NewStyle()
			}
			if idx == m.cursor {
				return listSelectedStyle
			}
			if !m.entries[idx].keep {
				return listDroppedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d kept", m.cursor+1, len(m.entries), m.keptCount())))

	return b.String()
}

// kept returns the words still selected, in their original order.
func (m wordListModel) kept() []words.Word {
	out := make([]words.Word, 0, len(m.entries))
	for _, e := range m.entries {
		if e.keep {
			out = append(out, e.word)
		}
	}
	return out
}

func (m wordListModel) keptCount() int {
	n := 0
	for _, e := range m.entries {
		if e.keep {
			n++
		}
	}
	return n
}

// printWordTable renders the parsed word list as a static table.
func printWordTable(ws []words.Word) {
	rows := make([][]string, len(ws))
	for i, w := range ws {
		rows[i] = []string{fmt.Sprintf("%d", i+1), w.Text, fmt.Sprintf("%g", w.Weight)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Word", "Weight").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(t.Render())
}
