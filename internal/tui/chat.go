// Package tui implements the interactive chat session for the financial
// assistant. It is a thin terminal front end over the insight responder.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Responder answers one free-text question. Satisfied by insight.Responder.
type Responder interface {
	Respond(query string) string
}

const (
	chatWidth  = 72
	chatHeight = 16
)

var (
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#28A745"))
	frameStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d"))
)

const greeting = "Hi! I'm your financial assistant. I can help you analyze your spending, " +
	"give recommendations, and answer questions about your expenses. Try asking me something!"

// ChatModel is the bubbletea model for the assistant chat session.
type ChatModel struct {
	responder Responder
	history   []string
	input     textinput.Model
	viewport  viewport.Model
	quitting  bool
}

// NewChat creates a chat session backed by the given responder.
func NewChat(responder Responder) ChatModel {
	input := textinput.New()
	input.Placeholder = "Ask me anything about your finances..."
	input.CharLimit = 200
	input.Width = chatWidth - 4
	input.Focus()

	vp := viewport.New(chatWidth, chatHeight)

	m := ChatModel{
		responder: responder,
		input:     input,
		viewport:  vp,
	}
	m.append(assistantStyle.Render("assistant: ") + greeting)
	return m
}

// Init implements tea.Model.
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.append(userStyle.Render("you: ") + query)
			m.append(assistantStyle.Render("assistant: ") + m.responder.Respond(query))
			m.input.SetValue("")
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width < chatWidth+4 {
			m.viewport.Width = msg.Width - 4
			m.input.Width = msg.Width - 8
		}
	}

	var inputCmd, vpCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, vpCmd)
}

// View implements tea.Model.
func (m ChatModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s\n",
		frameStyle.Render(m.viewport.View()),
		m.input.View(),
		hintStyle.Render("enter to send • esc to quit"))
}

func (m *ChatModel) append(line string) {
	wrapped := lipgloss.NewStyle().Width(m.viewport.Width - 2).Render(line)
	m.history = append(m.history, wrapped)
	m.viewport.SetContent(strings.Join(m.history, "\n\n"))
	m.viewport.GotoBottom()
}
