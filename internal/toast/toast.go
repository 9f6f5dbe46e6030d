// Package toast keeps a transient notification on screen for a fixed lifetime.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trendspotter/trendspotter/style"
)

// DefaultLifetime is used when a non-positive lifetime is configured.
const DefaultLifetime = 3 * time.Second

// ShowMsg asks the model to display Message.
type ShowMsg struct {
	Message string
}

// clearMsg expires the notification with the matching sequence number only,
// so a late tick never hides a newer message.
type clearMsg struct {
	seq int
}

// Model holds at most one visible notification.
type Model struct {
	message  string
	seq      int
	lifetime time.Duration
}

// New returns an empty model.
func New(lifetime time.Duration) *Model {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Model{lifetime: lifetime}
}

// Notify returns a command delivering message to whichever model handles it.
func Notify(message string) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Message: message}
	}
}

// Show displays message now and returns the command that clears it later.
func (m *Model) Show(message string) tea.Cmd {
	m.seq++
	m.message = message

	seq := m.seq
	return tea.Tick(m.lifetime, func(time.Time) tea.Msg {
		return clearMsg{seq: seq}
	})
}

// Update handles ShowMsg and expiry ticks.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowMsg:
		return m.Show(msg.Message)
	case clearMsg:
		if msg.seq == m.seq {
			m.message = ""
		}
	}
	return nil
}

// Message is the notification currently shown, if any.
func (m *Model) Message() string {
	return m.message
}

// Lifetime is how long a notification stays visible.
func (m *Model) Lifetime() time.Duration {
	return m.lifetime
}

var toastStyle = lipgloss.NewStyle().
	Foreground(style.TextColor).
	Background(style.BadgeColor).
	Padding(0, 1)

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.message == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + toastStyle.Render(m.message)
	return strings.Join(lines, "\n")
}
