package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"filmrec/internal/ui/input/keys"
)

// pagerClosedMsg is sent when the pager returns control of the terminal
type pagerClosedMsg struct {
	title string
	err   error
}

// Pager builds a command that shows content full screen. The command is run
// through tea.Exec, which releases the terminal while it runs.
type Pager interface {
	Command(title, content string) tea.ExecCommand
}

// OvPager shows content in the ov pager
type OvPager struct{}

func (OvPager) Command(title, content string) tea.ExecCommand {
	return &ovCommand{title: title, content: content}
}

type ovCommand struct {
	title   string
	content string
}

// ov opens the tty itself, so the streams tea.Exec hands over are unused
func (c *ovCommand) SetStdin(io.Reader)  {}
func (c *ovCommand) SetStdout(io.Writer) {}
func (c *ovCommand) SetStderr(io.Writer) {}

func (c *ovCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Don't write the document back to the screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)
	root.Doc.Caption = c.title

	if err := root.Run(); err != nil {
		return fmt.Errorf("pager exited with error: %w", err)
	}
	return nil
}

// openPager returns a command that hands the terminal to the pager
func openPager(p Pager, title, content string) tea.Cmd {
	return tea.Exec(p.Command(title, content), func(err error) tea.Msg {
		return pagerClosedMsg{title: title, err: err}
	})
}

// renderHelpContent lists every key binding grouped the same way as the
// full help view.
func renderHelpContent(title string, km keys.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sections := []string{"Navigation", "Search", "Other"}

	var help strings.Builder
	help.WriteString(titleStyle.Render(title + " Help"))
	help.WriteString("\n")

	for i, column := range km.FullHelp() {
		name := "Other"
		if i < len(sections) {
			name = sections[i]
		}
		help.WriteString(sectionStyle.Render(name))
		help.WriteString("\n")
		for _, binding := range column {
			help.WriteString(formatBinding(binding, keyStyle, descStyle))
		}
		help.WriteString("\n")
	}

	return help.String()
}

func formatBinding(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
}
