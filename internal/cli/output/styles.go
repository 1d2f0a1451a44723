package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	FilePath lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Hint     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, isTTY bool) *Styles {
	if !isTTY {
		plain := r.NewStyle()
		return &Styles{
			Header1: plain, Header2: plain, Bold: plain, Muted: plain, FilePath: plain,
			Success: plain, Error: plain, Warning: plain, Info: plain, Hint: plain,
		}
	}
	return &Styles{
		Header1:  r.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("12")),
		Header2:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:     r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
		FilePath: r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("10")),
		Error:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     r.NewStyle().Foreground(lipgloss.Color("12")),
		Hint:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
