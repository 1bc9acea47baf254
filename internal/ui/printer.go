// Package ui prints views and messages for the shell.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jlym/frienddir/internal/profile"
)

const rule = "------------------------------------------"

// Printer writes to one writer. Colors are only emitted when that writer is a
// terminal.
type Printer struct {
	w io.Writer

	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	errText lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		errText: r.NewStyle().Foreground(lipgloss.Color("#FF3131")),
	}
}

func (p *Printer) UserList(names []string) {
	p.line(p.title.Render("User List"))
	for _, name := range names {
		p.line("    " + name)
	}
}

func (p *Printer) Profile(v *profile.View) {
	if len(v.Picture) > 0 {
		p.line(strings.Join(v.Picture, "\n"))
		p.line("")
	}
	p.line(p.label.Render("Name:") + " " + v.Name)
	p.line("")
	p.line(p.muted.Render(rule))

	p.line(p.label.Render("Friends:"))
	for _, friend := range v.Friends {
		p.line(friend)
	}
	p.line(p.muted.Render(rule))

	p.line(p.label.Render("Posts:"))
	for i, post := range v.Posts {
		if i > 0 {
			p.line("")
			p.line(p.muted.Render("==="))
			p.line("")
		}
		p.line(p.label.Render("From:") + " " + post.Author)
		p.line(p.label.Render("Date:") + " " + post.Date)
		p.line("")
		p.line(post.Contents)
	}
	p.line(p.muted.Render(rule))
}

func (p *Printer) Error(msg string) {
	p.line(p.errText.Render(msg))
}

func (p *Printer) Prompt(prompt string) {
	fmt.Fprint(p.w, prompt)
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.w, s)
}
