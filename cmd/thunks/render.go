package main

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/tgedikli/jsonfx"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	yes    lipgloss.Style
	no     lipgloss.Style
	typ    lipgloss.Style
	border lipgloss.Style
}

func newStyles(colored bool) styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return styles{
			title:  plain,
			header: plain,
			cell:   plain.Padding(0, 1),
			yes:    plain,
			no:     plain,
			typ:    plain,
			border: plain,
		}
	}
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cell:   lipgloss.NewStyle().Padding(0, 1),
		yes:    lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		no:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		typ:    lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// memberRow is one line of the member table.
type memberRow struct {
	name  string
	shape string
	typ   string
	value string
	get   bool
	set   bool
}

func inspect(s *sample, src jsonfx.Source) ([]memberRow, error) {
	rows := make([]memberRow, 0, len(s.members))
	for _, m := range s.members {
		get, err := src.Getter(m)
		if err != nil {
			return nil, err
		}
		set, err := src.Setter(m)
		if err != nil {
			return nil, err
		}

		row := memberRow{
			name:  memberName(m),
			shape: memberShape(m),
			typ:   memberType(m).String(),
			get:   get != nil,
			set:   set != nil,
			value: "-",
		}
		if get != nil {
			row.value = formatValue(get(s.instance))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func renderSample(w io.Writer, st styles, s *sample, rows []memberRow) error {
	mark := func(ok bool) string {
		if ok {
			return st.yes.Render("yes")
		}
		return st.no.Render("no")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers("MEMBER", "SHAPE", "TYPE", "GET", "SET", "VALUE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		})
	for _, r := range rows {
		t.Row(r.name, r.shape, st.typ.Render(r.typ), mark(r.get), mark(r.set), r.value)
	}

	var b strings.Builder
	b.WriteString(st.title.Render(s.name))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	if len(s.ctors) > 0 {
		b.WriteString("constructors:")
		for _, c := range s.ctors {
			b.WriteString(" ")
			b.WriteString(c.String())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
