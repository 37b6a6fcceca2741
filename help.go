package bpaf

import (
	"strings"

	"go.bpaf.dev/bpaf/internal/text"
)

// helpSections groups a Meta tree's primitives into the listings
// --help output shows them under (§4.11 "Help classifier"). Unlike usage
// rendering, help listing doesn't care about And/Or structure — every
// primitive gets one row regardless of how it's combined — so this walks
// with plain walkPrimitives rather than mirroring RenderUsage's
// recursion.
type helpSections struct {
	positionals []Primitive
	options     []Primitive
	commands    []CommandMeta
}

func collectHelpSections(m Meta) helpSections {
	var hs helpSections
	walkPrimitives(m, func(p Primitive) {
		switch v := p.(type) {
		case PositionalMeta:
			hs.positionals = append(hs.positionals, v)
		case FlagMeta:
			hs.options = append(hs.options, v)
		case ArgumentMeta:
			hs.options = append(hs.options, v)
		case CommandMeta:
			hs.commands = append(hs.commands, v)
		case AnyMeta:
			if v.IsPositional {
				hs.positionals = append(hs.positionals, v)
			} else {
				hs.options = append(hs.options, v)
			}
		}
	})
	return hs
}

func helpLeftColumn(p Primitive) string {
	switch v := p.(type) {
	case FlagMeta:
		return v.Names.String()
	case ArgumentMeta:
		return v.Names.String() + "=" + v.Metavar
	case PositionalMeta:
		return "<" + v.Metavar + ">"
	case CommandMeta:
		if len(v.Aliases) == 0 {
			return v.Name
		}
		return v.Name + ", " + strings.Join(v.Aliases, ", ")
	case AnyMeta:
		return v.Metavar
	default:
		return ""
	}
}

// RenderHelp renders a full --help page: usage line, optional header,
// one section per kind of primitive present, and an optional footer
// (§4.11). header/footer are passed through text.Dedent so callers can
// write them as indented Go string literals without that indent leaking
// into the rendered output.
func RenderHelp(progName string, m Meta, header, footer string, style Style) string {
	var b strings.Builder

	if header != "" {
		b.WriteString(text.Dedent(header))
		b.WriteString("\n\n")
	}

	b.WriteString(style.Header.Render("Usage:"))
	b.WriteString(" ")
	b.WriteString(progName)
	if u := RenderUsage(m); u != "" {
		b.WriteString(" ")
		b.WriteString(u)
	}
	b.WriteString("\n")

	hs := collectHelpSections(m)

	if len(hs.positionals) > 0 {
		writeHelpSection(&b, style, "Available positional items:", hs.positionals)
	}
	if len(hs.options) > 0 {
		writeHelpSection(&b, style, "Available options:", hs.options)
	}
	if len(hs.commands) > 0 {
		writeHelpSection(&b, style, "Available commands:", commandsAsPrimitives(hs.commands))
	}

	if footer != "" {
		b.WriteString("\n")
		b.WriteString(text.Dedent(footer))
		b.WriteString("\n")
	}

	return b.String()
}

func commandsAsPrimitives(cs []CommandMeta) []Primitive {
	out := make([]Primitive, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

func writeHelpSection(b *strings.Builder, style Style, title string, items []Primitive) {
	b.WriteString("\n")
	b.WriteString(style.Header.Render(title))
	b.WriteString("\n")

	width := 0
	for _, p := range items {
		if l := len(helpLeftColumn(p)); l > width {
			width = l
		}
	}

	for _, p := range items {
		left := helpLeftColumn(p)
		b.WriteString("  ")
		b.WriteString(style.Flag.Render(left))
		if help := p.Help(); help != "" {
			b.WriteString(strings.Repeat(" ", width-len(left)+2))
			b.WriteString(style.Dim.Render(help))
		}
		b.WriteString("\n")
	}
}
