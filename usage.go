package bpaf

import "strings"

// RenderUsage lowers a Meta tree into the one-line usage grammar shown at
// the top of --help output (§4.12 "Usage synthesis"): optional items in brackets,
// required alternatives in parens joined by "|", positionals and commands
// trailing per invariant I3.
func RenderUsage(m Meta) string {
	switch t := m.(type) {
	case MetaAnd:
		var parts []string
		for _, c := range t.Children {
			if s := RenderUsage(c); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case MetaOr:
		var parts []string
		for _, c := range t.Children {
			if s := RenderUsage(c); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		if len(parts) == 1 {
			return parts[0]
		}
		return "(" + strings.Join(parts, " | ") + ")"
	case MetaOptional:
		inner := RenderUsage(t.Child)
		if inner == "" {
			return ""
		}
		return "[" + inner + "]"
	case MetaMany:
		inner := RenderUsage(t.Child)
		if inner == "" {
			return ""
		}
		return inner + "..."
	case MetaRequired:
		inner := RenderUsage(t.Child)
		if inner == "" {
			return ""
		}
		if _, isOr := t.Child.(MetaOr); isOr {
			return inner // MetaOr already parenthesizes itself
		}
		if _, isItem := t.Child.(MetaItem); isItem {
			return inner // a single primitive needs no parens
		}
		return "(" + inner + ")"
	case MetaDecorated:
		return RenderUsage(t.Child)
	case MetaItem:
		return renderPrimitiveUsage(t.Primitive)
	case MetaSkip:
		return ""
	default:
		return ""
	}
}

func renderPrimitiveUsage(p Primitive) string {
	switch v := p.(type) {
	case FlagMeta:
		return primaryRender(v.Names)
	case ArgumentMeta:
		return primaryRender(v.Names) + "=" + v.Metavar
	case PositionalMeta:
		return "<" + v.Metavar + ">"
	case CommandMeta:
		return v.Name
	case AnyMeta:
		if v.IsPositional {
			return "<" + v.Metavar + ">"
		}
		return v.Metavar
	default:
		return ""
	}
}

func primaryRender(ns Names) string {
	short, hasShort, long, hasLong := ns.Primary()
	if hasLong {
		return long.Render()
	}
	if hasShort {
		return short.Render()
	}
	return ""
}
