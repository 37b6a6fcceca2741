package bpaf

// ClassifyResidual turns a token that survived to the end of a parse
// (nothing claimed it) into the most specific diagnostic available
// (§4.10 "Residual classification"). current is the Meta of whatever
// command body was active when the token was left over; global is the
// whole program's Meta, consulted only to recognize a name that would
// have matched one level down, producing a "that's valid under the X
// command" hint instead of a bare "unexpected argument".
func ClassifyResidual(tok Token, current, global Meta) Error {
	switch t := tok.(type) {
	case Long:
		return classifyUnknownName("--"+t.Name, t.Name, current, global, true, t.Pos())
	case Short:
		bare := string(t.Rune) + t.Tail
		return classifyUnknownName("-"+bare, bare, current, global, false, t.Pos())
	case Word:
		return classifyUnknownWord(t.Text, current, global, t.Pos())
	default:
		return Message{Kind: KindUnconsumed{Pos: tok.Pos()}}
	}
}

func classifyUnknownName(lit, bare string, current, global Meta, isLong bool, pos int) Error {
	names := collectFlagNames(current)

	// Dash confusion: the bare spelling exists, just with the other
	// prefix style.
	if isLong {
		if containsString(names, "-"+bare) {
			return Message{Kind: KindSuggestion{Pos: pos, Literal: lit, Variant: SuggestionExtraDash, Target: bare}}
		}
	} else {
		if containsString(names, "--"+bare) {
			return Message{Kind: KindSuggestion{Pos: pos, Literal: lit, Variant: SuggestionMissingDash, Target: bare}}
		}
	}

	if target, ok := closestName(lit, names, 3); ok {
		return Message{Kind: KindSuggestion{Pos: pos, Literal: lit, Variant: SuggestionTypo, Target: target}}
	}

	if path, target, ok := findNestedName(lit, global); ok {
		return Message{Kind: KindSuggestion{Pos: pos, Literal: lit, Variant: SuggestionNested, Target: target, CmdPath: path}}
	}

	if len(names) == 0 {
		return Message{Kind: KindUnconsumed{Pos: pos}}
	}
	return Message{Kind: KindExpected{List: rankSuggestions(lit, names, 3), Actual: lit}}
}

func classifyUnknownWord(word string, current, global Meta, pos int) Error {
	names := collectCommandNames(current)
	if target, ok := closestName(word, names, 3); ok {
		return Message{Kind: KindSuggestion{Pos: pos, Literal: word, Variant: SuggestionTypo, Target: target}}
	}
	if path, target, ok := findNestedName(word, global); ok {
		return Message{Kind: KindSuggestion{Pos: pos, Literal: word, Variant: SuggestionNested, Target: target, CmdPath: path}}
	}
	return Message{Kind: KindUnconsumed{Pos: pos}}
}

// collectNames lists every Name reachable in m without descending into a
// nested command's body. Used by Or to tell whether a residual token
// belongs to a sibling branch rather than being wholly unexpected.
func collectNames(m Meta) Names {
	var out Names
	walkPrimitives(m, func(p Primitive) {
		switch v := p.(type) {
		case FlagMeta:
			out = append(out, v.Names...)
		case ArgumentMeta:
			out = append(out, v.Names...)
		}
	})
	return out
}

// collectFlagNames lists every rendered Name ("-x", "--name") reachable
// in m without descending into a nested command's body.
func collectFlagNames(m Meta) []string {
	var out []string
	walkPrimitives(m, func(p Primitive) {
		switch v := p.(type) {
		case FlagMeta:
			for _, n := range v.Names {
				out = append(out, n.Render())
			}
		case ArgumentMeta:
			for _, n := range v.Names {
				out = append(out, n.Render())
			}
		}
	})
	return out
}

// collectCommandNames lists every command name/alias reachable in m
// without descending into a nested command's own body.
func collectCommandNames(m Meta) []string {
	var out []string
	walkPrimitives(m, func(p Primitive) {
		if c, ok := p.(CommandMeta); ok {
			out = append(out, c.Name)
			out = append(out, c.Aliases...)
		}
	})
	return out
}

// findNestedName searches global, depth first, for a command whose body
// contains a name close to literal, returning the path of command names
// leading to it. Used to turn "ran a subcommand's flag at the wrong
// level" into a targeted hint rather than a generic unexpected-argument
// message.
func findNestedName(literal string, global Meta) (path []string, target string, ok bool) {
	var walk func(m Meta, path []string) (bool, []string, string)
	walk = func(m Meta, path []string) (bool, []string, string) {
		switch t := m.(type) {
		case MetaAnd:
			for _, c := range t.Children {
				if found, p, tgt := walk(c, path); found {
					return true, p, tgt
				}
			}
		case MetaOr:
			for _, c := range t.Children {
				if found, p, tgt := walk(c, path); found {
					return true, p, tgt
				}
			}
		case MetaOptional:
			return walk(t.Child, path)
		case MetaMany:
			return walk(t.Child, path)
		case MetaRequired:
			return walk(t.Child, path)
		case MetaDecorated:
			return walk(t.Child, path)
		case MetaItem:
			if cmd, isCmd := t.Primitive.(CommandMeta); isCmd {
				childPath := append(append([]string(nil), path...), cmd.Name)
				names := append(collectFlagNames(cmd.InnerMeta), collectCommandNames(cmd.InnerMeta)...)
				if tgt, found := closestName(literal, names, 3); found {
					return true, childPath, tgt
				}
				if found, p, tgt := walk(cmd.InnerMeta, childPath); found {
					return true, p, tgt
				}
			}
		case MetaSkip:
		}
		return false, nil, ""
	}
	found, p, tgt := walk(global, nil)
	return p, tgt, found
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
