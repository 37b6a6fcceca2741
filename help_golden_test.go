package bpaf

import (
	"testing"

	"github.com/hexops/autogold/v2"
)

func TestRenderUsageGoldenOrOfCommandAndFlag(t *testing.T) {
	cmd := Command("push", ArgumentString(Long("remote"), "REMOTE")).
		Alias("p").
		Help("push the current branch")
	top := Or[string](
		Map(cmd, func(s string) string { return s }),
		Map(Switch(Long("version")), func(bool) string { return "" }),
	)

	autogold.Expect("(push | --version)").Equal(t, RenderUsage(top.Meta()))
}

func TestRenderUsageGoldenSequence(t *testing.T) {
	p := Construct2(
		ArgumentString(Long("name").Short('n'), "NAME"),
		Switch(Long("loud")),
		func(string, bool) string { return "" },
	)

	autogold.Expect("--name=NAME --loud").Equal(t, RenderUsage(p.Meta()))
}

func TestHelpLeftColumnGoldenForEachPrimitiveKind(t *testing.T) {
	autogold.Expect([]string{
		"--name, -n=NAME",
		"--loud",
		"<EXTRA>",
		"push, p",
	}).Equal(t, []string{
		helpLeftColumn(ArgumentMeta{Names: Names{longName("name"), shortName('n')}, Metavar: "NAME"}),
		helpLeftColumn(FlagMeta{Names: Names{longName("loud")}}),
		helpLeftColumn(PositionalMeta{Metavar: "EXTRA"}),
		helpLeftColumn(CommandMeta{Name: "push", Aliases: []string{"p"}}),
	})
}
