// Command greet is a worked example of assembling a bpaf parser: a
// required name, an optional count, a loud switch, and a repeatable list
// of people to cc, dispatched to one of two subcommands.
package main

import (
	"fmt"
	"os"
	"strings"

	"go.bpaf.dev/bpaf"
)

type greetArgs struct {
	name  string
	loud  bool
	count int
	cc    []string
}

type byeArgs struct {
	name string
}

type command struct {
	greet *greetArgs
	bye   *byeArgs
}

func parser() bpaf.Parser[command] {
	greet := bpaf.Command("greet", bpaf.Construct4(
		bpaf.ArgumentString(bpaf.Long("name").Short('n').Help("who to greet"), "NAME"),
		bpaf.Switch(bpaf.Long("loud").Help("shout the greeting")),
		bpaf.Fallback(bpaf.ArgumentInt(bpaf.Long("count").Help("how many times to say it"), "N"), 1),
		bpaf.Many(bpaf.ArgumentString(bpaf.Long("cc").Help("someone else to greet too"), "NAME")),
		func(name string, loud bool, count int, cc []string) command {
			return command{greet: &greetArgs{name: name, loud: loud, count: count, cc: cc}}
		},
	)).Help("greet someone by name")

	bye := bpaf.Map(
		bpaf.Command("bye", bpaf.ArgumentString(bpaf.Long("name").Short('n'), "NAME")).
			Help("say goodbye to someone"),
		func(name string) command { return command{bye: &byeArgs{name: name}} },
	)

	return bpaf.Or[command](greet, bye)
}

func run(args []string) int {
	op := bpaf.New(parser(),
		bpaf.WithVersion[command]("greet 0.1.0"),
		bpaf.WithHeader[command]("greet says hello (or goodbye) on the command line."),
	)
	cmd := op.RunOrExit(args)

	switch {
	case cmd.greet != nil:
		g := cmd.greet
		line := "Hello, " + g.name
		if len(g.cc) > 0 {
			line += " (cc: " + strings.Join(g.cc, ", ") + ")"
		}
		line += "!"
		if g.loud {
			line = strings.ToUpper(line)
		}
		for i := 0; i < g.count; i++ {
			fmt.Println(line)
		}
	case cmd.bye != nil:
		fmt.Printf("Goodbye, %s!\n", cmd.bye.name)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
