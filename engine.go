package bpaf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.bpaf.dev/bpaf/internal/silog"
	"go.bpaf.dev/bpaf/internal/syncx"
)

// OptionParser wires a Parser[T] up to an executable entry point (§6
// "Run/RunInner"): tokenizing argv, splicing in --help/--version,
// classifying whatever's left over once the parser is done, and handing
// back either T or a diagnostic ready to print.
type OptionParser[T any] struct {
	inner    Parser[T]
	progName string
	version  string
	header   string
	footer   string
	logger   *silog.Logger
	env      Env
	config   ConfigSource
	style    Style
	out      io.Writer
	errOut   io.Writer

	helpText syncx.SetOnce[string]
}

// Option configures an OptionParser at construction time (§6
// "Configuration"), using the same functional-options style as the rest
// of the package.
type Option[T any] func(*OptionParser[T])

// WithVersion makes --version/-V print v and exit successfully.
func WithVersion[T any](v string) Option[T] {
	return func(o *OptionParser[T]) { o.version = v }
}

// WithHeader sets the text shown above the usage line in --help output.
func WithHeader[T any](h string) Option[T] {
	return func(o *OptionParser[T]) { o.header = h }
}

// WithFooter sets the text shown below the options listing in --help
// output.
func WithFooter[T any](f string) Option[T] {
	return func(o *OptionParser[T]) { o.footer = f }
}

// WithLogger attaches a logger used to trace tokenization and evaluation
// decisions at debug level — branch selection (and conflicts) in Or,
// repetition termination in Many/Some, and command dispatch, which gets
// its own WithPrefix-scoped logger for the body of the command.
func WithLogger[T any](l *silog.Logger) Option[T] {
	return func(o *OptionParser[T]) { o.logger = l }
}

// WithEnv overrides the environment-variable source consulted for
// primitives declared with .Env(...); the default is the real process
// environment.
func WithEnv[T any](e Env) Option[T] {
	return func(o *OptionParser[T]) { o.env = e }
}

// WithConfig attaches a structured-configuration fallback source (§6
// "Config fallback").
func WithConfig[T any](c ConfigSource) Option[T] {
	return func(o *OptionParser[T]) { o.config = c }
}

// WithColor sets the help-rendering style. Without it the style is
// PlainStyle; New does not check whether the output is a terminal
// (DetectStyle makes that check when called).
func WithColor[T any](s Style) Option[T] {
	return func(o *OptionParser[T]) { o.style = s }
}

// WithProgName overrides the program name shown in usage/help output;
// the default is filepath.Base(os.Args[0]).
func WithProgName[T any](name string) Option[T] {
	return func(o *OptionParser[T]) { o.progName = name }
}

// WithOutput overrides where RunOrExit writes help/version output and
// Stdout-destined failures; the default is os.Stdout.
func WithOutput[T any](w io.Writer) Option[T] {
	return func(o *OptionParser[T]) { o.out = w }
}

// WithErrOutput overrides where RunOrExit writes Stderr-destined
// failures; the default is os.Stderr.
func WithErrOutput[T any](w io.Writer) Option[T] {
	return func(o *OptionParser[T]) { o.errOut = w }
}

// New builds an OptionParser from p, panicking (via MustCheckInvariants)
// if p's Meta tree violates I3. That panic is a grammar bug in the
// caller's own parser construction, not a user-input problem, so it's
// appropriate to surface at startup rather than be handled per run.
func New[T any](p Parser[T], opts ...Option[T]) *OptionParser[T] {
	MustCheckInvariants(p.Meta())
	o := &OptionParser[T]{
		inner:    p,
		progName: filepath.Base(os.Args[0]),
		style:    PlainStyle(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RunInner tokenizes args and evaluates the parser against them,
// returning the typed result or an Error describing why it failed —
// including a finalized ParseFailure for --help/--version. Unlike Run, it
// never touches os.Exit, which makes it the entry point tests use.
func (o *OptionParser[T]) RunInner(args []string) (T, Error) {
	var zero T

	var logger *silog.Logger
	if o.logger != nil {
		logger = o.logger.With("prog", o.progName)
	}

	reg := NewNameRegistry(o.inner.Meta())
	toks, tokErr := Tokenize(args, reg)
	if tokErr != nil {
		if ae, ok := tokErr.(*AmbiguityError); ok {
			return zero, Message{Kind: KindAmbiguity{Pos: ae.Pos, Literal: ae.Literal}}
		}
		return zero, Message{Kind: KindExpected{Actual: tokErr.Error()}}
	}

	if logger != nil {
		logger.Debug("tokenized", "count", len(toks.Items))
	}

	if o.hasNamed(toks, 'h', "help") {
		return zero, &ParseFailure{Dest: Stdout, Rendered: o.renderHelp()}
	}
	if o.version != "" && o.hasNamed(toks, 'V', "version") {
		return zero, &ParseFailure{Dest: Stdout, Rendered: o.version + "\n"}
	}

	st := NewState(toks)
	st.env = o.env
	st.config = o.config
	st.logger = logger

	v, err := o.inner.eval(st)
	if err != nil {
		if logger != nil {
			logger.Debug("evaluation failed", "error", err.Error())
		}
		return zero, err
	}
	if !st.IsEmpty() {
		tok, _ := st.Head()
		return zero, ClassifyResidual(tok, o.inner.Meta(), o.inner.Meta())
	}
	return v, nil
}

// Run is RunInner with Error widened to the plain error interface, for
// callers that don't need to distinguish ParseFailure from a Missing or
// Message.
func (o *OptionParser[T]) Run(args []string) (T, error) {
	v, err := o.RunInner(args)
	if err != nil {
		return v, err
	}
	return v, nil
}

// osExit is a package-level indirection over os.Exit so tests can stub it
// with go.abhg.dev/testing/stub instead of actually terminating the test
// binary.
var osExit = os.Exit

// RunOrExit runs the parser against args (typically os.Args[1:]), printing a finalized
// failure to the right stream and calling os.Exit with the matching
// code, or printing a plain error to stderr and exiting 1. It's the
// one-liner a cmd/main.go is expected to call.
func (o *OptionParser[T]) RunOrExit(args []string) T {
	v, err := o.RunInner(args)
	if err == nil {
		return v
	}
	if pf, ok := err.(*ParseFailure); ok {
		w := o.out
		if pf.Dest == Stderr {
			w = o.errOut
		}
		fmt.Fprint(w, pf.Rendered)
		osExit(pf.ExitCode())
		var zero T
		return zero
	}
	fmt.Fprintln(o.errOut, err.Error())
	osExit(1)
	var zero T
	return zero
}

// hasNamed reports whether toks contains a Short(r) or Long(name) token
// anywhere, used for the top-level --help/--version splice. The scan
// covers every token, including those after a command word, so a -h or
// --help meant for a command body also produces the top-level help page.
func (o *OptionParser[T]) hasNamed(toks Tokens, r rune, name string) bool {
	for _, t := range toks.Items {
		switch v := t.(type) {
		case Short:
			if v.Rune == r {
				return true
			}
		case Long:
			if v.Name == name {
				return true
			}
		}
	}
	return false
}

// renderHelp returns the help page stored by the first call. RenderHelp is
// still evaluated on every call (it is the argument to Get), but only the
// first result is kept, since progName/header/footer/style never change
// after New returns.
func (o *OptionParser[T]) renderHelp() string {
	return o.helpText.Get(RenderHelp(o.progName, o.inner.Meta(), o.header, o.footer, o.style))
}
