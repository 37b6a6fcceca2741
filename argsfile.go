package bpaf

import (
	"bufio"
	"io"

	"go.bpaf.dev/bpaf/internal/scanutil"
)

// ReadNullDelimitedArgs reads a NUL-separated argument list from r, the
// format produced by tools like `find -print0` and consumed by `xargs -0`.
// It's meant for a caller assembling argv for Run/RunInner from a
// "--files-from=-" style flag, where whitespace-splitting a filename list
// would break on names containing spaces or newlines.
func ReadNullDelimitedArgs(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(scanutil.SplitNull)

	var args []string
	for sc.Scan() {
		args = append(args, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return args, nil
}
