package cli

import (
	"io"
	"os"

	"github.com/matzehuels/deptree/pkg/errors"
)

// readInput returns the text to analyze.
//
// With no argument the text is read from stdin. An argument naming an
// existing regular file is read from disk. Any other argument is itself the
// text, so short snippets can be passed inline: deptree -i "Dogs bark."
func readInput(arg string, stdin io.Reader) (string, error) {
	if arg == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeConfiguration, err, "read stdin")
		}
		return string(data), nil
	}

	info, err := os.Stat(arg)
	if err != nil || !info.Mode().IsRegular() {
		return arg, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfiguration, err, "read %s", arg)
	}
	return string(data), nil
}
