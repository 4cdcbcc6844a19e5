package cli

import (
	"io"
	"os"

	"github.com/kifulab/sgfkit/pkg/sgf/sgfcharset"
)

// readInput loads an SGF file and decodes it to UTF-8. "-" reads stdin.
// An empty charset honors the file's CA property; anything else forces
// that encoding.
func readInput(path, charset string) (string, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	if charset != "" {
		return sgfcharset.DecodeAs(raw, charset)
	}
	return sgfcharset.Decode(raw)
}

// nopCloser wraps an io.Writer with a no-op Close method, making
// os.Stdout usable as an io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout when
// the path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
