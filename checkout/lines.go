package checkout

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// LineReader hands out the lines of an input in order to everything that
// prompts on it. One goroutine does every read, started by the first
// ReadLine and running until the input ends. A ReadLine given up through its
// context leaves the line it was waiting for to the next caller.
type LineReader struct {
	in    io.Reader
	once  sync.Once
	lines chan lineResult
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{
		in:    in,
		lines: make(chan lineResult),
	}
}

// ReadLine returns the next line without its line ending. The last line of
// the input may end without one; after it ReadLine returns io.EOF.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	r.once.Do(func() {
		go r.run()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (r *LineReader) run() {
	defer close(r.lines)

	in := bufio.NewReader(r.in)
	for {
		line, err := in.ReadString('\n')
		if line != "" || err == nil {
			r.lines <- lineResult{line: strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")}
		}
		if err != nil {
			r.lines <- lineResult{err: err}
			return
		}
	}
}
