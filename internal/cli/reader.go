package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Reader provides context-aware input reading that can be interrupted.
type Reader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewReader creates a context-aware reader.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("reader cannot be nil")
	}
	return &Reader{reader: bufio.NewReader(r)}
}

// ReadLine reads one trimmed line, respecting context cancellation. The
// underlying read cannot be aborted; on cancellation the caller returns
// immediately and the goroutine drains when the read completes.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}

// Confirm prompts the user with a yes/no question and reports whether they
// answered yes. Anything other than "y"/"yes" counts as no.
func Confirm(ctx context.Context, r *Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)

	answer, err := r.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
