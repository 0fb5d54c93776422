package telemetry

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// maxLine bounds a single message.
const maxLine = 4096

// Reader yields valid events from a line-oriented stream.
type Reader struct {
	sc        *bufio.Scanner
	logger    *zap.Logger
	line      int
	discarded int
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithReaderLogger logs discarded messages at debug level.
func WithReaderLogger(l *zap.Logger) ReaderOption {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewReader wraps r. Messages end in "\r\n" or "\n".
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), maxLine)
	rd := &Reader{sc: sc, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Next returns the next valid event. Blank lines are skipped silently,
// malformed ones are counted. Returns io.EOF at end of stream.
func (r *Reader) Next() (Event, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}
		ev, ok := Parse(text)
		if !ok {
			r.discarded++
			r.logger.Debug("discarding malformed telemetry",
				zap.Int("line", r.line),
				zap.String("message", text))
			continue
		}
		return ev, nil
	}
	if err := r.sc.Err(); err != nil {
		return Event{}, fmt.Errorf("telemetry: line %d: %w", r.line+1, err)
	}
	return Event{}, io.EOF
}

// Discarded returns the number of malformed messages skipped so far.
func (r *Reader) Discarded() int { return r.discarded }
