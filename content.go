package pad

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
)

// initialBufferSize caps the first stdin allocation so a huge WIDTH does not
// reserve memory up front.
const initialBufferSize = 1024

// ErrTooLarge is wrapped by the ResourceError returned when streamed content
// outgrows its limit.
var ErrTooLarge = errors.New("input too large")

// Source tells where the bytes of a Content came from.
type Source int

const (
	FromArgument Source = iota
	FromStream
)

func (s Source) String() string {
	switch s {
	case FromArgument:
		return "argument"
	case FromStream:
		return "stream"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Content is the byte sequence to be padded.
//
// Streamed content owns its buffer and drops it on Release. Argument content
// is a view of a string owned by the caller; releasing it is a no-op.
type Content struct {
	data   []byte
	source Source
}

// NewContent wraps an argument string.
func NewContent(s string) *Content {
	return &Content{data: []byte(s), source: FromArgument}
}

// Bytes returns the content. The slice must not be modified.
func (c *Content) Bytes() []byte {
	if c == nil {
		return nil
	}
	return c.data
}

func (c *Content) Len() int {
	return len(c.Bytes())
}

func (c *Content) Source() Source {
	if c == nil {
		return FromArgument
	}
	return c.source
}

// Release drops the buffer of streamed content. It is safe to call more than
// once and on a nil Content.
func (c *Content) Release() {
	if c == nil || c.source != FromStream {
		return
	}
	c.data = nil
}

// ReadContent drains r into a buffer sized for width and returns it as
// streamed content. The buffer starts at min(width, 1024) bytes and doubles
// whenever it fills up. A positive limit bounds the content size.
func ReadContent(r io.Reader, width, limit int) (*Content, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	size := width
	if size > initialBufferSize {
		size = initialBufferSize
	}
	if size < 0 {
		size = 0
	}
	if limit > 0 && size > limit {
		size = limit
	}
	buf := make([]byte, size)

	n := 0
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		if n >= len(buf) {
			buf, err = grow(buf, limit)
			if err != nil {
				return nil, err
			}
		}
		buf[n] = b
		n++
	}

	return &Content{data: buf[:n], source: FromStream}, nil
}

// grow returns a buffer twice the size of buf holding a copy of its bytes.
func grow(buf []byte, limit int) ([]byte, error) {
	size := len(buf)
	if size > math.MaxInt/2 {
		return nil, &ResourceError{Size: -1, Err: ErrTooLarge}
	}
	size *= 2
	if size == 0 {
		size = 1
	}
	if limit > 0 && size > limit {
		if len(buf) >= limit {
			return nil, &ResourceError{Size: len(buf) + 1, Err: ErrTooLarge}
		}
		size = limit
	}
	grown := make([]byte, size)
	copy(grown, buf)
	return grown, nil
}
