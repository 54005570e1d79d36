package pad

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadScenarios(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		fill    byte
		align   Alignment
		want    string
	}{
		{"left default", "hello", 8, ' ', Left, "   hello"},
		{"right", "hello", 8, ' ', Right, "hello   "},
		{"center odd", "hello", 8, ' ', Center, "  hello "},
		{"custom fill", "hi", 7, 'x', Left, "xxxxxhi"},
		{"width below length", "hello", 3, ' ', Center, "hello"},
		{"width equals length", "hello", 5, '*', Right, "hello"},
		{"empty content", "", 4, '-', Center, "----"},
		{"zero width", "", 0, '-', Left, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pad([]byte(tt.content), tt.width, tt.fill, tt.align)
			if diff := cmp.Diff([]byte(tt.want), got); diff != "" {
				t.Errorf("Pad() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPadProperties(t *testing.T) {
	for _, a := range []Alignment{Left, Right, Center} {
		for n := 0; n < 6; n++ {
			for width := 0; width < 12; width++ {
				content := []byte(strings.Repeat("a", n))
				got := Pad(content, width, '.', a)

				var out bytes.Buffer
				_, err := Write(&out, &Config{Width: width, Alignment: a, Fill: '.', Content: NewContent(string(content))})
				require.NoError(t, err)
				assert.Equal(t, string(got), out.String())

				if n >= width {
					assert.Equal(t, content, got)
					continue
				}

				require.Len(t, got, width)
				padding := width - n
				left := len(got) - len(bytes.TrimLeft(got, "."))
				right := len(got) - len(bytes.TrimRight(got, "."))
				if n == 0 {
					// All fill; the sides are indistinguishable.
					assert.Equal(t, width, left)
					continue
				}
				switch a {
				case Left:
					assert.Equal(t, padding, left)
					assert.Equal(t, 0, right)
				case Right:
					assert.Equal(t, 0, left)
					assert.Equal(t, padding, right)
				case Center:
					assert.Equal(t, (padding+1)/2, left)
					assert.Equal(t, padding-left, right)
					if padding%2 == 1 {
						assert.Equal(t, right+1, left)
					}
				}

				// A second pass to the same width changes nothing.
				assert.Equal(t, got, Pad(got, width, '.', a))
			}
		}
	}
}

func TestWrite(t *testing.T) {
	cfg := &Config{Width: 8, Alignment: Center, Fill: '*', Content: NewContent("hello")}

	var out bytes.Buffer
	n, err := Write(&out, cfg)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "**hello*", out.String())
}

func TestWriteUnchanged(t *testing.T) {
	cfg := &Config{Width: 2, Fill: ' ', Content: NewContent("hello")}

	var out bytes.Buffer
	_, err := Write(&out, cfg)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())
}

func TestWriteNilContent(t *testing.T) {
	var out bytes.Buffer
	_, err := Write(&out, &Config{Width: 3, Fill: 'z'})
	require.NoError(t, err)
	assert.Equal(t, "zzz", out.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	cfg := &Config{Width: 8, Fill: ' ', Content: NewContent("hello")}
	_, err := Write(failingWriter{}, cfg)
	assert.EqualError(t, err, "disk full")
}
