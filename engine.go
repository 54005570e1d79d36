package pad

import (
	"bufio"
	"io"
)

// Pad returns content padded to width with fill byte r according to a.
// Content that already reaches width is returned unchanged.
func Pad(content []byte, width int, r byte, a Alignment) []byte {
	return pad(content, width, r, a)
}

// Write writes the padded content of cfg to w: left fill, content, right fill,
// with no trailing newline. It returns the number of bytes written.
func Write(w io.Writer, cfg *Config) (int, error) {
	content := cfg.Content.Bytes()
	left, right := Split(len(content), cfg.Width, cfg.Alignment)

	bw := bufio.NewWriter(w)
	var n int
	for _, segment := range [][]byte{fill(cfg.Fill, left), content, fill(cfg.Fill, right)} {
		m, err := bw.Write(segment)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
