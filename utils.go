package pad

import "bytes"

const (
	SPACE byte = ' ' // UTF-8 32
)

// Split returns how many fill bytes go on each side of content of length n
// to reach width l. The odd byte of a centered split goes on the left.
func Split(n, l int, a Alignment) (left, right int) {
	if n >= l {
		return 0, 0
	}
	padding := l - n
	switch a {
	case Right:
		return 0, padding
	case Center:
		right = padding / 2
		return padding - right, right
	default:
		return padding, 0
	}
}

// PadLeft puts fill byte 'r' on the left side of byte string 'bs' until length equals 'l'.
func PadLeft(bs []byte, l int, r byte) []byte {
	return pad(bs, l, r, Left)
}

// PadRight puts fill byte 'r' on the right side of byte string 'bs' until length equals 'l'.
func PadRight(bs []byte, l int, r byte) []byte {
	return pad(bs, l, r, Right)
}

// PadCenter splits fill byte 'r' around byte string 'bs' until length equals 'l'.
func PadCenter(bs []byte, l int, r byte) []byte {
	return pad(bs, l, r, Center)
}

func pad(bs []byte, l int, r byte, a Alignment) []byte {
	left, right := Split(len(bs), l, a)
	if left == 0 && right == 0 {
		return bs
	}
	out := make([]byte, 0, l)
	out = append(out, fill(r, left)...)
	out = append(out, bs...)
	return append(out, fill(r, right)...)
}

// fill returns n copies of r.
func fill(r byte, n int) []byte {
	if n == 0 {
		return nil
	}
	return bytes.Repeat([]byte{r}, n)
}
