package pad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]byte, int, byte) []byte
		in   string
		l    int
		r    byte
		want string
	}{
		{"left", PadLeft, "foobar", 10, 'x', "xxxxfoobar"},
		{"left space", PadLeft, "foo", 5, SPACE, "  foo"},
		{"left short width", PadLeft, "foobar", 3, 'x', "foobar"},
		{"right", PadRight, "foobar", 10, '0', "foobar0000"},
		{"right exact width", PadRight, "foobar", 6, 'x', "foobar"},
		{"right empty", PadRight, "", 3, '.', "..."},
		{"center even", PadCenter, "foobar", 10, '-', "--foobar--"},
		{"center odd", PadCenter, "foobar", 9, '-', "--foobar-"},
		{"center zero width", PadCenter, "foobar", 0, '-', "foobar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []byte(tt.want), tt.fn([]byte(tt.in), tt.l, tt.r))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		n, l        int
		a           Alignment
		left, right int
	}{
		{"left", 5, 8, Left, 3, 0},
		{"right", 5, 8, Right, 0, 3},
		{"center odd", 5, 8, Center, 2, 1},
		{"center even", 4, 8, Center, 2, 2},
		{"center one", 7, 8, Center, 1, 0},
		{"exact", 8, 8, Center, 0, 0},
		{"longer", 9, 8, Left, 0, 0},
		{"empty", 0, 0, Right, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := Split(tt.n, tt.l, tt.a)
			assert.Equal(t, tt.left, left)
			assert.Equal(t, tt.right, right)
		})
	}
}
