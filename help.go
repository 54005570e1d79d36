package pad

import (
	"fmt"
	"io"
)

// Name is the command name used in diagnostics.
const Name = "padtool"

// Usage is the one-line synopsis of the command.
const Usage = "usage: " + Name + " [-c|-l|-r] [-p FILLCHAR] [-v] WIDTH [STRING]"

// PrintHelp writes the full help text to w.
func PrintHelp(w io.Writer) {
	fmt.Fprintln(w, Usage)
	fmt.Fprint(w, `Pad STRING to WIDTH with spaces and write it to stdout, with no trailing newline.

Arguments:
  WIDTH     The width of the padded string (non-negative integer; 0x, 0o, 0b
            and leading 0 select hexadecimal, octal and binary).  If less than
            or equal to the length of STRING, STRING is output unchanged.
  STRING    The string to be padded.  If not given, everything read from stdin
            is used.

Options:
  -c        Center align: pad on both sides.  If an odd number of padding
            characters is needed, use 1 more on the left than on the right.
  -h        Print this help message and exit.
  -l        Left pad: pad on the left.  This is the default.
  -p CHAR   Use CHAR (a single byte) as padding instead of space.
  -r        Right pad: pad on the right.
  -v        Log debug information to stderr.

Options -c, -l and -r are mutually exclusive.  Options may appear anywhere
before a "--" argument and may be grouped, as in -rp0.
`)
}
