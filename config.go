package pad

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/charlieparkes/go-structs"
	"github.com/mitchellh/mapstructure"
)

// Alignment selects which side(s) of the content receive fill bytes.
type Alignment int

const (
	Left   Alignment = iota // fill before the content
	Right                   // fill after the content
	Center                  // fill split around the content, odd byte on the left
)

func (a Alignment) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

func (a Alignment) valid() bool {
	return a >= Left && a <= Center
}

// ParseAlignment accepts an alignment name or its single-letter flag.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	case "c", "center", "centre":
		return Center, nil
	}
	return Left, usagef("unknown alignment: '%s'", s)
}

// Config is a fully validated padding request.
type Config struct {
	Width     int
	Alignment Alignment
	Fill      byte
	Content   *Content `mapstructure:"-"`
}

// NewConfig decodes loosely typed fields into a Config. Recognised keys are
// Width, Alignment and Fill; values may be strings as they appear on the
// command line or the corresponding Go values. Missing keys keep their
// defaults: left alignment, space fill. Content is left nil.
func NewConfig(fields map[string]interface{}) (*Config, error) {
	cfg := &Config{Alignment: Left, Fill: SPACE}

	var hookErr error
	decodeHook := func(from reflect.Value, to reflect.Value) (interface{}, error) {
		v, err := decodeField(from, to)
		if err != nil && hookErr == nil {
			hookErr = err
		}
		return v, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		DecodeHook:  decodeHook,
		Result:      cfg,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(fields); err != nil {
		if hookErr != nil {
			return nil, hookErr
		}
		return nil, &UsageError{Msg: err.Error()}
	}

	if cfg.Width < 0 {
		return nil, usagef("WIDTH must be a non-negative integer: '%d'", cfg.Width)
	}
	if !cfg.Alignment.valid() {
		return nil, usagef("unknown alignment: '%d'", int(cfg.Alignment))
	}

	return cfg, nil
}

func decodeField(from reflect.Value, to reflect.Value) (interface{}, error) {
	if from.Kind() != reflect.String {
		return from.Interface(), nil
	}
	s := from.String()
	switch to.Interface().(type) {
	case Alignment:
		return ParseAlignment(s)
	case byte:
		return parseFill(s)
	case int:
		return parseWidth(s)
	}
	return from.Interface(), nil
}

// parseWidth accepts a non-negative integer in base 10, or in the base given
// by a 0x, 0o, 0b or leading 0 prefix.
func parseWidth(s string) (int, error) {
	if s == "" || strings.ContainsAny(s, "+-_ \t\n\v\f\r") {
		return 0, usagef("WIDTH must be a non-negative integer: '%s'", s)
	}
	n, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil || n < 0 {
		return 0, usagef("WIDTH must be a non-negative integer: '%s'", s)
	}
	return int(n), nil
}

func parseFill(s string) (byte, error) {
	if len(s) != 1 {
		return 0, usagef("-p requires single character: '%s'", s)
	}
	return s[0], nil
}

type configFields struct {
	Width     int    `pad:"name=width"`
	Alignment string `pad:"name=alignment"`
	Fill      string `pad:"name=fill"`
	Source    string `pad:"name=source"`
	Length    int    `pad:"name=length"`
}

// Fields flattens the configuration into strings for logging.
func (c *Config) Fields() map[string]string {
	output := map[string]string{}
	view := configFields{
		Width:     c.Width,
		Alignment: c.Alignment.String(),
		Fill:      strconv.QuoteRune(rune(c.Fill)),
		Source:    c.Content.Source().String(),
		Length:    c.Content.Len(),
	}

	decodeHook := func(from reflect.Value, to reflect.Value, tags map[string]string) (interface{}, error) {
		return from.Interface(), nil
	}

	if err := structs.FillMap(view, output, "pad", decodeHook); err != nil {
		return map[string]string{"error": err.Error()}
	}
	return output
}
