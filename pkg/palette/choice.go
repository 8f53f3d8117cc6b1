package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var ErrUnknownChoice = errors.New("unknown palette")

// Choice selects how escape counts are turned into colors.
type Choice int

const (
	Banded Choice = iota
	BlackWhite
	Christmas
	Aquamarine
	Random
)

// Choices lists every palette in display order.
var Choices = []Choice{Banded, BlackWhite, Christmas, Aquamarine, Random}

var names = map[Choice]string{
	Banded:     "banded",
	BlackWhite: "blackwhite",
	Christmas:  "christmas",
	Aquamarine: "aquamarine",
	Random:     "random",
}

var aliases = map[string]Choice{
	"ti":            Banded,
	"bw":            BlackWhite,
	"black-white":   BlackWhite,
	"black&white":   BlackWhite,
	"black & white": BlackWhite,
}

func (c Choice) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// ParseChoice finds a palette by case-insensitive name.
func ParseChoice(name string) (Choice, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Choices {
		if names[c] == name {
			return c, nil
		}
	}
	if c, ok := aliases[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChoice, name)
}

// Set implements pflag.Value.
func (c *Choice) Set(name string) error {
	parsed, err := ParseChoice(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Choice) Type() string {
	return "palette"
}

// MarshalText lets choices travel as their names in JSON.
func (c Choice) MarshalText() ([]byte, error) {
	if _, ok := names[c]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChoice, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Choice) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

var _ pflag.Value = (*Choice)(nil)
