package view

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a state from the text of the four viewer inputs.
func Parse(x, y, scale, limit string) (State, error) {
	var s State
	var err error

	s.CenterX, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return State{}, fmt.Errorf("parsing x: %w", err)
	}

	s.CenterY, err = strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return State{}, fmt.Errorf("parsing y: %w", err)
	}

	s.Scale, err = strconv.ParseFloat(strings.TrimSpace(scale), 64)
	if err != nil {
		return State{}, fmt.Errorf("parsing scale: %w", err)
	}

	l, err := strconv.ParseUint(strings.TrimSpace(limit), 10, 0)
	if err != nil {
		return State{}, fmt.Errorf("parsing limit: %w", err)
	}
	s.Limit = uint(l)

	if err := s.Validate(); err != nil {
		return State{}, err
	}

	return s, nil
}

// Format returns the text shown in the four viewer inputs for s.
func (s State) Format() (x, y, scale, limit string) {
	return strconv.FormatFloat(s.CenterX, 'g', -1, 64),
		strconv.FormatFloat(s.CenterY, 'g', -1, 64),
		strconv.FormatFloat(s.Scale, 'g', -1, 64),
		strconv.FormatUint(uint64(s.Limit), 10)
}
