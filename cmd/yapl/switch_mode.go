package main

import (
	"fmt"
	"io"
	"strings"
)

// switchMode is the value of an auto|on|off flag such as --color or --ui.
// auto follows whether the output is a terminal.
type switchMode uint8

const (
	switchAuto switchMode = iota
	switchOn
	switchOff
)

func parseSwitch(flag, value string) (switchMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return switchAuto, nil
	case "on":
		return switchOn, nil
	case "off":
		return switchOff, nil
	default:
		return switchAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

// switchFlag reads and parses a persistent or local auto|on|off flag.
func switchFlag(flags interface{ GetString(string) (string, error) }, name string) (switchMode, error) {
	value, err := flags.GetString(name)
	if err != nil {
		return switchAuto, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return parseSwitch(name, value)
}

// enabled resolves the mode for output written to w.
func (m switchMode) enabled(w io.Writer) bool {
	switch m {
	case switchOn:
		return true
	case switchOff:
		return false
	default:
		return isTerminal(w)
	}
}
