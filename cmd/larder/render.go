package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"larder/internal/quantity"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
	ansiDim   = "\x1b[2m"
)

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len([]rune(line)))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func checkbox(checked bool, colorize bool) string {
	if !checked {
		return "[ ]"
	}
	if colorize {
		return ansiGreen + "[x]" + ansiReset
	}
	return "[x]"
}

// dimChecked greys out text for checked rows.
func dimChecked(text string, checked, colorize bool) string {
	if checked && colorize && text != "" {
		return ansiDim + text + ansiReset
	}
	return text
}

func amount(q *float64, unit string) string {
	return strings.TrimSpace(quantity.FormatOptional(q) + " " + unit)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
