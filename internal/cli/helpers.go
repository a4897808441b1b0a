package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Global output flags, set once from the root command.
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags wires the root command's persistent flags into this
// package.
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

func printStatus(w io.Writer, glyph, plain, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "%s: %s\n", plain, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", glyph, msg)
}

// PrintSuccess prints a success message unless quiet mode is enabled.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	printStatus(os.Stdout, "✓", "OK", format, args...)
}

// PrintInfo prints an informational message unless quiet mode is enabled.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	printStatus(os.Stdout, "ℹ", "INFO", format, args...)
}

// PrintWarning prints a warning to stderr.
func PrintWarning(format string, args ...interface{}) {
	printStatus(os.Stderr, "⚠", "WARNING", format, args...)
}

// PrintError prints an error to stderr.
func PrintError(format string, args ...interface{}) {
	printStatus(os.Stderr, "✗", "ERROR", format, args...)
}

// Confirm prompts on stdin. With --force set the prompt is skipped and the
// answer is yes.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Print(prompt + suffix)

	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}
