// Package logging is the engine's diagnostic output surface: four
// severities, colorized via github.com/fatih/color and honoring
// NO_COLOR, with per-subsystem verbosity carried in DebugConfig.
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	warnColor   = color.New(color.FgYellow)
	infoColor   = color.New(color.FgBlue)
	detailColor = color.New(color.FgWhite, color.Faint)
	subsysColor = color.New(color.FgCyan, color.Bold)

	colorsEnabled = true
)

// InitColors enables or disables colorized output, honoring the
// NO_COLOR convention (https://no-color.org/) regardless of enabled.
func InitColors(enabled bool) {
	colorsEnabled = enabled
	if os.Getenv("NO_COLOR") != "" {
		colorsEnabled = false
	}
	color.NoColor = !colorsEnabled
}

// AreColorsEnabled reports the current color state.
func AreColorsEnabled() bool {
	return colorsEnabled
}

// Error prints the engine's highest severity: frame/TLV drops that
// warrant operator attention, and Bug in non-debug builds.
func Error(format string, args ...interface{}) {
	printSeverity(errorColor, "ERROR: ", format, args...)
}

// Warning prints a recoverable but noteworthy condition (a Duplicate
// TLV discarded, a reassembly context timed out).
func Warning(format string, args ...interface{}) {
	printSeverity(warnColor, "WARN: ", format, args...)
}

// Info prints routine lifecycle events (a CMDU sent, a neighbor
// discovered).
func Info(format string, args ...interface{}) {
	printSeverity(infoColor, "", format, args...)
}

// Detail prints the fourth, most verbose severity: per-TLV or per-
// fragment tracing.
func Detail(format string, args ...interface{}) {
	printSeverity(detailColor, "", format, args...)
}

func printSeverity(c *color.Color, tag, format string, args ...interface{}) {
	if colorsEnabled {
		c.Printf(tag+format+"\n", args...)
	} else {
		fmt.Printf(tag+format+"\n", args...)
	}
}

// Subsystem prints a message tagged with the subsystem it came from
// (wire, tlv, cmdu, reassembly, lldp), gated by the caller checking
// DebugConfig first.
func Subsystem(subsystem, format string, args ...interface{}) {
	if colorsEnabled {
		subsysColor.Printf("[%s] ", subsystem)
		fmt.Printf(format+"\n", args...)
	} else {
		fmt.Printf("[%s] "+format+"\n", append([]interface{}{subsystem}, args...)...)
	}
}

// SubsystemDetail prints a Subsystem message only if level >= minLevel,
// the pattern DebugConfig-aware callers use for per-subsystem tracing.
func SubsystemDetail(subsystem string, level, minLevel int, format string, args ...interface{}) {
	if level >= minLevel {
		Subsystem(subsystem, format, args...)
	}
}
