package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mytrout/buildingblocks/internal/document"
	"github.com/mytrout/buildingblocks/pkg/guard"
)

// ErrorLevel represents the severity of an error message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
	ErrorLevelInfo
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level        ErrorLevel
	Context      string
	Problem      string
	Consequence  string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

func (l ErrorLevel) colors() (header, body *color.Color, symbol string) {
	switch l {
	case ErrorLevelWarning:
		return color.New(color.FgYellow, color.Bold), color.New(color.FgYellow), "!"
	case ErrorLevelInfo:
		return color.New(color.FgCyan, color.Bold), color.New(color.FgCyan), "i"
	default:
		return color.New(color.FgRed, color.Bold), color.New(color.FgRed), "✗"
	}
}

// FormatError creates a standardized error message with suggestions and help commands
//
// Example output:
//
//	✗ TYPE NOT FOUND: Custmer
//	   No type named 'Custmer' in model.yml.
//
//	   Did you mean: Customer, Customers?
//
//	   → List types: bbmodel describe model.yml
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	headerColor, bodyColor, symbol := opts.Level.colors()
	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s\n", symbol, strings.ToUpper(opts.Context))
		if opts.Problem != "" {
			bodyColor.Fprintf(&b, "   %s\n", opts.Problem)
		}
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if opts.Consequence != "" {
		b.WriteString("\n")
		bodyColor.Fprintf(&b, "   %s\n", opts.Consequence)
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// ModelError explains a document that could not be loaded. Validation
// failures from the model constructors name the offending member.
func ModelError(path string, err error, noColor bool) string {
	opts := ErrorOptions{
		Level:   ErrorLevelError,
		Context: "INVALID MODEL",
		Problem: fmt.Sprintf("%s could not be loaded.", path),
		NoColor: noColor,
	}

	switch {
	case errors.Is(err, guard.ErrMissingValue):
		opts.Consequence = fmt.Sprintf("Member '%s' is required but was not supplied.", guard.ParamOf(err))
	case errors.Is(err, guard.ErrBlankValue):
		opts.Consequence = fmt.Sprintf("Member '%s' cannot be empty or whitespace.", guard.ParamOf(err))
	case errors.Is(err, guard.ErrOutOfRange):
		opts.Consequence = fmt.Sprintf("Member '%s' has an unacceptable value: %v", guard.ParamOf(err), err)
	default:
		opts.Consequence = err.Error()
	}

	opts.HelpCommands = []string{
		"Check the document: bbmodel validate " + path,
		"Get help: bbmodel validate --help",
	}
	return FormatError(opts)
}

// TypeNotFoundError reports a describe target missing from the document.
func TypeNotFoundError(name, path string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "TYPE NOT FOUND",
		Problem:     fmt.Sprintf("No type named '%s' in %s.", name, path),
		Suggestions: suggestions,
		HelpCommands: []string{
			"List types: bbmodel describe " + path,
		},
		NoColor: noColor,
	})
}

// ConfigError creates a standardized configuration error
func ConfigError(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelError,
		Context: "CONFIGURATION ERROR",
		Problem: message,
		HelpCommands: []string{
			"View config: cat buildingblocks.yml",
			"Get help: bbmodel --help",
		},
		NoColor: noColor,
	})
}

// WriteIssues prints document issues one per line, errors in red and
// warnings in yellow.
func WriteIssues(w io.Writer, path string, issues []document.Issue, noColor bool) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	if noColor {
		red.DisableColor()
		yellow.DisableColor()
	}

	for _, issue := range issues {
		c := red
		if issue.Severity == document.SeverityWarning {
			c = yellow
		}
		c.Fprintf(w, "%s: %s\n", path, issue)
	}
}

// Warning creates a standardized warning message
func Warning(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelWarning,
		Problem: message,
		NoColor: noColor,
	})
}

// Info creates a standardized info message
func Info(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelInfo,
		Problem: message,
		NoColor: noColor,
	})
}
