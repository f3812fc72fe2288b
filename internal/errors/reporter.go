package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with context
type CompilerError struct {
	Level    ErrorLevel
	Code     string   // Error code like E0001
	Message  string   // Primary error message
	Subject  string   // Printed form of the offending value (optional)
	Notes    []string // Additional context notes
	HelpText string   // Help text for the error
}

func (e CompilerError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	if e.Message == "" {
		return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, GetErrorDescription(e.Code))
	}
	return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
}

// Is matches any CompilerError carrying the same code
func (e CompilerError) Is(target error) bool {
	switch t := target.(type) {
	case CompilerError:
		return t.Code == e.Code
	case *CompilerError:
		return t != nil && t.Code == e.Code
	}
	return false
}

// ErrorReporter handles consistent error formatting
type ErrorReporter struct {
	name string
}

// NewErrorReporter creates a new error reporter; name labels the unit being
// compiled (an expression, a file of expressions) in the location line
func NewErrorReporter(name string) *ErrorReporter {
	return &ErrorReporter{name: name}
}

// FormatError formats a compiler error with Rust-like styling
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Header: error[E0001]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	indent := "   "
	if er.name != "" {
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), er.name))
	}

	if err.Subject != "" {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), bold(err.Subject)))
	}

	for _, note := range err.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// getLevelColor returns the appropriate color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}
