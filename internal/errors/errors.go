// Package errors formats MeowScript compiler diagnostics with source
// context, line/column information, and a caret pointing at the
// offending column, the way the CLI presents them to a user.
package errors

import (
	"fmt"
	"strings"

	"github.com/ShahzebX/MeowScript/internal/lexer"
)

// Kind distinguishes the five diagnostic kinds: lexical, syntax and
// semantic errors, the reserved-but-unused codegen error, and the
// internal error.
type Kind int

const (
	Lexical Kind = iota
	Syntax
	Semantic
	Codegen
	Internal
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical error"
	case Syntax:
		return "syntax error"
	case Semantic:
		return "semantic error"
	case Codegen:
		return "codegen error"
	case Internal:
		return "internal error"
	default:
		return "error"
	}
}

// CompilerError is a single compilation diagnostic carrying its
// source coordinates and, when available, the file and source text
// needed to render a caret-annotated snippet.
type CompilerError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New creates a CompilerError. Source and File may be empty; Format
// degrades gracefully when they are.
func New(kind Kind, pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with the uncolored rendering.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic header, the source line, and a caret
// under the error column. When color is true, ANSI codes highlight the
// caret and message for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s: %s in %s:%d:%d\n", e.Kind, e.Message, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s: %s at %d:%d\n", e.Kind, e.Message, e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders a list of diagnostics separated by blank lines.
func FormatErrors(errs []*CompilerError, color bool) string {
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(e.Format(color))
	}
	return sb.String()
}

// InternalError signals a contract violation of the core itself, such
// as popping an already-empty scope stack. It is always fatal and is
// never recovered from by any phase.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}
