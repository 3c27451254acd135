package errors

import "fmt"

// TerminalUnavailable creates an error for when the interactive UI cannot
// start, either because stdin/stdout is not a terminal or because the UI
// program failed.
func TerminalUnavailable(cause error) *NestError {
	return &NestError{
		Kind:    ErrTerminal,
		Message: "interactive terminal unavailable",
		Cause:   cause,
		Suggestion: `The editor needs a terminal on stdin and stdout.
  To drive it without one, use:
    nestlist replay <file> --script <script>
  To print a tree:
    nestlist show <file>`,
	}
}

// ScriptParseError creates an error for an unrecognised replay script line.
func ScriptParseError(line int, text string) *NestError {
	return &NestError{
		Kind:    ErrScript,
		Message: fmt.Sprintf("line %d: unknown command %q", line, text),
		Details: map[string]string{
			"line": fmt.Sprint(line),
		},
		Suggestion: `Valid commands, one per line:
  down, up, left (collapse), back, edit (descend), add, type <text>,
  backspace, enter, esc, delete, save, quit
  Blank lines and lines starting with # are ignored.`,
	}
}

// ContextCancelled creates an error for an interrupted session.
func ContextCancelled(operation string) *NestError {
	return &NestError{
		Kind:    ErrTerminal,
		Message: fmt.Sprintf("%s was cancelled", operation),
		Details: map[string]string{
			"operation": operation,
		},
		Suggestion: "Unsaved changes were discarded. Save before exiting to keep them.",
	}
}
