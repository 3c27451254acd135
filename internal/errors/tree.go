package errors

import "fmt"

// TreeNotFound creates an error for a tree file that does not exist.
func TreeNotFound(path string) *NestError {
	return &NestError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("tree file not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Create the file with a root list, for example:

  name: my lists
  items:
    - id: first
      name: first item`,
	}
}

// TreeParseError creates an error for a tree file that could not be decoded.
func TreeParseError(path string, parseErr error) *NestError {
	return &NestError{
		Kind:    ErrTree,
		Message: fmt.Sprintf("failed to parse tree file: %s", path),
		Cause:   parseErr,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Files ending in .json are read as JSON, everything else as YAML.
  Each list needs a name and an items sequence; an item's nested list
  goes under its "list" key.`,
	}
}

// TreeWriteError creates an error for a tree file that could not be saved.
func TreeWriteError(path string, cause error) *NestError {
	return &NestError{
		Kind:    ErrTree,
		Message: fmt.Sprintf("failed to save tree file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the directory is writable, or pass -o to save elsewhere.",
	}
}

// EmptyRoot creates the error reported when the root list has no items.
func EmptyRoot(name string) *NestError {
	return &NestError{
		Kind:    ErrEmptyRoot,
		Message: ErrEmptyRoot.Error(),
		Details: map[string]string{
			"list": name,
		},
		Suggestion: "Add at least one item to the root list before opening it.",
	}
}
