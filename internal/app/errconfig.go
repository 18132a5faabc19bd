package app

import "fmt"

// argError is an InvalidArgument: the caller supplied a bad parameter. It
// always names the offending field, is surfaced as a tool error, and is
// never fatal to the process.
type argError struct {
	Field string
	Msg   string
}

func (e argError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Msg)
}

func errEmptyPrompt() argError {
	return argError{
		Field: "prompt",
		Msg:   "prompt must be a non-empty string",
	}
}

func errPromptTooLong(length int, limit int) argError {
	return argError{
		Field: "prompt",
		Msg:   fmt.Sprintf("prompt is %d characters; the maximum is %d", length, limit),
	}
}

func errUnknownRule(name string) argError {
	return argError{
		Field: "rules",
		Msg:   fmt.Sprintf("unknown rule %q", name),
	}
}

func errUnknownFocusArea(value string) argError {
	return argError{
		Field: "focus_area",
		Msg:   fmt.Sprintf("unrecognized focus_area %q; expected one of clarity, structure, examples, reasoning, expertise", value),
	}
}

func errMalformedArguments(err error) argError {
	return argError{
		Field: "arguments",
		Msg:   fmt.Sprintf("malformed arguments: %s", err.Error()),
	}
}
