package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/cardstack/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Report prints err with its code and a suggestion where one applies,
// then returns err so RunE can propagate it to the exit code mapping.
// The returned error is marked so it is not printed a second time.
func (f *OutputFormatter) Report(err error) error {
	if err == nil {
		return nil
	}
	if IsReported(err) {
		return err
	}
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestionFor(err)); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &reportedError{err: err}
}

// reportedError is an error that has already been shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err went through OutputFormatter.Report
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

func suggestionFor(err error) string {
	switch {
	case errors.Is(err, models.ErrStoreUnavailable):
		return "The database is busy or unreachable; retry the command"
	case errors.Is(err, models.ErrDuplicateID):
		return "Pick an unused card id, or move the existing card with: cardstack card move"
	case errors.Is(err, models.ErrInvalidColumn):
		return "List columns with: cardstack column list"
	case errors.Is(err, models.ErrConstraintViolation):
		return "Run: cardstack check"
	case errors.Is(err, ErrUsage):
		return "Run the command with --help to see its flags"
	}
	return ""
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	// Default implementation - can be enhanced per data type
	fmt.Printf("%+v\n", data)
	return nil
}
