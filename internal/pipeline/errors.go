package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers classifying pipeline failures. Fatal errors halt a run
// before any destructive write; record errors are logged and the run
// continues; advisory errors must never be resolved silently in a data-losing
// direction.
var (
	ErrFatal    = errors.New("fatal pipeline error")
	ErrRecord   = errors.New("record error")
	ErrAdvisory = errors.New("advisory")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for exit-code classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrRecord
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err should abort the run with a non-zero exit
// before any output file is touched.
func IsFatal(err error) bool {
	return errors.Is(err, ErrFatal)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
