package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrDirectoryRead = errors.New("directory read error")
	ErrMetadata      = errors.New("metadata error")
	ErrPlanning      = errors.New("planning error")
	ErrMove          = errors.New("move error")
	ErrLocked        = errors.New("directory locked")
)

// Metadata kinds. Both also match ErrMetadata.
var (
	ErrCreationTimeUnavailable = fmt.Errorf("%w: creation time unavailable", ErrMetadata)
	ErrIO                      = fmt.Errorf("%w: io error", ErrMetadata)
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether err must abort the whole run rather than a single file.
func Fatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrConfiguration), errors.Is(err, ErrDirectoryRead), errors.Is(err, ErrLocked):
		return true
	default:
		return false
	}
}

// Kind returns the taxonomy label for err, most specific first.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "ConfigurationError"
	case errors.Is(err, ErrDirectoryRead):
		return "DirectoryReadError"
	case errors.Is(err, ErrLocked):
		return "Locked"
	case errors.Is(err, ErrCreationTimeUnavailable):
		return "CreationTimeUnavailable"
	case errors.Is(err, ErrIO):
		return "IoError"
	case errors.Is(err, ErrMetadata):
		return "MetadataError"
	case errors.Is(err, ErrPlanning):
		return "PlanningError"
	case errors.Is(err, ErrMove):
		return "MoveError"
	default:
		return "Error"
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
