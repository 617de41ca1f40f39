package palette

import (
	"fmt"
	"strings"

	appErrors "semtheme/internal/errors"
)

func parseError(path string, err error) error {
	return appErrors.NewSubject(appErrors.CodeParseFailed, path,
		fmt.Sprintf("parse palette %s: %v", path, err), err)
}

func roleError(path, role string, err error) error {
	return appErrors.NewSubject(appErrors.CodeOf(err), role,
		fmt.Sprintf("palette %s: role %q: %v", path, role, err), err)
}

func duplicateError(name, first, second string) error {
	return appErrors.NewSubject(appErrors.CodeConfigurationError, name,
		fmt.Sprintf("palette %q defined twice: %s and %s", name, first, second), nil)
}

func notFoundError(name string, suggestions []string) error {
	msg := fmt.Sprintf("unknown palette %q", name)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
	}
	return appErrors.NewSubject(appErrors.CodeNotFound, name, msg, nil)
}
