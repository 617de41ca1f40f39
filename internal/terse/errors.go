package terse

import (
	"fmt"

	appErrors "semtheme/internal/errors"
)

func tokenShapeError(name string, length int) error {
	return appErrors.NewSubject(appErrors.CodeShape, name,
		fmt.Sprintf("token rule %q: expected 3 or 4 elements, got %d", name, length), nil)
}

func tokenArgumentError(name, position string, value any) error {
	return appErrors.NewSubject(appErrors.CodeTypeMismatch, name,
		fmt.Sprintf("token rule %q: unexpected %s argument %s", name, position, describe(value)), nil)
}

func semanticShapeError(scope string, length int) error {
	return appErrors.NewSubject(appErrors.CodeShape, scope,
		fmt.Sprintf("semantic rule %q: expected 1 or 2 array elements, got %d", scope, length), nil)
}

func semanticArgumentError(scope, position string, value any) error {
	return appErrors.NewSubject(appErrors.CodeTypeMismatch, scope,
		fmt.Sprintf("semantic rule %q: unexpected %s %s", scope, position, describe(value)), nil)
}

func semanticValueShapeError(scope string, value any) error {
	return appErrors.NewSubject(appErrors.CodeUnknownValueShape, scope,
		fmt.Sprintf("semantic rule %q: unexpected value type %T", scope, value), nil)
}

func describe(value any) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v (%T)", value, value)
}
