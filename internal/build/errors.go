package build

import (
	"fmt"

	appErrors "semtheme/internal/errors"
)

func writeError(path string, err error) error {
	return appErrors.NewSubject(appErrors.CodeUnknown, path, fmt.Sprintf("write %s: %v", path, err), err)
}

func encodeError(name string, err error) error {
	return appErrors.NewSubject(appErrors.CodeUnknown, name, fmt.Sprintf("encode theme %q: %v", name, err), err)
}

func compileError(name string, err error) error {
	return appErrors.NewSubject(appErrors.CodeOf(err), appErrors.SubjectOf(err),
		fmt.Sprintf("theme %s: %v", name, err), err)
}

func paletteError(name string, err error) error {
	return appErrors.NewSubject(appErrors.CodeOf(err), name,
		fmt.Sprintf("theme %s: %v", name, err), err)
}
