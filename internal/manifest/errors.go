package manifest

import (
	"fmt"

	appErrors "semtheme/internal/errors"
)

func notFoundError(file string) error {
	return appErrors.NewSubject(appErrors.CodeNotFound, file,
		fmt.Sprintf("manifest %s not found", file), nil)
}

func parseError(file, reason string, err error) error {
	return appErrors.NewSubject(appErrors.CodeParseFailed, file,
		fmt.Sprintf("manifest %s: %s", file, reason), err)
}

func isNotFound(err error) bool {
	return err != nil && appErrors.IsCode(err, appErrors.CodeNotFound)
}
