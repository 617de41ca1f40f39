package cache

import (
	"fmt"

	appErrors "semtheme/internal/errors"
)

func cacheError(action string, err error) error {
	return appErrors.New(appErrors.CodeCacheFailed, fmt.Sprintf("cache: %s: %v", action, err), err)
}
