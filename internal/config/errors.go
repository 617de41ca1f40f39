package config

import (
	"fmt"

	appErrors "semtheme/internal/errors"
)

func configError(action string, err error) error {
	return appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("%s: %v", action, err), err)
}

func notInitializedError() error {
	return appErrors.New(appErrors.CodeConfigurationError, "configuration not initialized", nil)
}
