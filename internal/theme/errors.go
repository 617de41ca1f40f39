package theme

import (
	"fmt"
	"strings"

	appErrors "semtheme/internal/errors"
)

func missingRolesError(roles []string) error {
	msg := fmt.Sprintf("palette is missing role %q", roles[0])
	if len(roles) > 1 {
		msg = fmt.Sprintf("palette is missing roles: %s", strings.Join(roles, ", "))
	}
	return appErrors.NewSubject(appErrors.CodeMissingPaletteKey, roles[0], msg, nil)
}
