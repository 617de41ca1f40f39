package domain

import (
	"fmt"

	appErrors "semtheme/internal/errors"
)

func invalidColorError(raw string) error {
	return appErrors.NewSubject(appErrors.CodeInvalidColor, raw, fmt.Sprintf("invalid color: %q", raw), nil)
}

func invalidFontStyleError(raw string) error {
	return appErrors.NewSubject(appErrors.CodeInvalidFontStyle, raw, fmt.Sprintf("invalid font style: %q", raw), nil)
}

func invalidRuleError(subject string, err error) error {
	return appErrors.NewSubject(appErrors.CodeOf(err), subject, fmt.Sprintf("rule %q: %v", subject, err), err)
}
