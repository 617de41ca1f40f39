package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Scope is an ordered list of syntax-scope selectors. Order is significant
// and duplicates are kept.
type Scope []string

// TokenSettings carries the optional color and style of a syntax rule.
// A nil field is absent from the serialized output.
type TokenSettings struct {
	Foreground *Color     `json:"foreground,omitempty"`
	FontStyle  *FontStyle `json:"fontStyle,omitempty"`
}

// TokenRule is one entry of a theme's tokenColors list.
type TokenRule struct {
	Name     string        `json:"name"`
	Scope    Scope         `json:"scope"`
	Settings TokenSettings `json:"settings"`
}

// SemanticSettings is the structured form of a semantic rule.
//
// FontStyle replaces the style the editor would otherwise use, while the
// Bold, Italic and Underline flags add to it. Both may be set on one rule.
// Extra holds any other keys of a record; they are written after the known
// keys in sorted order.
type SemanticSettings struct {
	Foreground *Color         `json:"foreground,omitempty"`
	FontStyle  *FontStyle     `json:"fontStyle,omitempty"`
	Bold       *bool          `json:"bold,omitempty"`
	Italic     *bool          `json:"italic,omitempty"`
	Underline  *bool          `json:"underline,omitempty"`
	Extra      map[string]any `json:"-"`
}

var semanticKeys = []string{"foreground", "fontStyle", "bold", "italic", "underline"}

// MarshalJSON writes the known keys followed by Extra.
func (s SemanticSettings) MarshalJSON() ([]byte, error) {
	type plain SemanticSettings
	data, err := json.Marshal(plain(s))
	if err != nil || len(s.Extra) == 0 {
		return data, err
	}

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for _, key := range slices.Sorted(maps.Keys(s.Extra)) {
		if slices.Contains(semanticKeys, key) {
			continue
		}
		value, err := json.Marshal(s.Extra[key])
		if err != nil {
			return nil, fmt.Errorf("semantic setting %q: %w", key, err)
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		name, _ := json.Marshal(key)
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SemanticRule is either a bare color or a SemanticSettings record.
type SemanticRule struct {
	color    Color
	settings *SemanticSettings
}

// BareColorRule builds a rule serialized as a plain color string.
func BareColorRule(c Color) SemanticRule {
	return SemanticRule{color: c}
}

// SettingsRule builds a rule serialized as a settings object.
func SettingsRule(s SemanticSettings) SemanticRule {
	copied := s
	copied.Extra = maps.Clone(s.Extra)
	return SemanticRule{settings: &copied}
}

// Color returns the bare color when the rule is in the bare form.
func (r SemanticRule) Color() (Color, bool) {
	if r.settings != nil {
		return "", false
	}
	return r.color, true
}

// Settings returns the record when the rule is in the structured form.
func (r SemanticRule) Settings() (SemanticSettings, bool) {
	if r.settings == nil {
		return SemanticSettings{}, false
	}
	return *r.settings, true
}

// MarshalJSON emits a string for bare colors and an object otherwise.
func (r SemanticRule) MarshalJSON() ([]byte, error) {
	if r.settings != nil {
		return json.Marshal(r.settings)
	}
	return json.Marshal(string(r.color))
}

// Validate checks colors and font styles of the rule.
func (r TokenRule) Validate() error {
	if len(r.Scope) == 0 {
		return invalidRuleError(r.Name, fmt.Errorf("empty scope"))
	}
	if r.Settings.Foreground != nil {
		if err := r.Settings.Foreground.Validate(); err != nil {
			return invalidRuleError(r.Name, err)
		}
	}
	if r.Settings.FontStyle != nil {
		if err := r.Settings.FontStyle.Validate(); err != nil {
			return invalidRuleError(r.Name, err)
		}
	}
	return nil
}

// Validate checks colors and font styles of the rule. An empty foreground is
// accepted: it sets the key without colorizing.
func (r SemanticRule) Validate(scope string) error {
	if r.settings == nil {
		if err := r.color.Validate(); err != nil {
			return invalidRuleError(scope, err)
		}
		return nil
	}
	if fg := r.settings.Foreground; fg != nil && *fg != "" {
		if err := fg.Validate(); err != nil {
			return invalidRuleError(scope, err)
		}
	}
	if fs := r.settings.FontStyle; fs != nil {
		if err := fs.Validate(); err != nil {
			return invalidRuleError(scope, err)
		}
	}
	return nil
}
