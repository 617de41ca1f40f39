package terse

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"semtheme/internal/domain"
)

// SemanticTable maps semantic selectors to raw rule values in declaration order.
//
// A value may be written as
//   - a bare color: "#007acc"
//   - a font style shorthand: "italic", meaning {fontStyle: "italic"}
//   - a one or two element array: {"#007acc"}, {"bold"}, {"#007acc", "bold"}
//   - a structured record, domain.SemanticSettings or a plain map, kept as-is
type SemanticTable = orderedmap.OrderedMap[string, any]

// Entry is one selector/value pair of a SemanticTable.
type Entry struct {
	Scope string
	Value any
}

// NewSemanticTable builds a table from entries. A repeated scope keeps its
// first position and takes the last value.
func NewSemanticTable(entries ...Entry) *SemanticTable {
	table := orderedmap.New[string, any]()
	for _, e := range entries {
		table.Set(e.Scope, e.Value)
	}
	return table
}

// SemanticTokens decodes every table entry into a semantic rule, keyed and
// ordered like the input.
func SemanticTokens(table *SemanticTable) (*domain.SemanticTokenColors, error) {
	out := domain.NewSemanticTokenColors()
	if table == nil {
		return out, nil
	}
	for pair := table.Oldest(); pair != nil; pair = pair.Next() {
		rule, err := SemanticToken(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		out.Set(pair.Key, rule)
	}
	return out, nil
}

// SemanticToken decodes one raw value for the given selector.
func SemanticToken(scope string, raw any) (domain.SemanticRule, error) {
	switch v := raw.(type) {
	case string:
		return semanticString(v), nil
	case domain.Color:
		return semanticString(string(v)), nil
	case domain.FontStyle:
		return semanticString(string(v)), nil
	case domain.SemanticSettings:
		return domain.SettingsRule(v), nil
	case *domain.SemanticSettings:
		if v == nil {
			return domain.SemanticRule{}, semanticValueShapeError(scope, raw)
		}
		return domain.SettingsRule(*v), nil
	case map[string]any:
		settings, err := semanticRecord(scope, v)
		if err != nil {
			return domain.SemanticRule{}, err
		}
		return domain.SettingsRule(settings), nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return semanticArray(scope, items)
	case Literal:
		return semanticArray(scope, v)
	case []any:
		return semanticArray(scope, v)
	default:
		return domain.SemanticRule{}, semanticValueShapeError(scope, raw)
	}
}

// semanticString passes colors through and expands anything else into a
// font style reset.
func semanticString(s string) domain.SemanticRule {
	if domain.IsColor(s) {
		return domain.BareColorRule(domain.Color(s))
	}
	style := domain.FontStyle(s)
	return domain.SettingsRule(domain.SemanticSettings{FontStyle: &style})
}

func semanticArray(scope string, items []any) (domain.SemanticRule, error) {
	switch len(items) {
	case 2:
		color, ok := asString(items[0])
		if !ok {
			return domain.SemanticRule{}, semanticArgumentError(scope, "color", items[0])
		}
		style, ok := asString(items[1])
		if !ok {
			return domain.SemanticRule{}, semanticArgumentError(scope, "fontStyle", items[1])
		}
		// An empty color is stored as-is: the key is set without colorizing.
		fg, fs := domain.Color(color), domain.FontStyle(style)
		return domain.SettingsRule(domain.SemanticSettings{Foreground: &fg, FontStyle: &fs}), nil

	case 1:
		value, ok := asString(items[0])
		if !ok {
			return domain.SemanticRule{}, semanticArgumentError(scope, "array element", items[0])
		}
		settings := domain.SemanticSettings{}
		if domain.IsColor(value) {
			fg := domain.Color(value)
			settings.Foreground = &fg
		} else {
			fs := domain.FontStyle(value)
			settings.FontStyle = &fs
		}
		return domain.SettingsRule(settings), nil

	default:
		return domain.SemanticRule{}, semanticShapeError(scope, len(items))
	}
}

// semanticRecord reads a plain map written in the structured form. Known
// keys are type checked; any other key is kept in Extra as-is.
func semanticRecord(scope string, record map[string]any) (domain.SemanticSettings, error) {
	var settings domain.SemanticSettings
	for key, value := range record {
		switch key {
		case "foreground":
			s, ok := asString(value)
			if !ok {
				return settings, semanticArgumentError(scope, "foreground", value)
			}
			fg := domain.Color(s)
			settings.Foreground = &fg
		case "fontStyle":
			s, ok := asString(value)
			if !ok {
				return settings, semanticArgumentError(scope, "fontStyle", value)
			}
			fs := domain.FontStyle(s)
			settings.FontStyle = &fs
		case "bold", "italic", "underline":
			b, ok := value.(bool)
			if !ok {
				return settings, semanticArgumentError(scope, key, value)
			}
			switch key {
			case "bold":
				settings.Bold = &b
			case "italic":
				settings.Italic = &b
			default:
				settings.Underline = &b
			}
		default:
			if settings.Extra == nil {
				settings.Extra = map[string]any{}
			}
			settings.Extra[key] = value
		}
	}
	return settings, nil
}
