// Package terse expands compact positional rule literals into theme rules.
//
// A token literal is written as
//
//	{"Comment", "#5c5c5c", "italic", []string{"comment", "punctuation.definition.comment"}}
//	{"Cast", "#4f799a", "keyword.operator.cast"}
//
// instead of spelling out name, scope and settings. The meaning of each
// position depends on the literal's length; anything outside the recognised
// lengths is rejected rather than guessed.
package terse

import (
	"fmt"

	"semtheme/internal/domain"
)

// Literal is a positional rule definition. Elements are strings, string
// slices or domain values; YAML-decoded []any sequences work as well.
type Literal []any

// tokenForm is one recognised arity of a token literal.
type tokenForm interface {
	rule() domain.TokenRule
}

// styledToken is the four-element form [name, color, fontStyle, scope].
type styledToken struct {
	name  string
	color domain.Color
	style domain.FontStyle
	scope domain.Scope
}

func (t styledToken) rule() domain.TokenRule {
	color, style := t.color, t.style
	return domain.TokenRule{
		Name:     t.name,
		Scope:    t.scope,
		Settings: domain.TokenSettings{Foreground: &color, FontStyle: &style},
	}
}

// shorthandToken is the three-element form [name, colorOrStyle, scope].
// The middle value is a color when it starts with '#', a font style otherwise.
type shorthandToken struct {
	name  string
	value string
	scope domain.Scope
}

func (t shorthandToken) rule() domain.TokenRule {
	settings := domain.TokenSettings{}
	if domain.IsColor(t.value) {
		color := domain.Color(t.value)
		settings.Foreground = &color
	} else {
		style := domain.FontStyle(t.value)
		settings.FontStyle = &style
	}
	return domain.TokenRule{Name: t.name, Scope: t.scope, Settings: settings}
}

// Tokens decodes an ordered list of token literals. The output preserves
// input order, which editors use for rule precedence. The first malformed
// literal aborts decoding.
func Tokens(defs []Literal) ([]domain.TokenRule, error) {
	rules := make([]domain.TokenRule, 0, len(defs))
	for _, def := range defs {
		rule, err := Token(def)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Token decodes a single token literal.
func Token(def Literal) (domain.TokenRule, error) {
	form, err := parseToken(def)
	if err != nil {
		return domain.TokenRule{}, err
	}
	return form.rule(), nil
}

func parseToken(def Literal) (tokenForm, error) {
	name := literalName(def)
	if len(def) != 3 && len(def) != 4 {
		return nil, tokenShapeError(name, len(def))
	}
	if _, ok := asString(def[0]); !ok {
		return nil, tokenArgumentError(name, "name", def[0])
	}

	switch len(def) {
	case 4:
		color, ok := asString(def[1])
		if !ok || !domain.IsColor(color) {
			return nil, tokenArgumentError(name, "color", def[1])
		}
		style, ok := asString(def[2])
		if !ok {
			return nil, tokenArgumentError(name, "fontStyle", def[2])
		}
		scope, err := parseScope(name, def[3])
		if err != nil {
			return nil, err
		}
		return styledToken{name: name, color: domain.Color(color), style: domain.FontStyle(style), scope: scope}, nil

	case 3:
		value, ok := asString(def[1])
		if !ok {
			return nil, tokenArgumentError(name, "settings", def[1])
		}
		scope, err := parseScope(name, def[2])
		if err != nil {
			return nil, err
		}
		return shorthandToken{name: name, value: value, scope: scope}, nil

	default:
		return nil, tokenShapeError(name, len(def))
	}
}

// parseScope wraps a single selector into a one-element scope and copies
// selector lists as-is.
func parseScope(name string, raw any) (domain.Scope, error) {
	var scope domain.Scope
	switch v := raw.(type) {
	case string:
		scope = domain.Scope{v}
	case domain.Scope:
		scope = append(domain.Scope(nil), v...)
	case []string:
		scope = append(domain.Scope(nil), v...)
	case Literal:
		items, err := scopeItems(name, v)
		if err != nil {
			return nil, err
		}
		scope = items
	case []any:
		items, err := scopeItems(name, v)
		if err != nil {
			return nil, err
		}
		scope = items
	default:
		return nil, tokenArgumentError(name, "scope", raw)
	}

	if len(scope) == 0 {
		return nil, tokenArgumentError(name, "scope", raw)
	}
	for _, selector := range scope {
		if selector == "" {
			return nil, tokenArgumentError(name, "scope element", selector)
		}
	}
	return scope, nil
}

func scopeItems(name string, items []any) (domain.Scope, error) {
	scope := make(domain.Scope, 0, len(items))
	for _, item := range items {
		s, ok := asString(item)
		if !ok {
			return nil, tokenArgumentError(name, "scope element", item)
		}
		scope = append(scope, s)
	}
	return scope, nil
}

// EncodeToken turns a rule back into its shortest literal. Rules carrying
// neither color nor style have no literal form.
func EncodeToken(rule domain.TokenRule) (Literal, error) {
	scope := []string(rule.Scope)
	fg, style := rule.Settings.Foreground, rule.Settings.FontStyle
	switch {
	case fg != nil && style != nil:
		return Literal{rule.Name, string(*fg), string(*style), scope}, nil
	case fg != nil:
		return Literal{rule.Name, string(*fg), scope}, nil
	case style != nil:
		return Literal{rule.Name, string(*style), scope}, nil
	default:
		return nil, tokenShapeError(rule.Name, 2)
	}
}

func literalName(def Literal) string {
	if len(def) == 0 {
		return ""
	}
	if s, ok := asString(def[0]); ok {
		return s
	}
	return fmt.Sprint(def[0])
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case domain.Color:
		return string(s), true
	case domain.FontStyle:
		return string(s), true
	default:
		return "", false
	}
}
