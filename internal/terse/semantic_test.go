package terse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semtheme/internal/domain"
	appErrors "semtheme/internal/errors"
)

func marshalRule(t *testing.T, rule domain.SemanticRule) string {
	t.Helper()
	data, err := json.Marshal(rule)
	require.NoError(t, err)
	return string(data)
}

func TestSemanticBareColor(t *testing.T) {
	rule, err := SemanticToken("namespace", "#ccb87a")
	require.NoError(t, err)

	color, ok := rule.Color()
	require.True(t, ok)
	assert.Equal(t, domain.Color("#ccb87a"), color)
	assert.Equal(t, `"#ccb87a"`, marshalRule(t, rule))
}

func TestSemanticStyleShorthand(t *testing.T) {
	rule, err := SemanticToken("class.declaration", "bold")
	require.NoError(t, err)
	assert.Equal(t, `{"fontStyle":"bold"}`, marshalRule(t, rule))
}

func TestSemanticRecordPassthrough(t *testing.T) {
	italic := true
	rule, err := SemanticToken("typeParameter", domain.SemanticSettings{Italic: &italic})
	require.NoError(t, err)

	settings, ok := rule.Settings()
	require.True(t, ok)
	assert.Nil(t, settings.FontStyle, "additive flag must not turn into a style reset")
	assert.Nil(t, settings.Foreground)
	assert.Equal(t, `{"italic":true}`, marshalRule(t, rule))
}

func TestSemanticPlainMapRecord(t *testing.T) {
	rule, err := SemanticToken("macro", map[string]any{
		"foreground": "#007acc",
		"fontStyle":  "bold",
		"bold":       true,
		"italic":     false,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"foreground":"#007acc","fontStyle":"bold","bold":true,"italic":false}`, marshalRule(t, rule))

	_, err = SemanticToken("macro", map[string]any{"bold": "yes"})
	require.Error(t, err)
	assert.Equal(t, "macro", appErrors.SubjectOf(err))
}

func TestSemanticPlainMapKeepsUnknownKeys(t *testing.T) {
	rule, err := SemanticToken("macro", map[string]any{
		"foreground":    "#007acc",
		"strikethrough": true,
		"color":         "#fff",
	})
	require.NoError(t, err)

	settings, ok := rule.Settings()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"strikethrough": true, "color": "#fff"}, settings.Extra)
	assert.Equal(t, `{"foreground":"#007acc","color":"#fff","strikethrough":true}`, marshalRule(t, rule))
}

func TestSemanticPairWithEmptyStyle(t *testing.T) {
	rule, err := SemanticToken("class", []string{"#e0b569", ""})
	require.NoError(t, err)
	assert.Equal(t, `{"foreground":"#e0b569","fontStyle":""}`, marshalRule(t, rule))
}

// An empty color in the pair form is a deliberate sentinel: the foreground
// key is written but carries no color.
func TestSemanticPairWithEmptyColorSentinel(t *testing.T) {
	rule, err := SemanticToken("class", Literal{"", "bold"})
	require.NoError(t, err)
	settings, ok := rule.Settings()
	require.True(t, ok)
	require.NotNil(t, settings.Foreground)
	assert.Equal(t, domain.Color(""), *settings.Foreground)
	assert.Equal(t, `{"foreground":"","fontStyle":"bold"}`, marshalRule(t, rule))
}

func TestSemanticSingleElementArray(t *testing.T) {
	colored, err := SemanticToken("variable", []any{"#ffb4b9"})
	require.NoError(t, err)
	assert.Equal(t, `{"foreground":"#ffb4b9"}`, marshalRule(t, colored))

	styled, err := SemanticToken("variable", []any{"italic"})
	require.NoError(t, err)
	assert.Equal(t, `{"fontStyle":"italic"}`, marshalRule(t, styled))
}

func TestSemanticArrayBadLength(t *testing.T) {
	for _, value := range []any{[]any{}, []string{"#fff", "bold", "x"}} {
		_, err := SemanticToken("enumMember", value)
		require.Error(t, err)
		assert.True(t, appErrors.IsCode(err, appErrors.CodeShape))
		assert.Equal(t, "enumMember", appErrors.SubjectOf(err))
	}

	_, err := SemanticToken("enumMember", []string{"a", "b", "c"})
	assert.Contains(t, err.Error(), "got 3")
}

func TestSemanticArrayNonStringElement(t *testing.T) {
	_, err := SemanticToken("enumMember", []any{1, "bold"})
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeTypeMismatch))
}

func TestSemanticUnknownValueShape(t *testing.T) {
	for _, value := range []any{42, true, nil, (*domain.SemanticSettings)(nil), 3.5} {
		_, err := SemanticToken("property", value)
		require.Error(t, err)
		assert.True(t, appErrors.IsCode(err, appErrors.CodeUnknownValueShape), "value %v", value)
		assert.Equal(t, "property", appErrors.SubjectOf(err))
	}

	_, err := SemanticToken("property", 42)
	assert.Contains(t, err.Error(), "int")
}

func TestSemanticTokensKeepsTableOrder(t *testing.T) {
	italic := true
	table := NewSemanticTable(
		Entry{"namespace", "#ccb87a"},
		Entry{"typeParameter", domain.SemanticSettings{Italic: &italic}},
		Entry{"class", []string{"#e0b569", ""}},
		Entry{"class.declaration", "bold"},
	)

	rules, err := SemanticTokens(table)
	require.NoError(t, err)

	data, err := json.Marshal(rules)
	require.NoError(t, err)
	assert.Equal(t,
		`{"namespace":"#ccb87a","typeParameter":{"italic":true},"class":{"foreground":"#e0b569","fontStyle":""},"class.declaration":{"fontStyle":"bold"}}`,
		string(data))
}

func TestSemanticTokensFailsWholeTable(t *testing.T) {
	table := NewSemanticTable(
		Entry{"namespace", "#ccb87a"},
		Entry{"broken", []string{}},
	)
	rules, err := SemanticTokens(table)
	require.Error(t, err)
	assert.Nil(t, rules)
}

func TestNewSemanticTableRepeatedScope(t *testing.T) {
	table := NewSemanticTable(
		Entry{"a", "#111"},
		Entry{"b", "#222"},
		Entry{"a", "#333"},
	)
	require.Equal(t, 2, table.Len())
	first := table.Oldest()
	assert.Equal(t, "a", first.Key)
	assert.Equal(t, "#333", first.Value)
}

func TestSemanticTokensNilTable(t *testing.T) {
	rules, err := SemanticTokens(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rules.Len())
}
