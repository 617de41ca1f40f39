package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Colors maps UI-element keys to colors in insertion order.
type Colors = orderedmap.OrderedMap[string, Color]

// SemanticTokenColors maps semantic selectors to rules in insertion order.
type SemanticTokenColors = orderedmap.OrderedMap[string, SemanticRule]

// NewColors returns an empty ordered color map.
func NewColors() *Colors {
	return orderedmap.New[string, Color]()
}

// NewSemanticTokenColors returns an empty ordered semantic rule map.
func NewSemanticTokenColors() *SemanticTokenColors {
	return orderedmap.New[string, SemanticRule]()
}

// Document is a complete editor color theme. Field order is the
// serialization order.
type Document struct {
	Name                 string               `json:"name"`
	SemanticHighlighting bool                 `json:"semanticHighlighting"`
	Colors               *Colors              `json:"colors"`
	SemanticTokenColors  *SemanticTokenColors `json:"semanticTokenColors"`
	TokenColors          []TokenRule          `json:"tokenColors"`
}

// Validate checks every color and font style in the document against the
// closed model. The decoders deliberately let illegal styles through, so
// this is the strict-mode gate.
func (d *Document) Validate() error {
	if d.Colors != nil {
		for pair := d.Colors.Oldest(); pair != nil; pair = pair.Next() {
			if err := pair.Value.Validate(); err != nil {
				return invalidRuleError(pair.Key, err)
			}
		}
	}
	if d.SemanticTokenColors != nil {
		for pair := d.SemanticTokenColors.Oldest(); pair != nil; pair = pair.Next() {
			if err := pair.Value.Validate(pair.Key); err != nil {
				return err
			}
		}
	}
	for _, rule := range d.TokenColors {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	return nil
}
