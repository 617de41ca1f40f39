package palette

import "semtheme/internal/domain"

func init() {
	Register(lythDark())
}

func lythDark() *Palette {
	p := New("lyth-dark")
	p.Label = "Lyth Dark"
	for _, r := range []struct {
		role  string
		color domain.Color
	}{
		{"background", "#1d1d1d"},
		{"foreground", "#c4c4c4"},
		{"altForeground", "#cecece"},
		{"comment", "#5c5c5c"},
		{"keyword", "#C681E1"},
		{"altKeyword", "#C681E1"},
		{"keywordOther", "#C681E1"},
		{"keywordModifier", "#9c81e1"},
		{"control", "#c774cb"},
		{"misc", "#4cadd3"},
		{"operator", "#97c8ef"},
		{"cast", "#4f799a"},
		{"string", "#c1e88d"},
		{"number", "#f9a167"},
		{"class", "#e0b569"},
		{"namespacePrefix", "#ccb87a"},
		{"lambdaReturnType", "#c2a880"},
		{"function", "#61AFEF"},
		{"specialFunction", "#8AA4F1"},
		{"macro", "#3da779"},
		{"invalid", "#FF5370"},
		{"tag", "#f07178"},
		{"memberVariable", "#f0787f"},
		{"constantVariable", "#ffb4b9"},
		{"argument", "#cacaca"},
		{"tsPrimitive", "#3da779"},
		{"regexp", "#4cadd3"},
		{"changed", "#C792EA"},
		{"jsonLevel4", "#C17E70"},
		{"mdPlain", "#dadada"},
		{"mdMisc", "#65737E"},
		{"mdHeading", "#c1e88d"},
		{"mdItalic", "#f07178"},
		{"mdBold", "#e0b569"},
		{"mdBoldItalic", "#f07178"},
		{"mdUnderline", "#f9a167"},
		{"mdLink", "#61AFEF"},
		{"mdLinkDescription", "#C681E1"},
		{"mdRawBlock", "#aa94e1"},
		{"mdRaw", "#61AFEF"},
	} {
		p.Set(r.role, r.color)
	}
	return p
}
