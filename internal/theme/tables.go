package theme

import (
	"semtheme/internal/domain"
	"semtheme/internal/terse"
)

// uiBinding is one entry of the fixed workbench color block.
type uiBinding struct {
	key   string
	value any // Ref or domain.Color
}

var uiColors = []uiBinding{
	{"editor.background", Ref("background")},
	{"editor.foreground", Ref("foreground")},
	{"activityBarBadge.background", domain.Color("#007acc")},
	{"sideBarTitle.foreground", domain.Color("#bbbbbb")},
}

var italic = true

var semanticTable = []terse.Entry{
	{Scope: "namespace", Value: Ref("namespacePrefix")},
	{Scope: "macro", Value: Ref("macro")},
	{Scope: "typeParameter", Value: domain.SemanticSettings{Italic: &italic}},
	{Scope: "function.static", Value: domain.SemanticSettings{Italic: &italic}},
	{Scope: "class", Value: terse.Literal{Ref("class"), ""}},
	{Scope: "class.declaration", Value: "bold"},
	{Scope: "class.definition", Value: "bold"},
	{Scope: "class.constructorOrDestructor", Value: Ref("function")},
	{Scope: "type.defaultLibrary", Value: Ref("keyword")},
	{Scope: "class.deduced", Value: Ref("keyword")},
	{Scope: "variable.readonly", Value: Ref("constantVariable")},
}

const (
	jsonDict  = "source.json meta.structure.dictionary.json "
	jsonLevel = "meta.structure.dictionary.value.json meta.structure.dictionary.json "
	jsonKey   = "support.type.property-name.json"
)

func jsonKeyScope(depth int) string {
	s := jsonDict
	for i := 0; i < depth; i++ {
		s += jsonLevel
	}
	return s + jsonKey
}

var tokenTable = []terse.Literal{
	{"Comment", Ref("comment"), "italic", []string{
		"comment",
		"punctuation.definition.comment",
	}},
	{"Variables", Ref("foreground"), []string{
		"variable",
		"string constant.other.placeholder",
	}},
	{"Constant Variable", Ref("constantVariable"), []string{
		"variable.other.constant",
	}},
	{"Colors", Ref("altForeground"), []string{
		"constant.other.color",
	}},
	{"Invalid", Ref("invalid"), []string{
		"invalid",
		"invalid.illegal",
	}},
	{"Keyword, Storage", Ref("keyword"), []string{
		"keyword",
		"storage.type",
	}},
	{"Storage Modifier, noexcept", Ref("keywordModifier"), []string{
		"storage.modifier",
		"keyword.operator.noexcept",
	}},
	{"Requires Keyword", Ref("keyword"), "bold", []string{
		"keyword.other.requires",
	}},
	{"Control Keywords", Ref("control"), "bold", []string{
		"keyword.control",
	}},
	{"Misc", Ref("misc"), []string{
		"constant.other.color",
		"punctuation",
		"meta.tag",
		"punctuation.definition.tag",
		"punctuation.separator.inheritance.php",
		"punctuation.definition.tag.html",
		"punctuation.definition.tag.begin.html",
		"punctuation.definition.tag.end.html",
		"punctuation.section.embedded",
		"keyword.other.template",
		"keyword.other.substitution",
	}},
	{"Template Argument Name", Ref("foreground"), []string{
		"entity.name.type.template.cpp",
	}},
	{"Operator", Ref("operator"), []string{
		"keyword.operator",
	}},
	{"Cast", Ref("cast"), []string{
		"keyword.operator.cast",
	}},
	{"Tag", Ref("tag"), []string{
		"entity.name.tag",
		"meta.tag.sgml",
		"markup.deleted.git_gutter",
	}},
	{"Primitive Type", Ref("altKeyword"), []string{
		"storage.type.primitive",
		"storage.type.built-in",
	}},
	{"Class, Support", Ref("class"), []string{
		"entity.name.type",
		"support.type",
		"support.class",
		"support.other.namespace.use.php",
		"meta.use.php",
		"support.other.namespace.php",
		"markup.changed.git_gutter",
	}},
	// Not bold: clangd would embolden member variable types as well.
	{"Class, Struct, Type Declaration", Ref("class"), []string{
		"entity.name.type.class",
		"entity.name.type.struct",
		"entity.name.type.typedef",
	}},
	{"Namespace Prefix", Ref("namespacePrefix"), []string{
		"entity.name.scope-resolution",
	}},
	// The whole lambda return type arrives as a single token.
	{"Lambda Return Type", Ref("lambdaReturnType"), []string{
		"storage.type.return-type.lambda.cpp",
	}},
	{"Function, Special Method", Ref("function"), []string{
		"entity.name.function",
		"entity.name.function.member",
		"meta.function-call",
		"variable.function",
		"support.function",
		"keyword.other.special-method",
	}},
	{"Member Function", Ref("function"), "bold", []string{
		"entity.name.function.definition",
		"keyword.other.operator.overload.cpp",
	}},
	{"Static Function", "bold italic", []string{
		"entity.name.function.member.static",
	}},
	{"Special Function", Ref("specialFunction"), "bold italic", []string{
		"entity.name.function.definition.special",
	}},
	{"Macro", Ref("macro"), []string{
		"entity.name.function.preprocessor",
		"keyword.control.directive",
	}},
	{"Property/Member Variables", Ref("memberVariable"), []string{
		"variable.other.property",
		"variable.other.object.property",
		"meta.body.class variable.other.declare",
	}},
	// Keeps local declarations apart from member declarations.
	{"Local Variable Declaration", Ref("foreground"), []string{
		"meta.body.function.definition variable.other.declare",
	}},
	{"Other Variable, String Link", Ref("memberVariable"), []string{
		"support.other.variable",
		"string.other.link",
	}},
	{"Number, Constant, Tag Attribute, Embedded", Ref("number"), []string{
		"constant.numeric",
		"constant.language",
		"support.constant",
		"constant.character",
		"constant.escape",
	}},
	{"Argument", Ref("argument"), "italic", []string{
		"variable.parameter",
	}},
	{"Keyword (Other)", Ref("keywordOther"), []string{
		"keyword.other.unit",
		"keyword.other",
	}},
	{"String, Symbols, Inherited Class, Markup Heading", Ref("string"), []string{
		"string",
		"constant.other.symbol",
		"constant.other.key",
		"entity.other.inherited-class",
		"markup.heading",
		"markup.inserted.git_gutter",
		"meta.group.braces.curly constant.other.object.key.js string.unquoted.label.js",
	}},

	// Web languages use fixed colors.
	{"CSS Class and Support", "#B2CCD6", []string{
		"source.css support.type.property-name",
		"source.sass support.type.property-name",
		"source.scss support.type.property-name",
		"source.less support.type.property-name",
		"source.stylus support.type.property-name",
		"source.postcss support.type.property-name",
	}},
	{"Sub-methods", "#FF5370", []string{
		"entity.name.module.js",
		"variable.import.parameter.js",
		"variable.other.class.js",
	}},
	{"Language methods", "#FF5370", []string{
		"variable.language",
	}},
	{"entity.name.method.js", "#82AAFF", "italic", []string{
		"entity.name.method.js",
	}},
	{"meta.method.js", "#82AAFF", []string{
		"meta.class-method.js entity.name.function.js",
		"variable.function.constructor",
	}},
	{"TypeScript Primitive", Ref("tsPrimitive"), []string{
		"support.type.primitive.ts",
	}},
	{"Attributes", Ref("keyword"), []string{
		"entity.other.attribute-name",
	}},
	{"HTML Attributes", Ref("class"), "italic", []string{
		"text.html.basic entity.other.attribute-name.html",
		"text.html.basic entity.other.attribute-name",
	}},
	{"CSS Classes", Ref("class"), "entity.other.attribute-name.class"},
	{"CSS IDs", Ref("function"), "source.sass keyword.control"},
	{"Inserted", Ref("string"), "markup.inserted"},
	{"Deleted", Ref("invalid"), "markup.deleted"},
	{"Changed", Ref("changed"), "markup.changed"},
	{"Regular Expressions", Ref("regexp"), "string.regexp"},
	{"Escape Characters", Ref("misc"), "constant.character.escape"},
	{"URL", "underline", []string{
		"*url*",
		"*link*",
		"*uri*",
	}},
	{"Decorators", Ref("specialFunction"), "italic", []string{
		"tag.decorator.js entity.name.tag.js",
		"tag.decorator.js punctuation.definition.tag.js",
	}},
	{"ES7 Bind Operator", Ref("operator"), "italic",
		"source.js constant.other.object.key.js string.unquoted.label.js"},

	{"JSON Key - Level 0", Ref("keyword"), jsonKeyScope(0)},
	{"JSON Key - Level 1", Ref("class"), jsonKeyScope(1)},
	{"JSON Key - Level 2", Ref("number"), jsonKeyScope(2)},
	{"JSON Key - Level 3", Ref("memberVariable"), jsonKeyScope(3)},
	{"JSON Key - Level 4", Ref("jsonLevel4"), jsonKeyScope(4)},
	{"JSON Key - Level 5", Ref("function"), jsonKeyScope(5)},
	{"JSON Key - Level 6", Ref("tag"), jsonKeyScope(6)},
	{"JSON Key - Level 7", Ref("keyword"), jsonKeyScope(7)},
	{"JSON Key - Level 8", Ref("string"), jsonKeyScope(8)},

	{"Markdown - Plain", Ref("mdPlain"), []string{
		"text.html.markdown",
		"punctuation.definition.list_item.markdown",
	}},
	{"Markdown - Markup Raw Inline", Ref("mdRaw"), []string{
		"text.html.markdown markup.inline.raw.markdown",
		"text.html.markdown markup.inline.raw.string.markdown",
	}},
	{"Markdown - Markup Raw Inline Punctuation", Ref("mdMisc"), []string{
		"text.html.markdown markup.inline.raw.markdown punctuation.definition.raw.markdown",
	}},
	{"Markdown - Heading", Ref("mdHeading"), []string{
		"markdown.heading",
		"markup.heading | markup.heading entity.name",
		"markup.heading.markdown punctuation.definition.heading.markdown",
	}},
	{"Markup - Italic", Ref("mdItalic"), "italic", []string{
		"markup.italic",
	}},
	{"Markup - Bold", Ref("mdBold"), "bold", []string{
		"markup.bold",
		"markup.bold string",
	}},
	{"Markup - Bold-Italic", Ref("mdBoldItalic"), "bold", []string{
		"markup.bold markup.italic",
		"markup.italic markup.bold",
		"markup.quote markup.bold",
		"markup.bold markup.italic string",
		"markup.italic markup.bold string",
		"markup.quote markup.bold string",
	}},
	{"Markup - Underline", Ref("mdUnderline"), "underline", []string{
		"markup.underline",
	}},
	{"Markdown - Blockquote", Ref("mdMisc"), []string{
		"markup.quote punctuation.definition.blockquote.markdown",
	}},
	{"Markup - Quote", Ref("mdMisc"), "italic", []string{
		"markup.quote",
	}},
	{"Markdown - Link", Ref("mdLink"), []string{
		"string.other.link.title.markdown",
	}},
	{"Markdown - Link Description", Ref("mdLinkDescription"), []string{
		"string.other.link.description.title.markdown",
	}},
	{"Markdown - Link Anchor", Ref("class"), []string{
		"constant.other.reference.link.markdown",
	}},
	{"Markup - Raw Block", Ref("mdRawBlock"), []string{
		"markup.raw.block",
	}},
	{"Markdown - Raw Block Fenced", Ref("mdRawBlock"), []string{
		"markup.raw.block.fenced.markdown",
		"markup.fenced_code.block",
	}},
	{"Markdown - Fenced Code Block", Ref("mdRawBlock"), []string{
		"punctuation.definition.fenced.markdown",
	}},
	{"Markdown - Fenced Code Block Variable", Ref("mdPlain"), []string{
		"markup.raw.block.fenced.markdown",
		"variable.language.fenced.markdown",
		"punctuation.section.class.end",
	}},
	{"Markdown - Fenced Language", Ref("mdMisc"), []string{
		"variable.language.fenced.markdown",
	}},
	{"Markdown - Separator", Ref("mdMisc"), "bold", []string{
		"meta.separator",
	}},
	{"Markup - Table", Ref("mdPlain"), []string{
		"markup.table",
	}},
}
