package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)(?:px)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][(),:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node of a .design file.
//
//	design mobile-app {
//	  style: minimal
//	  scheme: dark
//	  frame: 375 x 812
//	  element button { label: "Buy" x: 24 }
//	}
type Document struct {
	Pos        lexer.Position `parser:"" json:"-"`
	Type       string         `parser:"Newline* 'design' @Ident"`
	Statements []*Statement   `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Statement is one entry of the design block.
type Statement struct {
	Frame      *FrameDecl   `parser:"  @@"`
	Element    *ElementDecl `parser:"| @@"`
	Copy       *CopyDecl    `parser:"| @@"`
	Assignment *Assignment  `parser:"| @@"`
}

// FrameDecl overrides the default frame size: `frame: 1440 x 900`.
type FrameDecl struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Width  Measure        `parser:"'frame' ':' @Number"`
	Height Measure        `parser:"'x' @Number"`
}

// ElementDecl declares an abstract element for the adapter.
type ElementDecl struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Kind  string         `parser:"'element' @Ident"`
	Props []*Assignment  `parser:"'{' Newline* ( @@ ( ';' | ',' | Newline )* )* '}'"`
}

// CopyDecl replaces template copy.
type CopyDecl struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Entries []*Assignment  `parser:"'copy' '{' Newline* ( @@ ( ';' | ',' | Newline )* )* '}'"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value represents generic property values.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *Measure       `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Bool   *Boolean       `parser:"| @('true' | 'false')"`
	Ident  *string        `parser:"| @Ident"`
	Array  *ArrayValue    `parser:"| @@"`
}

// ArrayValue captures `[ ... ]` expressions.
type ArrayValue struct {
	Values []*Value `parser:"'[' Newline* ( @@ ( (',' | Newline+) Newline* @@ )* )? Newline* ']'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Measure 是数值，可带 px 后缀。
type Measure float64

// Capture implements participle.Capture.
func (m *Measure) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("number capture requires value")
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(values[0], "px"), 64)
	if err != nil {
		return fmt.Errorf("数值 %s 无法解析: %w", values[0], err)
	}
	*m = Measure(v)
	return nil
}

// Boolean captures true/false keywords.
type Boolean bool

// Capture implements participle.Capture.
func (b *Boolean) Capture(values []string) error {
	*b = len(values) > 0 && values[0] == "true"
	return nil
}

// Interface 把值转换为 string、float64、bool 或 []any。
func (v *Value) Interface() any {
	switch {
	case v == nil:
		return nil
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return float64(*v.Number)
	case v.Color != nil:
		return *v.Color
	case v.Bool != nil:
		return bool(*v.Bool)
	case v.Ident != nil:
		return *v.Ident
	case v.Array != nil:
		out := make([]any, 0, len(v.Array.Values))
		for _, item := range v.Array.Values {
			out = append(out, item.Interface())
		}
		return out
	default:
		return nil
	}
}

// Text 返回字符串形式的值；数组与空值返回空串。
func (v *Value) Text() string {
	switch val := v.Interface().(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// Parse parses DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
