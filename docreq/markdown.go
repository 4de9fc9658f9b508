package docreq

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"google.golang.org/api/docs/v1"
)

var markdownParser parser.Parser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
).Parser()

// Markdown converts src into insert and style requests that lay the
// document out starting at index start. Requests must be sent in order in a
// single batch.
func Markdown(src string, start int64) []*docs.Request {
	source := []byte(src)
	root := markdownParser.Parse(text.NewReader(source))

	c := &converter{src: source, index: start}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		c.block(n)
	}
	return c.reqs
}

type span struct {
	start, end int64
	style      *docs.TextStyle
	fields     string
}

// line is the text of one Docs paragraph with style spans relative to its
// first character.
type line struct {
	buf   strings.Builder
	n     int64
	spans []span
}

func (l *line) write(s string) {
	l.buf.WriteString(s)
	l.n += Len(s)
}

func (l *line) mark(start int64, style *docs.TextStyle, fields string) {
	if l.n > start {
		l.spans = append(l.spans, span{start: start, end: l.n, style: style, fields: fields})
	}
}

type converter struct {
	src   []byte
	index int64
	reqs  []*docs.Request
}

func (c *converter) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		l := &line{}
		c.inline(n, l)
		start, end := c.emit(l)
		c.reqs = append(c.reqs, ParagraphStyle(Range(start, end, ""), HeadingStyle(n.Level)))
	case *ast.List:
		c.list(n)
	case *ast.FencedCodeBlock:
		c.codeBlock(n)
	case *ast.CodeBlock:
		c.codeBlock(n)
	case *ast.Blockquote:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			c.block(child)
		}
	case *east.Table:
		c.table(n)
	case *ast.ThematicBreak, *ast.HTMLBlock:
	default:
		l := &line{}
		c.inline(n, l)
		if strings.TrimSpace(l.buf.String()) == "" {
			l = &line{}
		}
		c.emit(l)
	}
}

// emit inserts the line plus its paragraph break at the current index and
// returns the range it occupies.
func (c *converter) emit(l *line) (int64, int64) {
	l.write("\n")
	start := c.index
	c.reqs = append(c.reqs, InsertText(Location(start, ""), l.buf.String()))
	for _, s := range l.spans {
		c.reqs = append(c.reqs, styleRequest(Range(start+s.start, start+s.end, ""), s.style, s.fields))
	}
	c.index = start + l.n
	return start, c.index
}

func (c *converter) list(n *ast.List) {
	start := c.index
	tabs := c.listItems(n, 0)

	preset := BULLET_DISC_CIRCLE_SQUARE
	if n.IsOrdered() {
		preset = NUMBERED_DECIMAL_ALPHA_ROMAN
	}
	c.reqs = append(c.reqs, ParagraphBullets(Range(start, c.index, ""), preset))

	// createParagraphBullets strips the nesting tabs.
	c.index -= tabs
}

// listItems emits the children of each item in source order. A nested list
// closes the current line; content after it starts a new line at the same
// depth.
func (c *converter) listItems(n *ast.List, depth int) int64 {
	var tabs int64
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		l := listLine(depth)
		empty, flushed := true, false
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if sub, ok := child.(*ast.List); ok {
				if !flushed || !empty {
					c.emit(l)
					tabs += int64(depth)
				}
				flushed = true
				tabs += c.listItems(sub, depth+1)
				l, empty = listLine(depth), true
				continue
			}
			if !empty {
				l.write("\v")
			}
			c.inline(child, l)
			empty = false
		}
		if !flushed || !empty {
			c.emit(l)
			tabs += int64(depth)
		}
	}
	return tabs
}

func listLine(depth int) *line {
	l := &line{}
	l.write(strings.Repeat("\t", depth))
	return l
}

func (c *converter) codeBlock(n ast.Node) {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.src))
	}

	l := &line{}
	l.write(strings.ReplaceAll(strings.TrimRight(b.String(), "\n"), "\n", "\v"))
	style, fields := codeStyle()
	l.mark(0, style, fields)
	c.emit(l)
}

// table renders each row as one tab separated paragraph; the header row is
// bold.
func (c *converter) table(n *east.Table) {
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		l := &line{}
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if cell != row.FirstChild() {
				l.write("\t")
			}
			c.inline(cell, l)
		}
		if _, ok := row.(*east.TableHeader); ok {
			l.mark(0, &docs.TextStyle{Bold: true}, "bold")
		}
		c.emit(l)
	}
}

func (c *converter) inline(n ast.Node, l *line) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child := child.(type) {
		case *ast.Text:
			l.write(string(child.Segment.Value(c.src)))
			if child.HardLineBreak() {
				l.write("\v")
			} else if child.SoftLineBreak() {
				l.write(" ")
			}
		case *ast.String:
			l.write(string(child.Value))
		case *ast.CodeSpan:
			start := l.n
			c.inline(child, l)
			style, fields := codeStyle()
			l.mark(start, style, fields)
		case *ast.Emphasis:
			start := l.n
			c.inline(child, l)
			if child.Level >= 2 {
				l.mark(start, &docs.TextStyle{Bold: true}, "bold")
			} else {
				l.mark(start, &docs.TextStyle{Italic: true}, "italic")
			}
		case *east.Strikethrough:
			start := l.n
			c.inline(child, l)
			l.mark(start, &docs.TextStyle{Strikethrough: true}, "strikethrough")
		case *ast.Link:
			start := l.n
			c.inline(child, l)
			l.mark(start, &docs.TextStyle{Link: &docs.Link{Url: string(child.Destination)}}, "link")
		case *ast.AutoLink:
			start := l.n
			l.write(string(child.Label(c.src)))
			l.mark(start, &docs.TextStyle{Link: &docs.Link{Url: string(child.URL(c.src))}}, "link")
		case *ast.RawHTML:
		default:
			c.inline(child, l)
		}
	}
}
