package richtext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/iw2rmb/notepad/internal/grapheme"
)

var headerTypes = [...]BlockType{HeaderOne, HeaderTwo, HeaderThree, HeaderFour, HeaderFive, HeaderSix}

// FromMarkdown converts CommonMark (plus strikethrough and <u> tags) into the
// exchange format. Block keys are left empty and get assigned on load.
func FromMarkdown(src []byte) (RawDraft, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	doc := md.Parser().Parse(text.NewReader(src))
	if doc == nil {
		return RawDraft{}, fmt.Errorf("%w: markdown parser returned no document", ErrMalformed)
	}
	c := &mdConverter{src: src}
	c.walkBlocks(doc, Unstyled, 0)
	return RawDraft{Blocks: c.blocks, EntityMap: map[string]RawEntity{}}, nil
}

type mdConverter struct {
	src    []byte
	blocks []RawBlock
}

func (c *mdConverter) walkBlocks(parent ast.Node, container BlockType, depth int) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			level := clampInt(node.Level, 1, len(headerTypes))
			c.emitInline(node, headerTypes[level-1], 0)
		case *ast.Paragraph, *ast.TextBlock:
			c.emitInline(node, container, depth)
		case *ast.Blockquote:
			c.walkBlocks(node, Blockquote, 0)
		case *ast.List:
			t := UnorderedListItem
			if node.IsOrdered() {
				t = OrderedListItem
			}
			d := 0
			if container.IsList() {
				d = minInt(depth+1, MaxDepth)
			}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				c.walkBlocks(item, t, d)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				line := strings.TrimRight(string(seg.Value(c.src)), "\r\n")
				c.blocks = append(c.blocks, encodeBlock(NewBlock("", CodeBlock, line, nil)))
			}
		}
	}
}

type inlineBuilder struct {
	chars     []string
	styles    []StyleSet
	underline bool
}

func (ib *inlineBuilder) add(s string, style StyleSet) {
	if ib.underline {
		style = style.With(Underline)
	}
	for _, c := range grapheme.Split(s) {
		ib.chars = append(ib.chars, c)
		ib.styles = append(ib.styles, style)
	}
}

func (c *mdConverter) emitInline(n ast.Node, t BlockType, depth int) {
	ib := &inlineBuilder{}
	c.walkInline(n, nil, ib)
	c.blocks = append(c.blocks, encodeBlock(Block{Type: t, Depth: depth, chars: ib.chars, styles: ib.styles}))
}

func (c *mdConverter) walkInline(parent ast.Node, style StyleSet, ib *inlineBuilder) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Text:
			v := node.Segment.Value(c.src)
			v = util.UnescapePunctuations(v)
			v = util.ResolveNumericReferences(v)
			v = util.ResolveEntityNames(v)
			ib.add(string(v), style)
			if node.SoftLineBreak() || node.HardLineBreak() {
				ib.add(" ", style)
			}
		case *ast.String:
			ib.add(string(node.Value), style)
		case *ast.CodeSpan:
			// Code span content is literal.
			for t := node.FirstChild(); t != nil; t = t.NextSibling() {
				switch tn := t.(type) {
				case *ast.Text:
					ib.add(string(tn.Segment.Value(c.src)), style.With(Code))
				case *ast.String:
					ib.add(string(tn.Value), style.With(Code))
				}
			}
		case *ast.Emphasis:
			s := Italic
			if node.Level >= 2 {
				s = Bold
			}
			c.walkInline(node, style.With(s), ib)
		case *extast.Strikethrough:
			c.walkInline(node, style.With(Strikethrough), ib)
		case *ast.RawHTML:
			var sb strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				sb.Write(seg.Value(c.src))
			}
			switch strings.ToLower(strings.TrimSpace(sb.String())) {
			case "<u>":
				ib.underline = true
			case "</u>":
				ib.underline = false
			}
		case *ast.AutoLink:
			ib.add(string(node.Label(c.src)), style)
		default:
			c.walkInline(n, style, ib)
		}
	}
}

// ToMarkdown renders the exchange format as Markdown. Underline has no
// Markdown syntax and is written as <u> tags.
func ToMarkdown(raw RawDraft) (string, error) {
	s, err := FromRaw(raw, Options{HistoryLimit: -1})
	if err != nil {
		return "", err
	}
	blocks := s.blocks

	var (
		sb        strings.Builder
		indents   []int
		markers   []int
		listTypes []BlockType
		counters  []int
	)
	resetLists := func() {
		indents, markers, listTypes, counters = nil, nil, nil, nil
	}

	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		if i > 0 {
			if b.Type.IsList() && blocks[i-1].Type.IsList() {
				sb.WriteString("\n")
			} else {
				sb.WriteString("\n\n")
			}
		}

		switch {
		case b.Type == CodeBlock:
			resetLists()
			lines := []string{b.Text()}
			for i+1 < len(blocks) && blocks[i+1].Type == CodeBlock {
				i++
				lines = append(lines, blocks[i].Text())
			}
			fence := codeFence(strings.Join(lines, "\n"), "```")
			sb.WriteString(fence + "\n" + strings.Join(lines, "\n") + "\n" + fence)
			continue
		case b.Type.HeaderLevel() > 0:
			resetLists()
			sb.WriteString(strings.Repeat("#", b.Type.HeaderLevel()) + " ")
		case b.Type == Blockquote:
			resetLists()
			sb.WriteString("> ")
		case b.Type.IsList():
			d := minInt(b.Depth, len(indents))
			indent := 0
			if d > 0 {
				indent = indents[d-1] + markers[d-1]
			}
			n := 1
			if d < len(listTypes) && listTypes[d] == b.Type {
				n = counters[d] + 1
			}
			marker := "- "
			if b.Type == OrderedListItem {
				marker = fmt.Sprintf("%d. ", n)
			}
			indents = append(indents[:d], indent)
			markers = append(markers[:d], len(marker))
			listTypes = append(listTypes[:d], b.Type)
			counters = append(counters[:d], n)
			sb.WriteString(strings.Repeat(" ", indent) + marker)
		default:
			resetLists()
		}
		line := escapeLineStart(escapeLineEnd(inlineMarkdown(b)))
		if b.Type.HeaderLevel() > 0 && strings.HasSuffix(line, "#") {
			// A trailing run of '#' would close the heading.
			i := len(strings.TrimRight(line, "#"))
			line = line[:i] + `\` + line[i:]
		}
		sb.WriteString(line)
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

var markdownMarkers = []struct {
	style       InlineStyle
	open, close string
}{
	{Bold, "**", "**"},
	{Italic, "_", "_"},
	{Strikethrough, "~~", "~~"},
	{Underline, "<u>", "</u>"},
}

func inlineMarkdown(b Block) string {
	var sb strings.Builder
	for i := 0; i < len(b.chars); {
		j := i + 1
		for j < len(b.chars) && b.styles[j].Equal(b.styles[i]) {
			j++
		}
		sb.WriteString(markdownRun(grapheme.Join(b.chars[i:j]), b.styles[i]))
		i = j
	}
	return sb.String()
}

func markdownRun(s string, style StyleSet) string {
	core := strings.TrimSpace(s)
	if core == "" {
		return s
	}
	lead := s[:strings.Index(s, core)]
	trail := s[len(lead)+len(core):]

	if style.Has(Code) {
		fence := codeFence(core, "`")
		pad := ""
		if strings.HasPrefix(core, "`") || strings.HasSuffix(core, "`") {
			pad = " "
		}
		core = fence + pad + core + pad + fence
	} else {
		core = escapeMarkdown(core)
	}
	for _, m := range markdownMarkers {
		if style.Has(m.style) {
			core = m.open + core + m.close
		}
	}
	return lead + core + trail
}

// codeFence returns the shortest run of base's character that does not
// occur in s.
func codeFence(s, base string) string {
	fence := base
	for strings.Contains(s, fence) {
		fence += base[:1]
	}
	return fence
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`~`, `\~`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

var orderedMarkerRE = regexp.MustCompile(`^(\d{1,9})([.)])`)

var whitespaceEntities = strings.NewReplacer(" ", "&#32;", "\t", "&#9;")

// escapeLineStart keeps a line from opening a block construct: leading
// whitespace would start indented code, and a leading marker a heading,
// quote, list or thematic break.
func escapeLineStart(s string) string {
	trimmed := strings.TrimLeft(s, " \t")
	if lead := s[:len(s)-len(trimmed)]; lead != "" {
		return whitespaceEntities.Replace(lead) + trimmed
	}
	if s != "" && strings.ContainsAny(s[:1], "#>-+=") {
		return `\` + s
	}
	return orderedMarkerRE.ReplaceAllString(s, `$1\$2`)
}

// escapeLineEnd keeps trailing whitespace, which Markdown strips.
func escapeLineEnd(s string) string {
	trimmed := strings.TrimRight(s, " \t")
	return trimmed + whitespaceEntities.Replace(s[len(trimmed):])
}
