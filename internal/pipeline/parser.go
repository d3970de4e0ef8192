package pipeline

import (
	"regexp"
	"strings"
)

var (
	// ![alt](path) at the start of a line.
	imagePattern = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)`)

	// "- item" at column zero.
	topItemPattern = regexp.MustCompile(`^-\s+(.+)$`)

	// "    - item", exactly four spaces of indentation.
	nestedItemPattern = regexp.MustCompile(`^    -\s+(.+)$`)
)

// maxHeadingDepth is the deepest markdown heading recognized.
const maxHeadingDepth = 4

// Parser groups document lines into blocks according to a Dialect.
// A Parser holds no per-document state and may be reused.
type Parser struct {
	dialect Dialect
	inline  InlineFormatter
}

// NewParser creates a Parser for the given dialect.
func NewParser(d Dialect) *Parser {
	return &Parser{dialect: d, inline: NewInlineFormatter(d)}
}

// ParseText splits text on newlines and parses it.
func (p *Parser) ParseText(text string) []Block {
	return p.Parse(splitLines(text))
}

// Parse converts lines to blocks. Block order always follows line order.
//
// Headings, images and list starts close any open paragraph. Blank lines
// only separate blocks and never produce one.
func (p *Parser) Parse(lines []string) []Block {
	var blocks []Block
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, p.paragraph(strings.Join(para, "\n")))
		para = para[:0]
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		if depth, text, ok := parseHeading(line, p.dialect.EmptyHeadings); ok {
			flush()
			if level := p.dialect.headingLevel(depth); level > 0 {
				blocks = append(blocks, Heading{Level: level, HTML: p.inline.Format(text)})
			}
			i++
			continue
		}

		if p.dialect.Images {
			if img, ok := p.parseImage(line); ok {
				flush()
				blocks = append(blocks, img)
				i++
				continue
			}
		}

		if topItemPattern.MatchString(line) {
			flush()
			list, next := p.buildList(lines, i)
			blocks = append(blocks, list)
			i = next
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case p.dialect.LineParagraphs:
			blocks = append(blocks, p.paragraph(trimmed))
		default:
			para = append(para, line)
		}
		i++
	}
	flush()

	return blocks
}

// paragraph formats text as a paragraph, or as raw markup when it already
// starts with a block tag.
func (p *Parser) paragraph(text string) Block {
	text = strings.TrimSpace(text)
	formatted := p.inline.Format(text)
	for _, prefix := range p.dialect.RawPrefixes {
		if strings.HasPrefix(text, prefix) {
			return Raw{HTML: formatted}
		}
	}
	return Paragraph{HTML: formatted}
}

// parseImage recognizes an image line and rewrites its path.
func (p *Parser) parseImage(line string) (Image, bool) {
	m := imagePattern.FindStringSubmatch(line)
	if m == nil {
		return Image{}, false
	}
	alt := m[1]
	return Image{
		Src:         RewriteImagePath(m[2], p.dialect.ImageRewrites),
		Alt:         stripInlineMarkers(alt),
		CaptionHTML: p.inline.Format(alt),
	}, true
}

// parseHeading recognizes "# text" through "#### text".
// Returns the markdown depth and the heading text. A marker without text is
// a heading only when allowEmpty is set.
func parseHeading(line string, allowEmpty bool) (int, string, bool) {
	depth := 0
	for depth < len(line) && line[depth] == '#' {
		depth++
	}
	if depth == 0 || depth > maxHeadingDepth {
		return 0, "", false
	}
	if len(line) <= depth || line[depth] != ' ' {
		return 0, "", false
	}
	text := strings.TrimSpace(line[depth+1:])
	if text == "" && !allowEmpty {
		return 0, "", false
	}
	return depth, text, true
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(text string) []string {
	text = normalizeLineEndings(text)
	return strings.Split(text, "\n")
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
