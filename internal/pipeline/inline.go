package pipeline

import (
	"html"
	"regexp"
	"strings"
)

// codePlaceholder stands in for one protected code token while the other
// inline rules run. It is a Private Use Area character, so no rule can match
// or split it, and tokens are restored in order of appearance.
const codePlaceholder = "\uE002"

// codePlaceholderEntity replaces a placeholder character found in the input,
// so only tokens produced by tokenizeCode are ever restored.
const codePlaceholderEntity = "&#xE002;"

// Precompiled inline patterns. The application order is fixed in Format.
var (
	// `code` spans and <code> elements rendered by a previous pass.
	codeSpanPattern = regexp.MustCompile("`([^`]+)`|(?s:<code>.*?</code>)")

	// **bold**, non-greedy so adjacent spans stay separate.
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// *italic*, must run after bold.
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)

	// __bold__ alternate delimiter.
	underscoreBoldPattern = regexp.MustCompile(`__(.+?)__`)

	// [label](url)
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// codeToken is an opaque inline-code token.
type codeToken struct {
	text     string
	rendered bool // already an HTML <code> element; restored verbatim
}

// InlineFormatter converts the inline markup of a single line or paragraph.
type InlineFormatter struct {
	underscoreBold bool
}

// NewInlineFormatter creates an InlineFormatter for the given dialect.
func NewInlineFormatter(d Dialect) InlineFormatter {
	return InlineFormatter{underscoreBold: d.UnderscoreBold}
}

// Format converts code spans, bold, italic and links to HTML.
//
// Code spans are tokenized first and rendered last, so markup inside them is
// never interpreted. Bold runs before italic so a single-asterisk rule cannot
// consume half of a double-asterisk pair. Unmatched markers are left as-is.
// The output contains no markup this function would match again.
func (f InlineFormatter) Format(text string) string {
	text, tokens := tokenizeCode(text)

	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")
	if f.underscoreBold {
		text = underscoreBoldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	}
	text = linkPattern.ReplaceAllString(text, `<a href="$2" target="_blank">$1</a>`)

	return renderCode(text, tokens)
}

// tokenizeCode replaces code spans with placeholders and returns the tokens.
// Placeholder characters already present outside code spans are escaped.
func tokenizeCode(text string) (string, []codeToken) {
	if !strings.ContainsAny(text, "`<") {
		return escapePlaceholders(text), nil
	}

	var tokens []codeToken
	var buf strings.Builder
	buf.Grow(len(text))

	last := 0
	for _, loc := range codeSpanPattern.FindAllStringIndex(text, -1) {
		buf.WriteString(escapePlaceholders(text[last:loc[0]]))
		m := text[loc[0]:loc[1]]
		if strings.HasPrefix(m, "`") {
			tokens = append(tokens, codeToken{text: m[1 : len(m)-1]})
		} else {
			tokens = append(tokens, codeToken{text: m, rendered: true})
		}
		buf.WriteString(codePlaceholder)
		last = loc[1]
	}
	buf.WriteString(escapePlaceholders(text[last:]))

	return buf.String(), tokens
}

func escapePlaceholders(text string) string {
	return strings.ReplaceAll(text, codePlaceholder, codePlaceholderEntity)
}

// renderCode substitutes placeholders with their rendered tokens.
func renderCode(text string, tokens []codeToken) string {
	if len(tokens) == 0 {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))

	next := 0
	for {
		idx := strings.Index(text, codePlaceholder)
		if idx == -1 || next >= len(tokens) {
			buf.WriteString(text)
			return buf.String()
		}
		buf.WriteString(text[:idx])
		tok := tokens[next]
		if tok.rendered {
			buf.WriteString(tok.text)
		} else {
			buf.WriteString("<code>")
			buf.WriteString(html.EscapeString(tok.text))
			buf.WriteString("</code>")
		}
		next++
		text = text[idx+len(codePlaceholder):]
	}
}

// stripInlineMarkers removes emphasis and code markers, keeping their text.
// Used for attribute values such as image alt text.
func stripInlineMarkers(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	return codeSpanPattern.ReplaceAllStringFunc(text, func(m string) string {
		if strings.HasPrefix(m, "`") {
			return m[1 : len(m)-1]
		}
		return m
	})
}
