package pipeline

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-nbsite/internal/notebook"
)

// Output size caps, in characters.
const (
	MaxStreamChars = 3000
	MaxTextChars   = 2000
	MaxHTMLChars   = 50000
)

// Truncation markers appended to capped outputs.
const (
	streamTruncatedMarker = "\n... [output truncated]"
	textTruncatedMarker   = "\n... [truncated]"
)

// largeTableNote replaces HTML outputs above MaxHTMLChars.
const largeTableNote = `<div class="output-note">&#x1F4CB; <em>[Large table - see notebook]</em></div>`

// Result payload keys in precedence order. Only the first present key of a
// result is rendered.
const (
	mimePNG   = "image/png"
	mimeJPEG  = "image/jpeg"
	mimeSVG   = "image/svg+xml"
	mimeHTML  = "text/html"
	mimePlain = "text/plain"
)

var resultPrecedence = []string{mimePNG, mimeJPEG, mimeSVG, mimeHTML, mimePlain}

// RenderOutputs renders the captured outputs of one code cell.
// Returns the empty string and zero figures when no output produced markup.
func RenderOutputs(outputs []notebook.Output) (string, int) {
	var parts []string
	figures := 0

	for _, out := range outputs {
		switch out.Type {
		case notebook.OutputStream:
			if part := renderStream(out); part != "" {
				parts = append(parts, part)
			}
		case notebook.OutputExecuteResult, notebook.OutputDisplayData:
			part, isFigure := renderResult(out, figures+1)
			if part == "" {
				continue
			}
			if isFigure {
				figures++
			}
			parts = append(parts, part)
		case notebook.OutputError:
			parts = append(parts, renderError(out))
		}
	}

	if len(parts) == 0 {
		return "", 0
	}
	return `<div class="cell-outputs">` + "\n" + strings.Join(parts, "\n") + "\n</div>", figures
}

// renderStream renders printed text, dropping blank streams.
func renderStream(out notebook.Output) string {
	text := out.Text.String()
	if strings.TrimSpace(text) == "" {
		return ""
	}
	text = truncate(text, MaxStreamChars, streamTruncatedMarker)
	return `<pre class="output-stream">` + html.EscapeString(text) + "</pre>"
}

// renderResult renders the highest-precedence representation of a result.
// figure is the number the rendered figure would get.
func renderResult(out notebook.Output, figure int) (string, bool) {
	for _, mime := range resultPrecedence {
		payload, ok := out.Data[mime]
		if !ok {
			continue
		}
		data := payload.String()

		switch mime {
		case mimePNG, mimeJPEG:
			return renderImage(mime, data, figure), true
		case mimeSVG:
			return `<div class="output-figure output-svg">` + data + "</div>", true
		case mimeHTML:
			if utf8.RuneCountInString(data) > MaxHTMLChars {
				return largeTableNote, false
			}
			return `<div class="output-html">` + data + "</div>", false
		case mimePlain:
			text := truncate(data, MaxTextChars, textTruncatedMarker)
			return `<pre class="output-text">` + html.EscapeString(text) + "</pre>", false
		}
	}
	return "", false
}

// renderImage embeds base64 image data as a data URI.
func renderImage(mime, data string, figure int) string {
	data = strings.TrimSpace(data)
	return fmt.Sprintf(`<div class="output-figure"><img class="output-image" src="data:%s;base64,%s" alt="Figure %d" /></div>`,
		mime, html.EscapeString(data), figure)
}

// renderError renders an exception name and value. Never empty.
func renderError(out notebook.Output) string {
	name := out.EName
	if name == "" {
		name = "Error"
	}
	return `<pre class="output-error">` + html.EscapeString(name) + ": " + html.EscapeString(out.EValue) + "</pre>"
}

// truncate caps text at limit characters and appends marker when it was cut.
// Text of exactly limit characters is returned unchanged.
func truncate(text string, limit int, marker string) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i] + marker
		}
		count++
	}
	return text
}
