package pipeline

// Dialect selects the markdown rules of one authoring format.
// The notebook and report formats diverge on heading levels, image support,
// list nesting and paragraph grouping; both are served by the same Parser.
type Dialect struct {
	Name string

	// HeadingLevels maps a markdown heading depth (index 1-4) to the emitted
	// HTML heading level. A zero entry suppresses headings of that depth.
	HeadingLevels [5]int

	// EmptyHeadings accepts a heading marker with no text, such as "## ".
	EmptyHeadings bool

	// Images enables ![alt](path) lines.
	Images bool

	// NestedLists enables the four-space nested list level.
	NestedLists bool

	// UnderscoreBold accepts __text__ as an alternate bold delimiter.
	UnderscoreBold bool

	// LineParagraphs emits one paragraph per non-blank line. When false,
	// consecutive non-blank lines are grouped into a single paragraph.
	LineParagraphs bool

	// RawPrefixes lists the prefixes of paragraphs that already hold block
	// markup and are passed through without a <p> wrapper.
	RawPrefixes []string

	// ImageRewrites rewrites image paths from source-relative to
	// output-relative locations. The first matching rule wins.
	ImageRewrites []PathRewrite
}

// NotebookDialect returns the rules used for notebook markdown cells.
func NotebookDialect() Dialect {
	return Dialect{
		Name:           "notebook",
		HeadingLevels:  [5]int{0, 1, 2, 3, 3},
		UnderscoreBold: true,
		RawPrefixes:    []string{"<h", "<ul", "<ol", "<li"},
	}
}

// ReportDialect returns the rules used for the long-form report.
// Level 1 headings are suppressed because the page template supplies the
// title, and the remaining levels are promoted by one.
func ReportDialect() Dialect {
	return Dialect{
		Name:           "report",
		HeadingLevels:  [5]int{0, 0, 1, 2, 3},
		EmptyHeadings:  true,
		Images:         true,
		NestedLists:    true,
		LineParagraphs: true,
		ImageRewrites:  DefaultImageRewrites(),
	}
}

// headingLevel returns the HTML level for a markdown depth, 0 if suppressed.
func (d Dialect) headingLevel(depth int) int {
	if depth < 1 || depth >= len(d.HeadingLevels) {
		return 0
	}
	return d.HeadingLevels[depth]
}
