package pipeline

import (
	"regexp"
	"strings"
)

// sectionHeadingPattern matches numbered top-level headings: "# 2. DATA and METHODS".
var sectionHeadingPattern = regexp.MustCompile(`^# (\d+\. .+)$`)

// Section is one named part of a report.
type Section struct {
	Name string // heading text, e.g. "1. INTRODUCTION"
	Body string // lines between this heading and the next
}

// SplitSections partitions a report by numbered top-level headings.
//
// Text before the first heading is discarded. Sections keep the order of
// their first appearance; a repeated name replaces the earlier body.
func SplitSections(content string) []Section {
	var sections []Section
	index := make(map[string]int)

	current := -1
	var body []string

	closeSection := func() {
		if current >= 0 {
			sections[current].Body = strings.Join(body, "\n")
		}
	}

	for _, line := range splitLines(content) {
		m := sectionHeadingPattern.FindStringSubmatch(line)
		if m == nil {
			body = append(body, line)
			continue
		}

		closeSection()
		name := m[1]
		if i, ok := index[name]; ok {
			current = i
		} else {
			index[name] = len(sections)
			current = len(sections)
			sections = append(sections, Section{Name: name})
		}
		body = nil
	}
	closeSection()

	return sections
}
