package pipeline

import "strings"

// buildList consumes a list starting at lines[start], which must be a
// top-level item, and returns the list with the index of the first line
// after it.
//
// A top-level item absorbs the nested items directly below it. A blank line
// keeps the list open only when the next line is a top-level item. Nested
// items with no parent in this scan are skipped.
func (p *Parser) buildList(lines []string, start int) (List, int) {
	var list List
	i := start

	for i < len(lines) {
		line := lines[i]

		if m := topItemPattern.FindStringSubmatch(line); m != nil {
			item := ListItem{HTML: p.inline.Format(m[1])}
			i++
			for p.dialect.NestedLists && i < len(lines) {
				nested := nestedItemPattern.FindStringSubmatch(lines[i])
				if nested == nil {
					break
				}
				item.Children = append(item.Children, p.inline.Format(nested[1]))
				i++
			}
			list.Items = append(list.Items, item)
			continue
		}

		if strings.TrimSpace(line) == "" {
			if i+1 < len(lines) && topItemPattern.MatchString(lines[i+1]) {
				i++
				continue
			}
			break
		}

		// Orphan nested item: no top-level item directly above it.
		if p.dialect.NestedLists && nestedItemPattern.MatchString(line) {
			i++
			continue
		}

		break
	}

	return list, i
}
