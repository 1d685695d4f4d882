package rewrite

import (
	"regexp"
	"strings"
)

// scanState is the state of the grid item closing scanner.
type scanState int

const (
	searching scanState = iota
	insideBlock
)

var (
	bareDivClose    = regexp.MustCompile(`^\s*</div>\s*$`)
	bareMotionClose = regexp.MustCompile(`^\s*</motion\.div>\s*$`)
)

// isGridItemOpener matches lines produced by AnimateGridItems.
func isGridItemOpener(line string) bool {
	return strings.Contains(line, "<motion.div key=") && strings.Contains(line, "initial={{ opacity: 0")
}

// closeGridItems scans line by line. An opener line moves the scanner to
// insideBlock (again, if it already was). Inside a block, the first line that
// is only "</div>" is rewritten to "</motion.div>" and the scanner returns to
// searching; a line that is only "</motion.div>" ends the block unchanged.
//
// There is no nesting awareness: a nested element closing with a bare
// "</div>" line before the item's own closing tag receives the rewrite
// instead.
func closeGridItems(content string) string {
	lines := strings.Split(content, "\n")
	state := searching

	for i, line := range lines {
		switch {
		case isGridItemOpener(line):
			state = insideBlock
		case state == insideBlock && bareDivClose.MatchString(line):
			lines[i] = strings.Replace(line, "</div>", "</motion.div>", 1)
			state = searching
		case state == insideBlock && bareMotionClose.MatchString(line):
			state = searching
		}
	}

	return strings.Join(lines, "\n")
}
