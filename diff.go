package frontkit

import (
	"github.com/pmezard/go-difflib/difflib"
)

// DiffContext is the number of unchanged lines shown around each change.
const DiffContext = 3

// UnifiedDiff renders the change from before to after as a unified diff.
// It returns an empty string when nothing changed.
func UnifiedDiff(fromName, toName, before, after string) (string, error) {
	if before == after {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: fromName,
		ToFile:   toName,
		Context:  DiffContext,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", &ProcessorError{Message: "failed to render diff", Cause: err, ContentType: "diff"}
	}
	return out, nil
}

// DiffStats counts added and removed lines in a unified diff.
type DiffStats struct {
	Added   int
	Removed int
}

// CountDiff returns line-level statistics for a unified diff produced by
// UnifiedDiff.
func CountDiff(diff string) DiffStats {
	var stats DiffStats
	for _, line := range SplitLines(diff) {
		switch {
		case len(line) >= 3 && (line[:3] == "+++" || line[:3] == "---"):
		case line[0] == '+':
			stats.Added++
		case line[0] == '-':
			stats.Removed++
		}
	}
	return stats
}
