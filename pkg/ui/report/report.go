// Package report renders the outcome of a linking run for the terminal.
//
// Only the totals are written here. Per-entry conflicts and failures are
// reported through the linker's log, which goes to stderr.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/leighmacdonald/dotupdate/pkg/types"
	"github.com/leighmacdonald/dotupdate/pkg/ui/output/styles"
)

var statusLabels = map[types.LinkStatus]string{
	types.StatusCreated:              "linked",
	types.StatusPlanned:              "planned",
	types.StatusSkippedIgnored:       "ignored",
	types.StatusConflictExistingLink: "exists",
	types.StatusConflictExistingFile: "blocked",
	types.StatusFailed:               "failed",
}

// Label returns the short display label for status.
func Label(status types.LinkStatus) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return string(status)
}

// Render writes the dry-run banner, when relevant, and the summary line.
func Render(w io.Writer, result *types.LinkResult) error {
	var b strings.Builder

	if result.DryRun {
		b.WriteString(styles.GetStyle("DryRunBanner").Render("DRY RUN - no links were created"))
		b.WriteString("\n")
	}

	b.WriteString(Summary(result))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary returns a one-line count of every non-zero status.
func Summary(result *types.LinkResult) string {
	counts := result.Counts()

	var parts []string
	for _, status := range types.AllStatuses {
		if n := counts[status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, Label(status)))
		}
	}
	if len(parts) == 0 {
		return styles.GetStyle("Muted").Render("nothing to do")
	}

	style := "Success"
	if result.HasFailures() {
		style = "Error"
	}
	return styles.GetStyle(style).Render(strings.Join(parts, ", "))
}
