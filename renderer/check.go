package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/stockplan"
)

// CheckMarkdown renders the issues found in a portfolio, errors first.
func CheckMarkdown(issues []stockplan.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Check\n\n")
	if len(issues) == 0 {
		fmt.Fprintf(&b, "No issue found.\n")
		return b.String()
	}

	section := func(title string, warning bool) {
		ConditionalBlock(&b, func(w io.Writer) bool {
			fmt.Fprintf(w, "## %s\n\n", title)
			fmt.Fprintln(w, "| Record | ID | Problem |")
			fmt.Fprintln(w, "|:---|:---|:---|")
			n := 0
			for _, i := range issues {
				if i.Warning != warning {
					continue
				}
				// errors.Join separates errors by new lines, that would break the table.
				msg := strings.ReplaceAll(i.Err.Error(), "\n", "; ")
				fmt.Fprintf(w, "| %s | %s | %s |\n", i.Kind, i.ID, msg)
				n++
			}
			fmt.Fprintln(w)
			return n > 0
		})
	}
	section("Errors", false)
	section("Warnings", true)
	return b.String()
}
