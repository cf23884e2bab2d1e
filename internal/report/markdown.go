// Package report renders the outcome of a seed run as Markdown.
package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/AlostXD/police-lumos-rp/internal/services"
)

// WriteSeedReport writes a Markdown summary of result to w: the counts
// table, the articles merged from duplicate rows and, when err is not nil,
// the failure that stopped the run.
func WriteSeedReport(w io.Writer, result *services.ReconcileResult, runErr error) error {
	md := markdown.NewMarkdown(w)

	md.H1("Penal Code Seed Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + result.RunID + "`"},
			{"Status", status(runErr)},
			{"Raw rows", strconv.Itoa(result.Inputs)},
			{"Dropped (no article)", strconv.Itoa(result.Dropped)},
			{"Unique articles", strconv.Itoa(len(result.Crimes))},
			{"Upserted", strconv.Itoa(result.Upserted)},
			{"Elapsed", result.Elapsed.Round(time.Millisecond).String()},
		},
	})
	md.PlainText("")

	if runErr != nil {
		md.Cautionf("Seed aborted: %s", runErr.Error())
		md.PlainText("")
	}

	md.H2("Merged Articles")
	if len(result.Merged) == 0 {
		md.PlainText("No article appeared more than once.")
	} else {
		md.BulletList(result.Merged...)
	}

	return md.Build()
}

func status(err error) string {
	if err != nil {
		return "failed"
	}
	return "success"
}
