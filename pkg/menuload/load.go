package menuload

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/olkkari/menuload/pkg/menuload/mapping"
	"github.com/olkkari/menuload/pkg/menuload/output"
	"github.com/olkkari/menuload/pkg/menuload/remote"
	"github.com/rs/zerolog"
)

var separator = strings.Repeat("=", 80)

// LoadJob describes one JSON file and the table it is loaded into.
type LoadJob struct {
	// Path is the JSON file written by the extract stage.
	Path string
	// Table maps the file's records to table rows.
	Table mapping.Table
	// Title names the table in reports, e.g. "Food Menu".
	Title string
	// Noun describes the records in progress lines, e.g. "food menu items".
	Noun string
	// Icon prefixes the progress line.
	Icon string
}

// DefaultJobs returns the food menu job followed by the cocktail job.
func DefaultJobs(menuPath, cocktailPath string) []LoadJob {
	return []LoadJob{
		{Path: menuPath, Table: mapping.FoodMenu, Title: "Food Menu", Noun: "food menu items", Icon: "📋"},
		{Path: cocktailPath, Table: mapping.Cocktails, Title: "Cocktails", Noun: "cocktail items", Icon: "🍸"},
	}
}

// TableResult is the outcome for one table. A table is either not attempted
// or attempted with success (Err nil) or failure.
type TableResult struct {
	Table     string
	Records   int
	Attempted bool
	Inserted  int
	Err       error
	Count     int64
	CountErr  error
}

// Summary collects the per-table outcomes of a load.
type Summary struct {
	Tables []TableResult
}

// Failed reports whether any insert or count failed.
func (s *Summary) Failed() bool {
	for _, t := range s.Tables {
		if t.Err != nil || t.CountErr != nil {
			return true
		}
	}
	return false
}

// Loader inserts transformed records into a backend and reports progress.
type Loader struct {
	Backend remote.Backend
	// Out receives the operator report.
	Out io.Writer
	Log zerolog.Logger
}

// Load runs every job in order. A JSON file that cannot be read stops the
// load with an error. Insert and count failures are reported and recorded in
// the summary; the load carries on. Nothing is retried.
func (l *Loader) Load(ctx context.Context, jobs []LoadJob) (*Summary, error) {
	summary := &Summary{Tables: make([]TableResult, len(jobs))}
	for i, job := range jobs {
		summary.Tables[i].Table = job.Table.Name
	}

	l.printf("%s\nPOPULATING TABLES FROM EXCEL DATA\n%s\n", separator, separator)

	for i, job := range jobs {
		res := &summary.Tables[i]

		records, err := output.ReadFile(job.Path)
		if err != nil {
			l.Log.Error().Err(err).Str("path", job.Path).Msg("cannot read input")
			return summary, fmt.Errorf("load %s: %w", job.Table.Name, err)
		}
		res.Records = len(records)
		l.printf("\n%s Loading %d %s...\n", job.Icon, len(records), job.Noun)

		rows := job.Table.ApplyAll(records)
		res.Attempted = true
		res.Inserted, res.Err = l.Backend.Insert(ctx, job.Table.Name, rows)
		if res.Err != nil {
			l.Log.Error().Err(res.Err).Str("table", job.Table.Name).Int("rows", len(rows)).Msg("insert failed")
			l.printf("❌ Error inserting %s: %v\n", strings.ToLower(job.Title), res.Err)
		} else {
			l.Log.Debug().Str("table", job.Table.Name).Int("rows", res.Inserted).Msg("insert done")
			l.printf("✅ Successfully inserted %d %s\n", res.Inserted, job.Noun)
		}

		l.printf("\n%s\n", separator)
	}

	l.printf("✅ DATA POPULATION COMPLETE!\n%s\n", separator)

	for i, job := range jobs {
		res := &summary.Tables[i]
		res.Count, res.CountErr = l.Backend.Count(ctx, job.Table.Name)
		if res.CountErr != nil {
			l.Log.Warn().Err(res.CountErr).Str("table", job.Table.Name).Msg("count failed")
		}
	}
	l.printCounts(jobs, summary)

	return summary, nil
}

func (l *Loader) printCounts(jobs []LoadJob, summary *Summary) {
	l.printf("\n📊 Final counts:\n")
	for i, job := range jobs {
		res := summary.Tables[i]
		if res.CountErr != nil {
			l.printf("⚠️  Could not verify counts for %s: %v\n", job.Title, res.CountErr)
			continue
		}
		l.printf("   - %s: %d items\n", job.Title, res.Count)
	}
}

func (l *Loader) printf(format string, args ...interface{}) {
	if l.Out == nil {
		return
	}
	fmt.Fprintf(l.Out, format, args...)
}
