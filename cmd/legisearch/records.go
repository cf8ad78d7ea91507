package main

import (
	"fmt"

	"github.com/legisearch/legisearch"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	filter := legisearch.RecordFilter{}
	if c.Status != "" {
		status := legisearch.Status(c.Status)
		if !status.Valid() {
			err := legisearch.Errorf(legisearch.EINVALID, "invalid status %q", c.Status)
			fmt.Fprintf(deps.Stderr, "error: %s\n", legisearch.ErrorMessage(err))
			return err
		}
		filter.Status = &status
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", legisearch.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'legisearch ingest' to add some.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "%s  %-16s  %s\n", rec.Identifier, rec.Status, rec.Title)
	}
	return nil
}
