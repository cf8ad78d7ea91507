package main

import (
	"fmt"
	"strings"

	"github.com/legisearch/legisearch"
)

// snippetLen caps how much matched text is shown per result.
const snippetLen = 200

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", legisearch.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found. Use 'legisearch ingest' to index some legislation first.")
		return nil
	}

	for i, res := range results {
		fmt.Fprintf(deps.Stdout, "%d. distance %.4f\n", i+1, res.Match.Distance)
		if res.Record != nil {
			fmt.Fprintf(deps.Stdout, "   %s (%s)\n", res.Record.Title, res.Record.Identifier)
			fmt.Fprintf(deps.Stdout, "   %s\n", res.Record.SourceURL)
		} else {
			fmt.Fprintln(deps.Stdout, "   (record no longer in store)")
		}
		fmt.Fprintf(deps.Stdout, "   %s\n\n", snippet(res.Match.Text))
	}
	return nil
}

// snippet returns the first snippetLen characters on a single line.
func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > snippetLen {
		text = text[:snippetLen] + "..."
	}
	return text
}
