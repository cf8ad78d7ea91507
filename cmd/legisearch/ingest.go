package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/legisearch/legisearch"
)

// defaultLegislationURLs is the built-in ingest list, a cross-section of
// statutory instruments and public general acts.
var defaultLegislationURLs = []string{
	"https://www.legislation.gov.uk/uksi/2024/1/made",
	"https://www.legislation.gov.uk/uksi/2023/1355/made",
	"https://www.legislation.gov.uk/uksi/2024/2/made",
	"https://www.legislation.gov.uk/uksi/2024/3/made",
	"https://www.legislation.gov.uk/uksi/2024/10/made",
	"https://www.legislation.gov.uk/ukpga/2023/50/made",
	"https://www.legislation.gov.uk/ukpga/2022/35/made",
}

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	urls := defaultLegislationURLs
	if c.Links != "" {
		loaded, err := readLinksFile(c.Links)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", legisearch.ErrorMessage(err))
			return err
		}
		urls = loaded
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs to ingest.")
		return nil
	}

	summary, err := deps.Pipeline.Run(deps.Ctx, urls)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", legisearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Processed %d of %d documents in %s.\n",
		summary.Processed, len(urls), summary.Elapsed.Round(time.Millisecond))
	if summary.Processed < len(urls) {
		fmt.Fprintln(deps.Stdout, "Some documents failed or were skipped; rerun to retry them.")
	}
	return nil
}

// readLinksFile loads one URL per line, skipping blanks and # comments.
func readLinksFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, legisearch.Errorf(legisearch.EINVALID, "cannot read links file %q: %v", path, err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}
