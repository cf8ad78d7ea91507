package pipeline

import "github.com/legisearch/legisearch"

// Filter scopes a run to a target year, month and category. Month and
// category matching rules are not yet specified for the source data, so
// Allow is a pass-through; the fields are carried for logging and future
// use.
type Filter struct {
	Year     int
	Month    string
	Category string
}

// FilterFromConfig builds a Filter from run configuration.
func FilterFromConfig(cfg legisearch.Config) Filter {
	return Filter{Year: cfg.Year, Month: cfg.Month, Category: cfg.Category}
}

// Allow reports whether metadata passes the filter. Currently always true.
func (f Filter) Allow(meta legisearch.Metadata) bool {
	return true
}
