// Package goquery provides a goquery-based implementation of
// legisearch.Extractor for legislation.gov.uk pages.
package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/legisearch/legisearch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements legisearch.Extractor at compile time.
var _ legisearch.Extractor = (*Extractor)(nil)

// Extractor extracts cleaned text and metadata from legislation HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// boilerplate tags carry no legislation text.
const boilerplateTags = "script, style, nav, header, footer, img, noscript"

// annotationRe matches class names of non-essential annotations: footnotes,
// editorial notes, navigation links and signature blocks.
var annotationRe = regexp.MustCompile(`footnote|annotation|editor-note|nav-link|sig-block`)

// citationRe derives the legislation citation from a canonical URL,
// e.g. /uksi/2024/76 becomes "2024 No. 76".
var citationRe = regexp.MustCompile(`/(uksi|ukpga|asp|nisi)/(\d{4})/(\d+)`)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extract processes raw HTML and returns cleaned text plus metadata.
func (e *Extractor) Extract(htmlContent string) (*legisearch.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, legisearch.Errorf(legisearch.EEXTRACT, "failed to parse HTML: %v", err)
	}

	// Metadata is read before cleaning mutates the document.
	meta := extractMetadata(doc)
	text := cleanText(doc)

	return &legisearch.ExtractResult{Text: text, Meta: meta}, nil
}

// cleanText strips boilerplate and annotations and returns the main body as
// whitespace-collapsed plain text.
func cleanText(doc *goquery.Document) string {
	doc.Find(boilerplateTags).Remove()

	// The main content lives in <main id="content"> on legislation.gov.uk;
	// fall back to the whole document for older page layouts.
	scope := doc.Find("main#content").First()
	if scope.Length() == 0 {
		scope = doc.Find("div.content").First()
	}
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	scope.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		if class, ok := sel.Attr("class"); ok && annotationRe.MatchString(class) {
			sel.Remove()
		}
	})

	var sb strings.Builder
	for _, node := range scope.Nodes {
		collectText(node, &sb)
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(sb.String(), " "))
}

// collectText appends the text nodes under n, space-separated so adjacent
// block elements don't run together.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// extractMetadata pulls title, identifier, type, dates and the canonical
// source URL out of the page.
func extractMetadata(doc *goquery.Document) legisearch.Metadata {
	meta := legisearch.Metadata{}

	if title := extractTitle(doc); title != "" {
		meta[legisearch.MetaTitle] = title
	}

	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")

	if id := strings.TrimSpace(doc.Find(".LegislationIdentifier").First().Text()); id != "" {
		meta[legisearch.MetaIdentifier] = id
	} else if m := citationRe.FindStringSubmatch(canonical); m != nil {
		meta[legisearch.MetaType] = m[1]
		meta["year"] = m[2]
		meta["number"] = m[3]
		meta[legisearch.MetaIdentifier] = fmt.Sprintf("%s No. %s", m[2], m[3])
	}

	doc.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		label := strings.TrimSpace(dt.Text())
		dd := dt.NextFiltered("dd")
		if dd.Length() == 0 {
			return
		}
		if strings.Contains(label, "Date Made:") {
			meta[legisearch.MetaDateMade] = strings.TrimSpace(dd.Text())
		}
		if strings.Contains(label, "Coming into force:") {
			meta[legisearch.MetaEffectiveDate] = strings.TrimSpace(dd.Text())
		}
	})

	if meta[legisearch.MetaType] == "" {
		if t := strings.TrimSpace(doc.Find("span.LegislationType").First().Text()); t != "" {
			meta[legisearch.MetaType] = t
		} else {
			switch id := strings.ToLower(meta[legisearch.MetaIdentifier]); {
			case strings.Contains(id, "uksi"), strings.Contains(id, "statutory instrument"):
				meta[legisearch.MetaType] = "Statutory Instrument"
			case strings.Contains(id, "ukpga"), strings.Contains(id, "act"):
				meta[legisearch.MetaType] = "Public General Act"
			}
		}
	}

	if canonical != "" {
		meta[legisearch.MetaSourceURL] = canonical
	}

	return meta
}

// extractTitle prefers the og:title meta tag, then the page h1, then the
// document title with the site suffix stripped.
func extractTitle(doc *goquery.Document) string {
	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if title := strings.TrimSpace(v); title != "" {
			return title
		}
	}
	if title := strings.TrimSpace(doc.Find("h1.title").First().Text()); title != "" {
		return title
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	return strings.TrimSpace(strings.ReplaceAll(title, " - Legislation.gov.uk", ""))
}
