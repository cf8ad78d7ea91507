package goquery_test

import (
	"testing"

	"github.com/legisearch/legisearch"
	lsgoquery "github.com/legisearch/legisearch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>The Test Regulations 2024 - Legislation.gov.uk</title>
	<meta property="og:title" content="The Environmental Protection Regulations 2024">
	<link rel="canonical" href="https://www.legislation.gov.uk/uksi/2024/76/made">
	<script>var tracking = true;</script>
	<style>.watermark { opacity: 0.2; }</style>
</head>
<body>
	<nav><a href="/browse">Browse legislation</a></nav>
	<header>Site header</header>
	<main id="content">
		<h1 class="title">The Environmental Protection Regulations 2024</h1>
		<dl>
			<dt>Date Made:</dt><dd>1st August 2024</dd>
			<dt>Coming into force:</dt><dd>1st September 2024</dd>
		</dl>
		<p>These Regulations restrict the supply of single-use plastic products.</p>
		<p class="footnote">Footnote text that should be removed.</p>
		<div class="sig-block">Signed by authority of the Secretary of State</div>
	</main>
	<footer>Crown copyright</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts cleaned text", func(t *testing.T) {
		t.Parallel()

		res, err := lsgoquery.NewExtractor().Extract(sampleHTML)
		require.NoError(t, err)

		assert.Contains(t, res.Text, "restrict the supply of single-use plastic products")
		assert.NotContains(t, res.Text, "Footnote text")
		assert.NotContains(t, res.Text, "Signed by authority")
		assert.NotContains(t, res.Text, "Browse legislation")
		assert.NotContains(t, res.Text, "Crown copyright")
		assert.NotContains(t, res.Text, "tracking")
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()

		res, err := lsgoquery.NewExtractor().Extract("<main id=\"content\"><p>a\n\n  b\t c</p></main>")
		require.NoError(t, err)
		assert.Equal(t, "a b c", res.Text)
	})

	t.Run("extracts metadata", func(t *testing.T) {
		t.Parallel()

		res, err := lsgoquery.NewExtractor().Extract(sampleHTML)
		require.NoError(t, err)

		assert.Equal(t, "The Environmental Protection Regulations 2024", res.Meta[legisearch.MetaTitle])
		assert.Equal(t, "2024 No. 76", res.Meta[legisearch.MetaIdentifier])
		assert.Equal(t, "uksi", res.Meta[legisearch.MetaType])
		assert.Equal(t, "2024", res.Meta["year"])
		assert.Equal(t, "76", res.Meta["number"])
		assert.Equal(t, "1st August 2024", res.Meta[legisearch.MetaDateMade])
		assert.Equal(t, "1st September 2024", res.Meta[legisearch.MetaEffectiveDate])
		assert.Equal(t, "https://www.legislation.gov.uk/uksi/2024/76/made", res.Meta[legisearch.MetaSourceURL])
	})

	t.Run("prefers explicit identifier element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<link rel="canonical" href="https://www.legislation.gov.uk/uksi/2024/76/made">
		</head><body><main id="content">
			<p class="LegislationIdentifier">2024 No. 76</p>
			<span class="LegislationType">Statutory Instrument</span>
		</main></body></html>`

		res, err := lsgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "2024 No. 76", res.Meta[legisearch.MetaIdentifier])
		assert.Equal(t, "Statutory Instrument", res.Meta[legisearch.MetaType])
	})

	t.Run("falls back to title tag with site suffix stripped", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>The Fallback Act 2024 - Legislation.gov.uk</title></head>
			<body><p>body</p></body></html>`

		res, err := lsgoquery.NewExtractor().Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "The Fallback Act 2024", res.Meta[legisearch.MetaTitle])
	})

	t.Run("missing metadata yields empty keys", func(t *testing.T) {
		t.Parallel()

		res, err := lsgoquery.NewExtractor().Extract("<html><body><p>bare page</p></body></html>")
		require.NoError(t, err)
		assert.Empty(t, res.Meta[legisearch.MetaTitle])
		assert.Empty(t, res.Meta[legisearch.MetaIdentifier])
	})

	t.Run("falls back to whole document without main content", func(t *testing.T) {
		t.Parallel()

		res, err := lsgoquery.NewExtractor().Extract("<html><body><p>loose text</p></body></html>")
		require.NoError(t, err)
		assert.Equal(t, "loose text", res.Text)
	})
}
