package bloom_test

import (
	"fmt"
	"testing"

	"github.com/legisearch/legisearch/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	t.Run("first sighting is not seen, second is", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.001)
		url := "https://www.legislation.gov.uk/uksi/2024/1/made"

		assert.False(t, f.Seen(url))
		assert.True(t, f.Seen(url))
	})

	t.Run("distinct URLs are independent", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.001)
		assert.False(t, f.Seen("https://www.legislation.gov.uk/uksi/2024/1/made"))
		assert.False(t, f.Seen("https://www.legislation.gov.uk/uksi/2024/2/made"))
	})

	t.Run("estimated count tracks additions", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.001)
		for i := range 50 {
			f.Seen(fmt.Sprintf("https://www.legislation.gov.uk/uksi/2024/%d/made", i+1))
		}

		count := f.EstimatedCount()
		assert.InDelta(t, 50, float64(count), 5)
	})
}
