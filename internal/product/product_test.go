package product

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_JSONFieldNames(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(Product{
		ProductID:   "id",
		Source:      DefaultSource,
		Name:        DefaultName,
		Price:       1.5,
		Seller:      DefaultSeller,
		URL:         DefaultURL,
		ImageURL:    DefaultImageURL,
		DateScraped: "2025-01-01T00:00:00.000Z",
		Timestamp:   1735689600000,
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	for _, key := range []string{"product_id", "source", "name", "price", "seller", "url", "imageUrl", "dateScraped", "timestamp"} {
		assert.Contains(t, m, key)
	}
	assert.Len(t, m, 9)
}
