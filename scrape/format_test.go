package scrape_test

import (
	"testing"

	"github.com/askcdp/cdpdoc/scrape"
	"github.com/stretchr/testify/assert"
)

func TestComputeHash(t *testing.T) {
	t.Parallel()

	a := scrape.ComputeHash("# Page\n\nSome content.")
	b := scrape.ComputeHash("# Page\n\nSome content.")
	c := scrape.ComputeHash("# Page\n\nDifferent content.")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEmpty(t, a)
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"short url unchanged", "https://a.com/x", 50, "https://a.com/x"},
		{"long url keeps the tail", "https://segment.com/docs/connections/sources/catalog/", 20, ".../sources/catalog/"},
		{"zero length", "https://a.com/x", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrape.TruncateURL(tt.url, tt.maxLen))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", scrape.FormatBytes(512))
	assert.Equal(t, "2.0 KB", scrape.FormatBytes(2048))
	assert.Equal(t, "1.5 MB", scrape.FormatBytes(1572864))
}
