package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportContent(t *testing.T) {
	t.Parallel()

	t.Run("should parse a well-formed response", func(t *testing.T) {
		raw := `{
			"summary": "Returns rose slightly in March.",
			"pain_points": [{"category": "defective", "count": 12, "description": "power supply failures"}],
			"recommendations": ["tighten incoming QC on SKU-12"],
			"sku_analysis": [{"sku": "SKU-12", "product_name": "Mixer", "return_count": 9, "top_reason": "defective"}],
			"channel_analysis": [{"channel": "official", "return_count": 20, "return_rate": 0.04}]
		}`

		content, err := ParseReportContent([]byte(raw))

		require.NoError(t, err)
		assert.Equal(t, "Returns rose slightly in March.", content.Summary)
		assert.Len(t, content.PainPoints, 1)
		assert.Len(t, content.Recommendations, 1)
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		raw := `{"summary": "ok", "recommendations": ["x"], "confidence": 0.9}`

		_, err := ParseReportContent([]byte(raw))

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("should reject non-JSON output", func(t *testing.T) {
		_, err := ParseReportContent([]byte("Here is my analysis: returns are fine."))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("should reject an empty summary", func(t *testing.T) {
		_, err := ParseReportContent([]byte(`{"summary": "", "recommendations": ["x"]}`))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("should reject missing recommendations", func(t *testing.T) {
		_, err := ParseReportContent([]byte(`{"summary": "ok", "recommendations": []}`))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("should reject a pain point without category", func(t *testing.T) {
		raw := `{"summary": "ok", "recommendations": ["x"], "pain_points": [{"count": 3}]}`

		_, err := ParseReportContent([]byte(raw))

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	month, err := ParseMonth("2026-03")
	require.NoError(t, err)
	assert.Equal(t, 2026, month.Year())

	_, err = ParseMonth("March 2026")
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = ParseMonth("2026-13")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(` {"a":1} `))
}
