package returns

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestNumber(t *testing.T) {
	t.Parallel()

	now := time.Now()
	number := NewRequestNumber(now)

	assert.True(t, strings.HasPrefix(number, "RT"))
	assert.Equal(t, strings.ToUpper(number), number)

	other := NewRequestNumber(now.Add(time.Millisecond))
	assert.NotEqual(t, number, other)
}

func TestNewRefundNumber(t *testing.T) {
	t.Parallel()

	number := NewRefundNumber(time.Now())
	assert.True(t, strings.HasPrefix(number, "RF"))
}

func TestParseReasonCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ReasonDefective, ParseReasonCategory("defective"))
	assert.Equal(t, ReasonOther, ParseReasonCategory("because"))
}

func TestParseShippingMethod(t *testing.T) {
	t.Parallel()

	method, err := ParseShippingMethod("convenience_store")
	assert.NoError(t, err)
	assert.Equal(t, ShipConvenienceStore, method)

	_, err = ParseShippingMethod("teleport")
	assert.ErrorIs(t, err, ErrValidation)
}
