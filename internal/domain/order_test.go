package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, label := range []string{"PENDING", "PROCESSING", "SHIPPED", "DELIVERED"} {
		s, err := ParseOrderStatus(label)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(label), s)
	}

	for _, label := range []string{"BOGUS", "pending", "", "CANCELLED"} {
		_, err := ParseOrderStatus(label)
		assert.ErrorIs(t, err, ErrInvalidStatus, "label %q", label)
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusShipped, true},  // skipping ahead is allowed
		{OrderStatusPending, OrderStatusPending, true},  // no-op is allowed
		{OrderStatusShipped, OrderStatusPending, false}, // backward is not
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusProcessing, OrderStatusPending, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}
