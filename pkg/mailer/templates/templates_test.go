package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_OrderConfirmation(t *testing.T) {
	subject, text, html, err := Render("order_confirmation", map[string]any{
		"Name":    "Jane Doe",
		"OrderID": "order-1",
		"Status":  "pending",
		"Total":   25.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Your order was received", subject)
	assert.Contains(t, text, "order-1")
	assert.Contains(t, text, "25.50")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "<em>pending</em>")
}

func TestRender_EscapesHTML(t *testing.T) {
	_, _, html, err := Render("order_confirmation", map[string]any{
		"Name": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("password_reset", nil)
	assert.Error(t, err)
}
