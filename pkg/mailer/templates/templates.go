package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Order confirmation is the only templated email the API sends; anything else
// goes through the raw Subject/Text/HTML fields of an EmailJob.

const orderConfirmationHTML = `<html>
<body style="font-family: sans-serif">
  <h2>Thanks for your order{{if .Name}}, {{.Name}}{{end}}!</h2>
  <p>Order <strong>{{.OrderID}}</strong> was received and is now <em>{{.Status}}</em>.</p>
  <p>Total: <strong>{{printf "%.2f" .Total}}</strong></p>
  <p>We will let you know when it ships.</p>
</body>
</html>`

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(orderConfirmationHTML))

// OrderConfirmationData is the payload the order service puts on the queue.
type OrderConfirmationData struct {
	Name    string
	OrderID string
	Status  string
	Total   float64
}

func dataFromMap(m map[string]any) OrderConfirmationData {
	d := OrderConfirmationData{}
	if v, ok := m["Name"]; ok {
		d.Name = fmt.Sprintf("%v", v)
	}
	if v, ok := m["OrderID"]; ok {
		d.OrderID = fmt.Sprintf("%v", v)
	}
	if v, ok := m["Status"]; ok {
		d.Status = fmt.Sprintf("%v", v)
	}
	if v, ok := m["Total"]; ok {
		if f, ok := v.(float64); ok {
			d.Total = f
		}
	}
	return d
}

// Render returns subject, text and HTML bodies for a known template name.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "order_confirmation":
		d := dataFromMap(data)
		var buf bytes.Buffer
		if err = orderConfirmationTmpl.Execute(&buf, d); err != nil {
			return "", "", "", err
		}
		subject = "Your order was received"
		text = fmt.Sprintf("Order %s received, status %s, total %.2f", d.OrderID, d.Status, d.Total)
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
