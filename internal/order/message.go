// Package order builds the outbound order text sent when a quotation is
// finalized. The wording for quantities comes from cart.QuantityLabel, so the
// message always matches what the cart view showed.
package order

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ceer-dev/optimarketsrl/internal/cart"
)

// Payment methods offered at checkout.
const (
	PaymentQR   = "QR"
	PaymentCash = "EFECTIVO"
)

const lineDivider = "-------------------------------------------"

// Message renders the proforma order text for the given cart lines.
func Message(shop, paymentMethod string, lines []cart.Line, when time.Time) string {
	if paymentMethod == "" {
		paymentMethod = PaymentQR
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Óptica:* %s\n", shop)
	fmt.Fprintf(&b, "*Fecha:* %s\n", when.Format("02/01/2006"))
	fmt.Fprintf(&b, "*Método de Pago:* %s\n", paymentMethod)
	b.WriteString("Este es mi Pedido:\n\n")

	for _, l := range lines {
		fmt.Fprintf(&b, "*Material:* %s\n", l.Entry.SubMaterial)
		fmt.Fprintf(&b, "%s\n", l.Entry.Measure)
		fmt.Fprintf(&b, "*Cantidad:* %s\n", cart.QuantityLabel(l.Entry.Category, l.Qty))
		b.WriteString(lineDivider + "\n")
	}

	b.WriteString("Gracias, Espero Confirmacion")
	return b.String()
}

// WhatsAppURL builds the wa.me link that opens a chat with the order text
// prefilled.
func WhatsAppURL(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
