package receipt

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/example/geprek/internal/models"
)

const messageSeparator = "------------------------"

// CheckoutMessage renders the order summary sent to the store over WhatsApp.
func CheckoutMessage(order *models.Order, user *models.User, profile *models.StoreProfile) string {
	var username, phone string
	if user != nil {
		username = user.Username
		phone = user.Phone
	}

	lines := []string{
		"*" + profile.DisplayName() + "*",
		messageSeparator,
		"Nama User: " + username,
		"ID User: #" + UserDisplayID(user),
		"No HP: " + phone,
		messageSeparator,
		"*Daftar Pesanan:*",
	}
	for i := range order.Items {
		item := &order.Items[i]
		lines = append(lines, "- "+item.ProductName()+" x"+strconv.Itoa(item.Quantity)+" = Rp "+FormatRupiah(item.Subtotal))
	}
	lines = append(lines,
		messageSeparator,
		"*Total: Rp "+FormatRupiah(order.TotalAmount)+"*",
		"*ID Pesanan: #"+ReceiptID(order)+"*",
		messageSeparator,
		"Status: "+order.Status.Label(),
		"",
		"Terima Kasih Atas Pesanan Anda!",
	)

	return strings.Join(lines, "\n")
}

// WhatsAppURL builds a wa.me deep link that opens a chat with the message prefilled.
// Spaces are encoded as %20 so every WhatsApp client decodes them.
func WhatsAppURL(phone, message string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + text
}
