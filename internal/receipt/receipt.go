package receipt

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/example/geprek/internal/models"
)

const separator = "---------------------"

// ReceiptID is the six digit code printed as "ID Struk".
func ReceiptID(order *models.Order) string {
	return DisplayID(order.ID.String(), 6)
}

// UserDisplayID is the five digit code printed as "ID User".
func UserDisplayID(user *models.User) string {
	if user == nil || user.ID == uuid.Nil {
		return "00000"
	}
	return DisplayID(user.ID.String(), 5)
}

// Format renders the fixed-layout text receipt for an order. Items need their
// Product preloaded; items without one print as "Produk Terhapus".
func Format(order *models.Order, user *models.User, profile *models.StoreProfile) string {
	var username, phone, address string
	if user != nil {
		username = user.Username
		phone = user.Phone
		if user.Address != nil {
			address = *user.Address
		}
	}
	if address == "" {
		address = "-"
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(profile.DisplayName())
	line(separator)
	line("ID Struk: #" + ReceiptID(order))
	line("ID User: #" + UserDisplayID(user))
	line("Nama User: " + username)
	line("No HP: " + phone)
	line("Alamat: " + address)
	line(separator)
	for i := range order.Items {
		item := &order.Items[i]
		b.WriteString("\n  " + item.ProductName() + " x" + strconv.Itoa(item.Quantity) + "\n")
		b.WriteString("  Rp " + FormatRupiah(item.Subtotal) + "\n")
	}
	b.WriteByte('\n')
	line(separator)
	line("Total: Rp " + FormatRupiah(order.TotalAmount))
	line("Status: " + string(order.Status))
	line(separator)
	line(profile.DisplaySlogan())
	b.WriteByte('\n')
	b.WriteString("Terima Kasih Atas Pesanan Anda!")

	return b.String()
}

// FileName is the download name used for a receipt.
func FileName(order *models.Order) string {
	return "struk-" + order.ID.String() + ".txt"
}
