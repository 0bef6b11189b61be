package receipt

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/geprek/internal/models"
)

var (
	orderID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	userID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func sampleOrder() (*models.Order, *models.User) {
	address := "Jl. Merdeka No. 1"
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "budi",
		Phone:     "081234567890",
		Address:   &address,
	}
	productID := uuid.New()
	order := &models.Order{
		BaseModel:   models.BaseModel{ID: orderID},
		UserID:      userID,
		Status:      models.StatusAwaitingApproval,
		TotalAmount: 33000,
		Items: []models.OrderItem{
			{
				ProductID: &productID,
				Product:   &models.Product{Name: "Ayam Geprek Sambal Ijo"},
				Quantity:  2,
				Price:     15000,
				Subtotal:  30000,
			},
			{Quantity: 1, Price: 3000, Subtotal: 3000},
		},
	}
	return order, user
}

func TestDisplayID(t *testing.T) {
	assert.Equal(t, "096354", DisplayID("abc", 6))
	assert.Equal(t, DisplayID("abc", 6), DisplayID("abc", 6))
	assert.Equal(t, "000000", DisplayID("", 6))
	assert.Equal(t, "076544", DisplayID(orderID.String(), 6))
	assert.Equal(t, "46720", DisplayID(userID.String(), 5))
	assert.Len(t, DisplayID("some-long-identifier", 6), 6)
}

func TestFormatRupiah(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1.000",
		15000:   "15.000",
		1234567: "1.234.567",
		-15000:  "-15.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatRupiah(in))
	}
}

func TestFormat(t *testing.T) {
	order, user := sampleOrder()

	want := strings.Join([]string{
		"AYAM GEPREK SAMBAL IJO",
		"---------------------",
		"ID Struk: #076544",
		"ID User: #46720",
		"Nama User: budi",
		"No HP: 081234567890",
		"Alamat: Jl. Merdeka No. 1",
		"---------------------",
		"",
		"  Ayam Geprek Sambal Ijo x2",
		"  Rp 30.000",
		"",
		"  Produk Terhapus x1",
		"  Rp 3.000",
		"",
		"---------------------",
		"Total: Rp 33.000",
		"Status: MENUNGGU_PERSETUJUAN",
		"---------------------",
		"Pedasnya Bikin Nagih!",
		"",
		"Terima Kasih Atas Pesanan Anda!",
	}, "\n")

	assert.Equal(t, want, Format(order, user, nil))
}

func TestFormatUsesStoreProfileAndFallbacks(t *testing.T) {
	order, _ := sampleOrder()
	order.Items = nil
	profile := &models.StoreProfile{Name: "GEPREK CABANG 2", Slogan: "Pedas Mantap"}

	out := Format(order, &models.User{Username: "anon"}, profile)

	assert.True(t, strings.HasPrefix(out, "GEPREK CABANG 2\n"))
	assert.Contains(t, out, "ID User: #00000\n")
	assert.Contains(t, out, "Alamat: -\n")
	assert.Contains(t, out, "---------------------\n\n---------------------\nTotal: Rp 33.000")
	assert.Contains(t, out, "\nPedas Mantap\n\nTerima Kasih Atas Pesanan Anda!")
}

func TestCheckoutMessageAndURL(t *testing.T) {
	order, user := sampleOrder()

	msg := CheckoutMessage(order, user, nil)
	assert.True(t, strings.HasPrefix(msg, "*AYAM GEPREK SAMBAL IJO*\n------------------------\nNama User: budi\n"))
	assert.Contains(t, msg, "- Ayam Geprek Sambal Ijo x2 = Rp 30.000\n- Produk Terhapus x1 = Rp 3.000\n")
	assert.Contains(t, msg, "*Total: Rp 33.000*\n*ID Pesanan: #076544*")
	assert.Contains(t, msg, "Status: Menunggu Persetujuan\n\nTerima Kasih Atas Pesanan Anda!")

	link := WhatsAppURL("+6285260812758", msg)
	require.True(t, strings.HasPrefix(link, "https://wa.me/6285260812758?text="))
	assert.NotContains(t, link, "+")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, msg, parsed.Query().Get("text"))
}
