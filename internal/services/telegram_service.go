package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/receipt"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramService sends back-office notifications to a Telegram chat.
type TelegramService struct {
	botToken    string
	adminChatID string
	apiBase     string
	client      *http.Client
	logger      *zap.Logger
}

// NewTelegramService creates a new TelegramService. With an empty token or
// chat id every send is a no-op.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		apiBase:     telegramAPIBase,
		client:      &http.Client{Timeout: 10 * time.Second},
		logger:      zap.L().Named("telegram"),
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Enabled reports whether both a bot token and an admin chat are configured.
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.adminChatID != ""
}

// SendMessage sends an HTML message to a chat.
func (s *TelegramService) SendMessage(ctx context.Context, chatID, text string) error {
	if s.botToken == "" {
		s.logger.Debug("bot token not configured")
		return nil
	}

	body, err := json.Marshal(telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}
	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(ctx context.Context, text string) error {
	if s.adminChatID == "" {
		s.logger.Debug("admin chat id not configured")
		return nil
	}
	return s.SendMessage(ctx, s.adminChatID, text)
}

// OrderCreated tells the admins a new order is waiting for approval.
func (s *TelegramService) OrderCreated(ctx context.Context, order *models.Order) error {
	if !s.Enabled() {
		return nil
	}
	return s.SendToAdmin(ctx, NewOrderMessage(order))
}

// OrderStatusChanged reports a status change, including any points credited.
func (s *TelegramService) OrderStatusChanged(ctx context.Context, order *models.Order, previous models.OrderStatus, pointsAwarded int64) error {
	if !s.Enabled() {
		return nil
	}
	return s.SendToAdmin(ctx, StatusChangeMessage(order, previous, pointsAwarded))
}

// NewOrderMessage renders the admin alert for a new order.
func NewOrderMessage(order *models.Order) string {
	var items strings.Builder
	for i := range order.Items {
		item := &order.Items[i]
		fmt.Fprintf(&items, "%d. <b>%s</b>\n   %d x Rp %s = Rp %s\n",
			i+1,
			html.EscapeString(item.ProductName()),
			item.Quantity,
			receipt.FormatRupiah(item.Price),
			receipt.FormatRupiah(item.Subtotal),
		)
	}

	customer, phone := "-", "-"
	if order.User != nil {
		customer = html.EscapeString(order.User.Username)
		phone = html.EscapeString(order.User.Phone)
	}

	message := fmt.Sprintf(`<b>🛒 PESANAN BARU!</b>
<b>📋 ID Pesanan:</b> #%s
<b>👤 Pelanggan:</b> %s
<b>📞 No HP:</b> %s
<b>📦 Pesanan:</b>
%s
<b>💰 Total:</b> Rp %s
<b>📍 Status:</b> %s
━━━━━━━━━━━━━━━━━━`,
		receipt.ReceiptID(order),
		customer,
		phone,
		items.String(),
		receipt.FormatRupiah(order.TotalAmount),
		order.Status.Label(),
	)
	return strings.TrimSpace(message)
}

// StatusChangeMessage renders the admin alert for a status change.
func StatusChangeMessage(order *models.Order, previous models.OrderStatus, pointsAwarded int64) string {
	message := fmt.Sprintf(`<b>🔄 STATUS PESANAN</b>
<b>📋 ID Pesanan:</b> #%s
<b>📍 Status:</b> %s → %s`,
		receipt.ReceiptID(order),
		previous.Label(),
		order.Status.Label(),
	)
	if pointsAwarded > 0 {
		message += fmt.Sprintf("\n<b>⭐ Poin:</b> +%d", pointsAwarded)
	}
	return message
}
