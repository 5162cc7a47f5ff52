package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// TelegramService notifies the shop owner about storefront activity.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Debug().Msg("telegram bot token not configured, skipping notification")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("failed to send telegram message")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("telegram returned unexpected status")
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Debug().Msg("telegram admin chat not configured, skipping notification")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// LeadNotification carries a captured lead for the owner's chat.
type LeadNotification struct {
	Name     string
	Phone    string
	Size     string
	Budget   string
	Occasion string
	Style    string
	Notes    string
}

// NotifyLead tells the owner a visitor asked for personal recommendations.
func (s *TelegramService) NotifyLead(lead LeadNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	var details strings.Builder
	details.WriteString(fmt.Sprintf("<b>👤 Name:</b> %s\n", lead.Name))
	if lead.Phone != "" {
		details.WriteString(fmt.Sprintf("<b>📱 Phone:</b> %s\n", lead.Phone))
	}
	if lead.Size != "" {
		details.WriteString(fmt.Sprintf("<b>📏 Size:</b> %s\n", lead.Size))
	}
	if lead.Budget != "" {
		details.WriteString(fmt.Sprintf("<b>💰 Budget:</b> %s\n", lead.Budget))
	}
	if lead.Occasion != "" {
		details.WriteString(fmt.Sprintf("<b>🎉 Occasion:</b> %s\n", lead.Occasion))
	}
	if lead.Style != "" {
		details.WriteString(fmt.Sprintf("<b>✨ Style:</b> %s\n", lead.Style))
	}
	if lead.Notes != "" {
		details.WriteString(fmt.Sprintf("<b>📝 Notes:</b> %s\n", lead.Notes))
	}

	message := fmt.Sprintf(`<b>💌 NEW LEAD!</b>
%s━━━━━━━━━━━━━━━━━━`, details.String())

	return s.SendToAdmin(strings.TrimSpace(message))
}

// InquiryNotification carries a product inquiry for the owner's chat.
type InquiryNotification struct {
	Kind         string
	ProductCode  string
	ProductTitle string
	PriceRange   string
}

// NotifyInquiry tells the owner a visitor opened a WhatsApp inquiry.
func (s *TelegramService) NotifyInquiry(inq InquiryNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>🛍️ %s INQUIRY</b>\n", strings.ToUpper(inq.Kind)))
	if inq.ProductTitle != "" {
		b.WriteString(fmt.Sprintf("<b>📦 Product:</b> %s\n", inq.ProductTitle))
	}
	if inq.ProductCode != "" {
		b.WriteString(fmt.Sprintf("<b>🔢 Code:</b> %s\n", inq.ProductCode))
	}
	if inq.PriceRange != "" {
		b.WriteString(fmt.Sprintf("<b>💰 Price Range:</b> %s\n", inq.PriceRange))
	}
	b.WriteString("━━━━━━━━━━━━━━━━━━")

	return s.SendToAdmin(b.String())
}
