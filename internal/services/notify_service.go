package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
	"github.com/drilathedev/virtual-view-estate/internal/utils/telegram"
)

// NotifyService relays contact-form and property-inquiry submissions to the
// office Telegram chat, with an optional email copy via SendGrid. The bot
// credential never leaves this process.
type NotifyService interface {
	SendContactMessage(ctx context.Context, req dtos.ContactRequest) error
	SendPropertyInquiry(ctx context.Context, req dtos.InquiryRequest, property *models.Property) error
}

type notifyService struct {
	cfg            *config.Config
	tg             *telegram.Client
	sendgridClient *sendgrid.Client
}

func NewNotifyService(cfg *config.Config, tg *telegram.Client) NotifyService {
	s := &notifyService{cfg: cfg, tg: tg}
	if cfg.SendgridAPIKey != "" {
		s.sendgridClient = sendgrid.NewSendClient(cfg.SendgridAPIKey)
	}
	return s
}

func (s *notifyService) SendContactMessage(ctx context.Context, req dtos.ContactRequest) error {
	text := FormatContactMessage(req, time.Now())
	subject := fmt.Sprintf("[Contact] %s", req.Subject)
	return s.deliver(ctx, subject, text)
}

func (s *notifyService) SendPropertyInquiry(ctx context.Context, req dtos.InquiryRequest, property *models.Property) error {
	text := FormatPropertyInquiry(req, property, time.Now())
	subject := "[Inquiry] " + property.Title
	return s.deliver(ctx, subject, text)
}

func (s *notifyService) deliver(ctx context.Context, subject, htmlText string) error {
	if s.cfg.LDFlag_TelegramDisabled || !s.tg.Configured() {
		utils.Logger.Warn("Telegram bot not configured; message not relayed")
		return utils.ErrNotifierDisabled
	}

	if _, err := s.tg.SendMessage(ctx, htmlText); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrExternalServiceFailure, err)
	}

	// Email copy is best-effort; the inquiry already reached the chat.
	s.sendEmailCopy(subject, htmlText)
	return nil
}

func (s *notifyService) sendEmailCopy(subject, htmlText string) {
	if s.sendgridClient == nil || s.cfg.NotifyEmailTo == "" || s.cfg.NotifyEmailFrom == "" {
		return
	}
	from := mail.NewEmail("Virtual View Estate", s.cfg.NotifyEmailFrom)
	to := mail.NewEmail("", s.cfg.NotifyEmailTo)
	plain := stripTags(htmlText)
	msg := mail.NewSingleEmail(from, subject, to, plain, "<pre>"+htmlText+"</pre>")
	if _, err := s.sendgridClient.Send(msg); err != nil {
		utils.Logger.WithError(err).Warn("inquiry email copy failed")
	}
}

/* ------------------------------------------------------------------
   Message templates
------------------------------------------------------------------ */

const messageTimeLayout = "01/02/2006, 03:04 PM"

// FormatContactMessage renders the generic contact-form template as
// Telegram-flavoured HTML.
func FormatContactMessage(req dtos.ContactRequest, at time.Time) string {
	var b strings.Builder
	b.WriteString("📧 <b>NEW CONTACT MESSAGE - VIRTUAL VIEW ESTATE</b> 📧\n\n")
	fmt.Fprintf(&b, "📅 <b>Date:</b> %s\n\n", at.Format(messageTimeLayout))
	b.WriteString("👤 <b>SENDER INFORMATION:</b>\n")
	fmt.Fprintf(&b, "• <b>Name:</b> %s\n", req.Name)
	fmt.Fprintf(&b, "• <b>Email:</b> %s\n", req.Email)
	fmt.Fprintf(&b, "• <b>Phone:</b> %s\n\n", req.Phone)
	fmt.Fprintf(&b, "📝 <b>Subject:</b> %s\n\n", req.Subject)
	b.WriteString("💬 <b>MESSAGE:</b>\n")
	b.WriteString(req.Message)
	b.WriteString("\n\n━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("⚡️ Please respond to this inquiry as soon as possible!")
	return b.String()
}

// FormatPropertyInquiry renders the property-inquiry template; the property
// reference lines are included only when present.
func FormatPropertyInquiry(req dtos.InquiryRequest, property *models.Property, at time.Time) string {
	var b strings.Builder
	b.WriteString("🏠 <b>NEW PROPERTY INQUIRY - VIRTUAL VIEW ESTATE</b> 🏠\n\n")
	fmt.Fprintf(&b, "📅 <b>Date:</b> %s\n\n", at.Format(messageTimeLayout))
	b.WriteString("👤 <b>CUSTOMER INFORMATION:</b>\n")
	fmt.Fprintf(&b, "• <b>Name:</b> %s\n", req.Name)
	fmt.Fprintf(&b, "• <b>Email:</b> %s\n", req.Email)
	fmt.Fprintf(&b, "• <b>Phone:</b> %s\n", req.Phone)
	if req.Interest != "" {
		fmt.Fprintf(&b, "• <b>Interest:</b> %s\n", req.Interest)
	}
	b.WriteString("\n🏘️ <b>PROPERTY:</b>\n")
	if property != nil {
		if property.Title != "" {
			fmt.Fprintf(&b, "• <b>Title:</b> %s\n", property.Title)
		}
		fmt.Fprintf(&b, "• <b>ID:</b> %s\n", property.ID)
	}
	b.WriteString("\n💬 <b>INQUIRY MESSAGE:</b>\n")
	b.WriteString(req.Message)
	b.WriteString("\n\n━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString("⚡️ Please follow up with this inquiry as soon as possible!")
	return b.String()
}

func stripTags(s string) string {
	r := strings.NewReplacer("<b>", "", "</b>", "", "<pre>", "", "</pre>", "")
	return r.Replace(s)
}
