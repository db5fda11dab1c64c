package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/dtos"
	"github.com/drilathedev/virtual-view-estate/internal/models"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
	"github.com/drilathedev/virtual-view-estate/internal/utils/telegram"
)

var testTime = time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

func TestFormatContactMessage(t *testing.T) {
	text := FormatContactMessage(dtos.ContactRequest{
		Name:    "Arta Krasniqi",
		Email:   "arta@example.com",
		Phone:   "+383 44 123 456",
		Subject: "Vizitë prone",
		Message: "A mund ta vizitoj banesën të shtunën?",
	}, testTime)

	require.Contains(t, text, "NEW CONTACT MESSAGE - VIRTUAL VIEW ESTATE")
	require.Contains(t, text, "<b>Name:</b> Arta Krasniqi")
	require.Contains(t, text, "<b>Email:</b> arta@example.com")
	require.Contains(t, text, "<b>Subject:</b> Vizitë prone")
	require.Contains(t, text, "A mund ta vizitoj banesën të shtunën?")
	require.Contains(t, text, "08/28/2026, 02:30 PM")
}

func TestFormatPropertyInquiry(t *testing.T) {
	id := uuid.New()
	property := &models.Property{ID: id, Title: "Vilë Luksoze me Pishinë"}

	text := FormatPropertyInquiry(dtos.InquiryRequest{
		Name:     "Blerim Gashi",
		Email:    "blerim@example.com",
		Phone:    "+383 49 987 654",
		Interest: "Blerje",
		Message:  "Jam i interesuar.",
	}, property, testTime)

	require.Contains(t, text, "NEW PROPERTY INQUIRY - VIRTUAL VIEW ESTATE")
	require.Contains(t, text, "<b>Interest:</b> Blerje")
	require.Contains(t, text, "<b>Title:</b> Vilë Luksoze me Pishinë")
	require.Contains(t, text, "<b>ID:</b> "+id.String())
}

func TestFormatPropertyInquiryOptionalLinesOmitted(t *testing.T) {
	text := FormatPropertyInquiry(dtos.InquiryRequest{
		Name:    "Blerim Gashi",
		Email:   "blerim@example.com",
		Phone:   "+383 49 987 654",
		Message: "Jam i interesuar.",
	}, nil, testTime)

	require.NotContains(t, text, "<b>Interest:</b>")
	require.NotContains(t, text, "<b>Title:</b>")
}

func TestSendContactMessageUnconfiguredBot(t *testing.T) {
	cfg := &config.Config{}
	svc := NewNotifyService(cfg, telegram.NewClient("", "", ""))

	err := svc.SendContactMessage(context.Background(), dtos.ContactRequest{
		Name: "n", Email: "e@example.com", Phone: "p", Subject: "s", Message: "m",
	})
	require.ErrorIs(t, err, utils.ErrNotifierDisabled)
}

func TestSendContactMessageDisabledByFlag(t *testing.T) {
	cfg := &config.Config{LDFlag_TelegramDisabled: true}
	svc := NewNotifyService(cfg, telegram.NewClient("token", "chat", ""))

	err := svc.SendContactMessage(context.Background(), dtos.ContactRequest{
		Name: "n", Email: "e@example.com", Phone: "p", Subject: "s", Message: "m",
	})
	require.ErrorIs(t, err, utils.ErrNotifierDisabled)
}
