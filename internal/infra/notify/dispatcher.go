// Package notify delivers generated excuses through an ordered fallback
// chain of channels. Channel failures degrade to a recorded status; the
// dispatcher never returns an error that could abort the pipeline after
// the credit has committed.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
	ChannelNone     = "none"

	ReasonNoPhone = "no_phone"
)

type Message struct {
	Identity        string // recipient email
	PhoneCandidates []string
	Subject         string
	Variants        []string
	Minutes         int
	Balance         int
}

type ChannelOutcome struct {
	Attempted bool
	Delivered bool
	Target    string
	Reason    string
}

type DeliveryReport struct {
	WhatsApp ChannelOutcome
	Email    ChannelOutcome
}

// ChannelUsed names the first channel that actually delivered.
func (r DeliveryReport) ChannelUsed() string {
	if r.WhatsApp.Delivered {
		return ChannelWhatsApp
	}
	if r.Email.Delivered {
		return ChannelEmail
	}
	return ChannelNone
}

// FailureReason aggregates the per-channel reasons for the outcome record.
func (r DeliveryReport) FailureReason() string {
	var parts []string
	if r.WhatsApp.Attempted && !r.WhatsApp.Delivered {
		parts = append(parts, ChannelWhatsApp+":"+r.WhatsApp.Reason)
	}
	if r.Email.Attempted && !r.Email.Delivered {
		parts = append(parts, ChannelEmail+":"+r.Email.Reason)
	}
	return strings.Join(parts, ";")
}

type WhatsAppSender interface {
	Send(ctx context.Context, to, body string) error
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type Dispatcher struct {
	whatsapp WhatsAppSender
	email    EmailSender
	logger   *slog.Logger
}

func NewDispatcher(whatsapp WhatsAppSender, email EmailSender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{whatsapp: whatsapp, email: email, logger: logger}
}

// Dispatch attempts WhatsApp first (candidate by candidate, first success
// wins), then always email, independent of the WhatsApp outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) DeliveryReport {
	report := DeliveryReport{
		WhatsApp: d.sendWhatsApp(ctx, msg),
		Email:    d.sendEmail(ctx, msg),
	}

	d.logger.Info("notification dispatched",
		"identity", msg.Identity,
		"channel", report.ChannelUsed(),
		"whatsapp_reason", report.WhatsApp.Reason,
		"email_reason", report.Email.Reason)

	return report
}

func (d *Dispatcher) sendWhatsApp(ctx context.Context, msg Message) ChannelOutcome {
	candidates := CollectCandidates(msg.PhoneCandidates)
	if len(candidates) == 0 {
		return ChannelOutcome{Attempted: true, Reason: ReasonNoPhone}
	}

	body := whatsAppBody(msg)
	var lastReason string
	for _, to := range candidates {
		if err := d.whatsapp.Send(ctx, to, body); err != nil {
			lastReason = err.Error()
			d.logger.Warn("whatsapp delivery failed", "to", to, "reason", lastReason)
			continue
		}
		return ChannelOutcome{Attempted: true, Delivered: true, Target: to}
	}
	return ChannelOutcome{Attempted: true, Reason: "error: " + lastReason}
}

func (d *Dispatcher) sendEmail(ctx context.Context, msg Message) ChannelOutcome {
	subject := msg.Subject
	if subject == "" {
		subject = "Colpa Mia - i tuoi minuti sono arrivati"
	}

	if err := d.email.Send(ctx, msg.Identity, subject, emailBody(msg)); err != nil {
		d.logger.Warn("email delivery failed", "to", msg.Identity, "reason", err.Error())
		return ChannelOutcome{Attempted: true, Reason: err.Error()}
	}
	return ChannelOutcome{Attempted: true, Delivered: true, Target: msg.Identity}
}

func whatsAppBody(msg Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Accredito confermato: +%d minuti (saldo %d).\n\nLe tue scuse:\n", msg.Minutes, msg.Balance)
	for i, v := range msg.Variants {
		fmt.Fprintf(&b, "%d. %s\n", i+1, v)
	}
	return b.String()
}

func emailBody(msg Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Accredito confermato</h2><p>+%d minuti, saldo attuale %d.</p><ol>", msg.Minutes, msg.Balance)
	for _, v := range msg.Variants {
		fmt.Fprintf(&b, "<li>%s</li>", v)
	}
	b.WriteString("</ol>")
	return b.String()
}
