// Package mail renders and delivers the pipeline's transactional email:
// internal lead alerts, prospect confirmations, and application PDF
// deliveries. Delivery goes through Resend; rendering is plain HTML built in
// templates.go and confirmation.go.
//
// The outbound path is wrapped in a token-bucket limiter so a burst of form
// traffic cannot flood the provider API. There are no retries anywhere in
// this package: a failed send is reported to the caller, never re-attempted.
package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/resend/resend-go/v2"
	"golang.org/x/time/rate"
)

// Attachment is a file attached to an outbound message. Content is base64,
// the encoding attachment producers emit; transports re-encode to whatever
// their provider expects.
type Attachment struct {
	Filename    string
	Content     string
	ContentType string
}

// Message is one outbound email.
type Message struct {
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender delivers a single message. Implementations must honor ctx and
// return an error when the provider rejects or fails the send; they must not
// retry internally.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ResendSender delivers messages through the Resend transactional email API.
// It is safe for concurrent use.
type ResendSender struct {
	client  *resend.Client
	from    string
	limiter *rate.Limiter
}

// NewResendSender constructs a sender bound to the given API key and From
// address. sendRPS/sendBurst bound the outbound send rate toward the
// provider; burst values <= 0 are coerced to 1.
func NewResendSender(apiKey, from string, sendRPS float64, sendBurst int) *ResendSender {
	if sendBurst <= 0 {
		sendBurst = 1
	}
	return &ResendSender{
		client:  resend.NewClient(apiKey),
		from:    from,
		limiter: rate.NewLimiter(rate.Limit(sendRPS), sendBurst),
	}
}

// Send delivers msg through Resend. It blocks on the outbound limiter first,
// so callers experience backpressure instead of provider-side 429s.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		raw, err := base64.StdEncoding.DecodeString(a.Content)
		if err != nil {
			return fmt.Errorf("decode attachment %q: %w", a.Filename, err)
		}
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     raw,
			ContentType: a.ContentType,
		})
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	return err
}
