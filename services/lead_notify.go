package services

import (
	"fmt"
	"net/mail"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/mailer"
)

// NotifyLead relays a freshly captured marketing lead to the sales inbox
// via the app's configured mailer. Failures are the caller's to log; the
// lead record itself is already saved by then.
func NotifyLead(app *pocketbase.PocketBase, lead *core.Record) error {
	meta := app.Settings().Meta
	if meta.SenderAddress == "" {
		return fmt.Errorf("notify lead: no sender address configured")
	}

	message := &mailer.Message{
		From: mail.Address{
			Name:    meta.SenderName,
			Address: meta.SenderAddress,
		},
		To:      []mail.Address{{Address: meta.SenderAddress}},
		Subject: fmt.Sprintf("New lead: %s", lead.GetString("name")),
		Text: fmt.Sprintf(
			"Name: %s\nEmail: %s\nPhone: %s\nSource: %s\n\n%s\n",
			lead.GetString("name"),
			lead.GetString("email"),
			lead.GetString("phone"),
			lead.GetString("source"),
			lead.GetString("message"),
		),
	}

	if err := app.NewMailClient().Send(message); err != nil {
		return fmt.Errorf("notify lead: %w", err)
	}
	return nil
}
