// Package mails holds the outbound mail payload passed from event handlers
// to the SMTP adapter.
package mails

type Payload struct {
	To      string
	Subject string
	Body    string
}
