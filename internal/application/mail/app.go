package mail

import (
	mailevent "github.com/plotbay/plotbay-backend/internal/application/mail/event"
)

type App struct {
	AdminRegistered *mailevent.AdminRegisteredHandler
}

type Args struct {
	Mailsender mailevent.MailSender
}

func NewApp(args Args) *App {
	return &App{
		AdminRegistered: mailevent.NewAdminRegisteredHandler(mailevent.AdminRegisteredHandlerArgs{
			Mailsender: args.Mailsender,
		}),
	}
}
