package mailevent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ARUMANDESU/validation"
	"github.com/ARUMANDESU/validation/is"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	"github.com/plotbay/plotbay-backend/internal/domain/valueobject/mails"
	"github.com/plotbay/plotbay-backend/internal/platform/metrics"
	"github.com/plotbay/plotbay-backend/pkg/logging"
)

// sendTimeout caps a single SMTP delivery attempt, so a stuck upstream
// server cannot hold the event handler forever.
const sendTimeout = 15 * time.Second

const welcomeSubject = "Welcome to PlotBay - Your Registration Details"

const welcomeBodyFormat = `Dear %[1]s,

Welcome to PlotBay!

We are delighted to have you as our founding admin, leading the way in shaping PlotBay's future.

Congratulations on successfully registering as our esteemed admin. Your leadership will be pivotal in guiding PlotBay to success.

Feel free to explore our platform at your own pace. As our admin, you have full autonomy over your actions; no assistance is required.

Once again, welcome aboard, %[1]s! We're excited to see the impact you'll make on PlotBay.

Best regards,
The PlotBay Team
`

// WelcomeMail renders the registration welcome mail for the named admin.
func WelcomeMail(name, email string) mails.Payload {
	return mails.Payload{
		To:      email,
		Subject: welcomeSubject,
		Body:    fmt.Sprintf(welcomeBodyFormat, name),
	}
}

type AdminRegisteredHandler struct {
	tracer     trace.Tracer
	logger     *slog.Logger
	mailsender MailSender
}

type AdminRegisteredHandlerArgs struct {
	Tracer     trace.Tracer
	Logger     *slog.Logger
	Mailsender MailSender
}

func NewAdminRegisteredHandler(args AdminRegisteredHandlerArgs) *AdminRegisteredHandler {
	if args.Tracer == nil {
		args.Tracer = tracer
	}
	if args.Logger == nil {
		args.Logger = logger
	}

	return &AdminRegisteredHandler{
		tracer:     args.Tracer,
		logger:     args.Logger,
		mailsender: args.Mailsender,
	}
}

func (h *AdminRegisteredHandler) Handle(ctx context.Context, e *admin.AdminRegistered) error {
	if e == nil {
		return nil
	}

	l := h.logger.With(
		slog.String("event", "AdminRegistered"),
		slog.String("admin.id", e.AdminID.String()),
		slog.String("admin.email", logging.RedactEmail(e.Email)))

	ctx, span := h.tracer.Start(
		ctx,
		"AdminRegisteredHandler.Handle",
		trace.WithNewRoot(),
		trace.WithAttributes(
			attribute.String("admin.id", e.AdminID.String()),
			attribute.String("admin.email", logging.RedactEmail(e.Email))),
	)
	defer span.End()

	err := validation.ValidateStruct(e, validation.Field(&e.Email, validation.Required, is.EmailFormat))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid admin registration data")
		l.ErrorContext(ctx, "invalid admin registration data", "error", err.Error())
		return err
	}

	payload := WelcomeMail(e.Name, e.Email)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := h.mailsender.SendMail(ctx, payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send welcome email")
		l.ErrorContext(ctx, "failed to send welcome email", slog.Any("error", err))
		metrics.MailsFailed.Inc()
		return err
	}

	metrics.MailsSent.Inc()
	return nil
}
