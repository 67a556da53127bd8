package cmd

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	"github.com/plotbay/plotbay-backend/internal/platform/metrics"
	"github.com/plotbay/plotbay-backend/pkg/errorx"
	"github.com/plotbay/plotbay-backend/pkg/logging"
)

var (
	tracer = otel.Tracer("plotbay/application/admin/cmd")
	logger = otelslog.NewLogger("plotbay/application/admin/cmd")
)

type RegisterImage struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type Register struct {
	Name     string
	Email    string
	Mobile   string
	Password string
	Image    *RegisterImage
}

type RegisterHandler struct {
	tracer  trace.Tracer
	logger  *slog.Logger
	repo    AdminRepo
	storage ImageStorage
	namer   ImageNamer
}

type RegisterHandlerArgs struct {
	Tracer  trace.Tracer
	Logger  *slog.Logger
	Repo    AdminRepo
	Storage ImageStorage
	Namer   ImageNamer
}

func NewRegisterHandler(args RegisterHandlerArgs) *RegisterHandler {
	if args.Tracer == nil {
		args.Tracer = tracer
	}
	if args.Logger == nil {
		args.Logger = logger
	}

	return &RegisterHandler{
		tracer:  args.Tracer,
		logger:  args.Logger,
		repo:    args.Repo,
		storage: args.Storage,
		namer:   args.Namer,
	}
}

// Handle validates the registration, uploads the image when one was
// attached, and persists the admin. A persistence failure after a
// successful upload triggers a best-effort delete of the uploaded object;
// a failed delete is logged and never surfaces to the caller.
func (h *RegisterHandler) Handle(ctx context.Context, cmd Register) (*admin.Admin, error) {
	ctx, span := h.tracer.Start(ctx, "RegisterHandler.Handle")
	defer span.End()

	redactedEmail := logging.RedactEmail(cmd.Email)
	span.SetAttributes(
		attribute.String("admin.email", redactedEmail),
		attribute.String("admin.mobile", logging.RedactMobile(cmd.Mobile)),
		attribute.Bool("admin.image_attached", cmd.Image != nil),
	)

	h.logger.DebugContext(ctx, "starting admin registration", slog.String("admin.email", redactedEmail))

	input := admin.RegistrationInput{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Mobile:   cmd.Mobile,
		Password: cmd.Password,
	}
	if cmd.Image != nil {
		input.Image = &admin.ImageFile{
			Filename:    cmd.Image.Filename,
			ContentType: cmd.Image.ContentType,
			Size:        cmd.Image.Size,
		}
	}

	if result := admin.ValidateRegistration(input); !result.IsValid() {
		span.SetStatus(codes.Error, "registration validation failed")
		metrics.AdminRegistrations.WithLabelValues(metrics.OutcomeValidationFailed).Inc()
		return nil, errorx.NewValidationFailed(result.Errors)
	}

	var imageKey, imageURL string
	if cmd.Image != nil {
		imageKey = h.namer.Key(cmd.Image.Filename)
		if err := h.storage.UploadFile(ctx, imageKey, cmd.Image.Content, cmd.Image.ContentType); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to upload admin image")
			metrics.AdminRegistrations.WithLabelValues(metrics.OutcomeUploadFailed).Inc()
			return nil, errorx.NewUploadFailed(err)
		}
		imageURL = h.namer.URL(imageKey)
		span.AddEvent("admin image uploaded", trace.WithAttributes(attribute.String("image.key", imageKey)))
	}

	a, err := admin.Register(admin.RegisterArgs{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Mobile:   cmd.Mobile,
		Password: cmd.Password,
		ImageURL: imageURL,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create admin")
		h.compensateUpload(ctx, imageKey)
		metrics.AdminRegistrations.WithLabelValues(metrics.OutcomeInternalError).Inc()
		return nil, errorx.NewInternal("failed to create admin").WithCause(err)
	}

	if err := h.repo.SaveAdmin(ctx, a); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to save admin")
		h.compensateUpload(ctx, imageKey)
		if errorx.IsConflict(err) {
			metrics.AdminRegistrations.WithLabelValues(metrics.OutcomeConflict).Inc()
		} else {
			metrics.AdminRegistrations.WithLabelValues(metrics.OutcomeInternalError).Inc()
		}
		return nil, err
	}

	span.AddEvent("admin registered", trace.WithAttributes(attribute.String("admin.id", a.ID().String())))
	metrics.AdminRegistrations.WithLabelValues(metrics.OutcomeSuccess).Inc()

	return a, nil
}

func (h *RegisterHandler) compensateUpload(ctx context.Context, imageKey string) {
	if imageKey == "" {
		return
	}
	if err := h.storage.DeleteFile(ctx, imageKey); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete uploaded admin image",
			slog.String("image.key", imageKey),
			slog.Any("error", err))
	}
}
