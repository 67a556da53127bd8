package adminhttp

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	adminapp "github.com/plotbay/plotbay-backend/internal/application/admin"
	"github.com/plotbay/plotbay-backend/internal/application/admin/cmd"
	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	"github.com/plotbay/plotbay-backend/pkg/httpx"
	"github.com/plotbay/plotbay-backend/pkg/logging"
	"github.com/plotbay/plotbay-backend/pkg/otelx"
	"github.com/plotbay/plotbay-backend/pkg/sanitizex"
)

var (
	tracer = otel.Tracer("plotbay/internal/ports/http/admin")
	logger = otelslog.NewLogger("plotbay/internal/ports/http/admin")
)

// maxRequestBody caps the whole multipart body. The image itself is limited
// to 1 MiB by the validator; the extra headroom covers form fields and
// multipart framing.
const maxRequestBody = admin.MaxImageSize + 512<<10

const imageFormField = "image"

type HTTP struct {
	tracer trace.Tracer
	logger *slog.Logger
	cmd    *adminapp.Command
}

type Args struct {
	Tracer trace.Tracer
	Logger *slog.Logger
	App    *adminapp.App
}

func NewHTTP(args Args) *HTTP {
	if args.Tracer == nil {
		args.Tracer = tracer
	}
	if args.Logger == nil {
		args.Logger = logger
	}

	return &HTTP{
		tracer: args.Tracer,
		logger: args.Logger,
		cmd:    &args.App.CMD,
	}
}

func (h *HTTP) Route(r chi.Router) {
	r.Route("/v1/admins", func(r chi.Router) {
		r.Post("/register", h.Register)
	})
}

type RegisterRequest struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

func (r *RegisterRequest) Sanitized() {
	r.Name = sanitizex.CleanSingleLine(r.Name)
	r.Email = sanitizex.CleanSingleLine(r.Email)
	// mobile is stored canonically, digits only, so "98765 43210" and
	// "9876543210" collide on the uniqueness check
	r.Mobile = sanitizex.StripSpaces(r.Mobile)
	r.Password = strings.TrimSpace(r.Password)
}

func (r *RegisterRequest) SetSpanAttrs(span trace.Span) {
	otelx.SetSpanAttrs(span, map[string]any{
		"email":  logging.RedactEmail(r.Email),
		"mobile": logging.RedactMobile(r.Mobile),
	})
}

// AdminResponse is the outward admin record. The password hash never
// crosses this boundary.
type AdminResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	RegisteredAt time.Time `json:"registered_at"`
}

func AdminToResponse(a *admin.Admin) AdminResponse {
	return AdminResponse{
		ID:           a.ID().String(),
		Name:         a.Name(),
		Email:        a.Email(),
		Mobile:       a.Mobile(),
		ImageURL:     a.ImageURL(),
		IsActive:     a.IsActive(),
		RegisteredAt: a.RegisteredAt(),
	}
}

func (h *HTTP) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegisterAdmin")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	if err := r.ParseMultipartForm(admin.MaxImageSize); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			if err := r.ParseForm(); err != nil {
				httpx.BadRequest(w, r, span, err, "File upload error")
				return
			}
		} else {
			httpx.BadRequest(w, r, span, err, "File upload error")
			return
		}
	}

	req := RegisterRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Mobile:   r.FormValue("mobile"),
		Password: r.FormValue("password"),
	}
	req.Sanitized()
	req.SetSpanAttrs(span)

	c := cmd.Register{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	}

	file, header, err := r.FormFile(imageFormField)
	switch {
	case err == nil:
		defer file.Close()
		c.Image = registerImage(file, header)
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// image is optional, and a non-multipart body cannot carry one
	default:
		httpx.BadRequest(w, r, span, err, "File upload error")
		return
	}

	a, err := h.cmd.Register.Handle(ctx, c)
	if err != nil {
		httpx.HandleError(w, r, span, err, "failed to register admin")
		return
	}

	httpx.Success(w, r, http.StatusOK, "Admin registered successfully", AdminToResponse(a))
}

func registerImage(file multipart.File, header *multipart.FileHeader) *cmd.RegisterImage {
	return &cmd.RegisterImage{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
}
