package adminhttp_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminapp "github.com/plotbay/plotbay-backend/internal/application/admin"
	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	adminhttp "github.com/plotbay/plotbay-backend/internal/ports/http/admin"
	"github.com/plotbay/plotbay-backend/tests/mocks"
)

type fixture struct {
	repo    *mocks.AdminRepo
	storage *mocks.Storage
	router  chi.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := mocks.NewAdminRepo()
	storage := mocks.NewStorage()
	app := adminapp.NewApp(adminapp.Args{
		Repo:    repo,
		Storage: storage,
		Namer:   admin.NewImageNamer("https://bucket.s3.ap-south-1.amazonaws.com"),
	})

	router := chi.NewRouter()
	adminhttp.NewHTTP(adminhttp.Args{App: app}).Route(router)

	return &fixture{repo: repo, storage: storage, router: router}
}

func (f *fixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func validForm() map[string]string {
	return map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@gmail.com",
		"mobile":   "9876543210",
		"password": "Abcdef1!",
	}
}

func multipartRequest(t *testing.T, fields map[string]string, imageName string, imageBody []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if imageName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+imageName+`"`)
		h.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(imageBody)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/admins/register", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, multipartRequest(t, validForm(), "", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Admin registered successfully", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Jane Doe", data["name"])
	assert.Equal(t, "jane@gmail.com", data["email"])
	assert.Equal(t, true, data["is_active"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "pass_hash")

	f.repo.AssertAdminSaved(t, "jane@gmail.com")
}

func TestRegister_SuccessWithImage(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, multipartRequest(t, validForm(), "avatar.png", []byte("png bytes")))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	imageURL, _ := data["image_url"].(string)
	assert.True(t, strings.HasPrefix(imageURL, "https://bucket.s3.ap-south-1.amazonaws.com/adminImages/adminImage-"))
	assert.True(t, strings.HasSuffix(imageURL, ".png"))
}

func TestRegister_FormURLEncoded(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	form := url.Values{}
	for k, v := range validForm() {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/admins/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := f.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	f.repo.AssertAdminSaved(t, "jane@gmail.com")
}

func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	fields := validForm()
	fields["password"] = "weak"

	rec := f.do(t, multipartRequest(t, fields, "", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "Validation failed", body["message"])

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	passwordErrs, ok := errs["password"].([]any)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(passwordErrs), 4)
}

func TestRegister_AllFieldsMissing(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, multipartRequest(t, map[string]string{}, "", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errs := decode(t, rec)["errors"].(map[string]any)
	for _, field := range []string{"name", "email", "mobile", "password"} {
		assert.Contains(t, errs, field)
	}
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	existing, err := admin.Register(admin.RegisterArgs{
		Name:     "Jane Doe",
		Email:    "jane@gmail.com",
		Mobile:   "1112223334",
		Password: "Abcdef1!",
	})
	require.NoError(t, err)
	f.repo.SeedAdmin(t, existing)

	rec := f.do(t, multipartRequest(t, validForm(), "", nil))
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "failed", body["status"])

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	emailErrs, ok := errs["email"].([]any)
	require.True(t, ok)
	assert.Equal(t, "Email already exists", emailErrs[0])
	assert.NotContains(t, errs, "mobile")
}

func TestRegister_UploadFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.storage.FailUploadWith(assert.AnError)

	rec := f.do(t, multipartRequest(t, validForm(), "avatar.png", []byte("png bytes")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "Internal server error", body["message"])
	f.repo.AssertAdminNotSaved(t, "jane@gmail.com")
}

func TestRegister_MalformedMultipart(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admins/register", io.NopCloser(strings.NewReader("not multipart")))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=broken")

	rec := f.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File upload error", decode(t, rec)["message"])
}

func TestRegister_SanitizesInput(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	fields := validForm()
	fields["name"] = "  Jane   Doe "
	fields["mobile"] = "98765 43210"

	rec := f.do(t, multipartRequest(t, fields, "", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	saved := f.repo.AssertAdminSaved(t, "jane@gmail.com")
	assert.Equal(t, "Jane Doe", saved.Name())
	assert.Equal(t, "9876543210", saved.Mobile())
}
