package admin

import (
	"regexp"
	"strings"

	"github.com/ARUMANDESU/validation"

	"github.com/plotbay/plotbay-backend/pkg/sanitizex"
	"github.com/plotbay/plotbay-backend/pkg/validationx"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldMobile   = "mobile"
	FieldPassword = "password"
	FieldImage    = "image"
)

const (
	MaxNameLen     = 50
	MinPasswordLen = 8
	MaxPasswordLen = 12
	MaxImageSize   = 1 << 20 // 1 MiB
	MobileDigits   = 10
)

// AllowedEmailDomains is the closed set of mailbox providers admins may
// register with. Comparison is case-insensitive on the part after the
// last '@'.
var AllowedEmailDomains = []string{
	"gmail.com",
	"outlook.com",
	"yahoo.com",
	"aol.com",
	"icloud.com",
	"protonmail.com",
	"zoho.com",
	"gmx.com",
	"yandex.com",
	"mail.com",
}

var AllowedImageExtensions = []string{"jpg", "jpeg", "png", "webp", "heif"}

var (
	digitRe         = regexp.MustCompile(`\d`)
	nonAlphaSpaceRe = regexp.MustCompile(`[^a-zA-Z\s]`)
	emailFormatRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	exactTenDigits  = regexp.MustCompile(`^\d{10}$`)
	digitsOnlyRe    = regexp.MustCompile(`^\d+$`)
	lowercaseRe     = regexp.MustCompile(`[a-z]`)
	uppercaseRe     = regexp.MustCompile(`[A-Z]`)
	specialCharRe   = regexp.MustCompile(`[\W_]`)
)

var nameRules = []validation.Rule{
	validation.Length(1, MaxNameLen).Error("Name should not exceed 50 characters."),
	validationx.NotMatch(digitRe).Error("Name should not contain numbers."),
	validationx.NotMatch(nonAlphaSpaceRe).Error("Name should not contain special characters."),
}

var emailFormatRule = validation.Match(emailFormatRe).Error("Invalid email format.")

var emailDomainRule = validationx.EmailDomainIn(AllowedEmailDomains...).Error("Email domain not allowed.")

var mobileRules = []validation.Rule{
	validation.Match(exactTenDigits).Error("Mobile number should contain exactly 10 digits."),
	validation.Match(digitsOnlyRe).Error("Mobile number should only contain digits (0-9)."),
}

var passwordRules = []validation.Rule{
	validation.Match(lowercaseRe).Error("Include at least one lowercase letter."),
	validation.Match(uppercaseRe).Error("Include at least one uppercase letter."),
	validation.Match(digitRe).Error("Include at least one digit."),
	validation.Match(specialCharRe).Error("Include at least one special character."),
	validation.Length(MinPasswordLen, MaxPasswordLen).Error("Should be 8 to 12 characters long."),
}

var (
	imageSizeRule = validationx.MaxFileSize(MaxImageSize).
			Error("File size should be less than or equal to 1 MB.")
	imageExtRule = validationx.FileExtensionIn(AllowedImageExtensions...).
			Error("File extension not allowed. Allowed extensions are: jpg, jpeg, png, webp, heif.")
)

// ValidateName reports every name policy violation. A missing or
// whitespace-only name short-circuits to the single required message.
func ValidateName(name string) []string {
	if err := validation.Validate(strings.TrimSpace(name), validation.Required.Error("Name is required.")); err != nil {
		return []string{err.Error()}
	}
	return validationx.RunAll(name, nameRules...)
}

// ValidateEmail checks shape before membership: a malformed address is
// reported alone, without a domain verdict on garbage input.
func ValidateEmail(email string) []string {
	if err := validation.Validate(email, validation.Required.Error("Email is required.")); err != nil {
		return []string{err.Error()}
	}
	if err := validation.Validate(email, emailFormatRule); err != nil {
		return []string{err.Error()}
	}
	return validationx.RunAll(email, emailDomainRule)
}

// ValidateMobile strips whitespace before checking, so "98765 43210"
// passes the exactly-ten-digits rule.
func ValidateMobile(mobile string) []string {
	cleaned := sanitizex.StripSpaces(mobile)
	if err := validation.Validate(cleaned, validation.Required.Error("Mobile number is required.")); err != nil {
		return []string{err.Error()}
	}
	return validationx.RunAll(cleaned, mobileRules...)
}

// ValidatePassword reports every unmet composition rule at once, so the
// client can render the full checklist in a single round trip.
func ValidatePassword(password string) []string {
	if err := validation.Validate(password, validation.Required.Error("Password is required.")); err != nil {
		return []string{err.Error()}
	}
	return validationx.RunAll(password, passwordRules...)
}

func ValidateImage(filename string, size int64) []string {
	var msgs []string
	if err := imageSizeRule.Validate(size); err != nil {
		msgs = append(msgs, err.Error())
	}
	if err := imageExtRule.Validate(filename); err != nil {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// ImageFile describes an uploaded image by metadata only; the content is
// streamed separately.
type ImageFile struct {
	Filename    string
	ContentType string
	Size        int64
}

type RegistrationInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
	Image    *ImageFile // nil when the form carried no image
}

type ValidationResult struct {
	Errors map[string][]string
}

func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateRegistration runs every field validator and collects all failures,
// keyed by field. The image is validated only when one was attached.
func ValidateRegistration(in RegistrationInput) ValidationResult {
	errs := make(map[string][]string)
	if msgs := ValidateName(in.Name); len(msgs) > 0 {
		errs[FieldName] = msgs
	}
	if msgs := ValidateEmail(in.Email); len(msgs) > 0 {
		errs[FieldEmail] = msgs
	}
	if msgs := ValidateMobile(in.Mobile); len(msgs) > 0 {
		errs[FieldMobile] = msgs
	}
	if msgs := ValidatePassword(in.Password); len(msgs) > 0 {
		errs[FieldPassword] = msgs
	}
	if in.Image != nil {
		if msgs := ValidateImage(in.Image.Filename, in.Image.Size); len(msgs) > 0 {
			errs[FieldImage] = msgs
		}
	}
	if len(errs) == 0 {
		return ValidationResult{}
	}
	return ValidationResult{Errors: errs}
}
