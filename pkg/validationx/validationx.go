package validationx

import (
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/ARUMANDESU/validation"
)

// RunAll runs every rule against value and collects the messages of all
// failures. Unlike validation.Validate it never stops at the first failed
// rule, so a caller gets the complete list of violations in rule order.
func RunAll(value any, rules ...validation.Rule) []string {
	var msgs []string
	for _, rule := range rules {
		if err := rule.Validate(value); err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return msgs
}

var ErrNotMatchInvalid = validation.NewError("validation_not_match_invalid", "must not match the pattern")

// NotMatch is the inverse of validation.Match: the rule fails when the
// pattern matches. Empty strings are skipped, as validation.Match does.
func NotMatch(re *regexp.Regexp) NotMatchRule {
	return NotMatchRule{re: re, err: ErrNotMatchInvalid}
}

type NotMatchRule struct {
	re  *regexp.Regexp
	err validation.Error
}

func (r NotMatchRule) Validate(value any) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}

	if r.re.MatchString(s) {
		return r.err
	}
	return nil
}

func (r NotMatchRule) Error(message string) NotMatchRule {
	r.err = r.err.SetMessage(message)
	return r
}

var ErrEmailDomainNotAllowed = validation.NewError("validation_email_domain_not_allowed", "email domain not allowed")

// EmailDomainIn checks that the part after '@' is one of the allowed
// domains. Format errors are left to a separate format rule; values without
// exactly one '@' are skipped here.
func EmailDomainIn(domains ...string) EmailDomainRule {
	allowed := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		allowed[strings.ToLower(d)] = struct{}{}
	}
	return EmailDomainRule{allowed: allowed, err: ErrEmailDomainNotAllowed}
}

type EmailDomainRule struct {
	allowed map[string]struct{}
	err     validation.Error
}

func (r EmailDomainRule) Validate(value any) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}

	at := strings.LastIndexByte(s, '@')
	if at < 0 || at == len(s)-1 {
		return nil // malformed, the format rule reports it
	}

	domain := strings.ToLower(s[at+1:])
	if _, ok := r.allowed[domain]; !ok {
		return r.err
	}
	return nil
}

func (r EmailDomainRule) Error(message string) EmailDomainRule {
	r.err = r.err.SetMessage(message)
	return r
}

var ErrFileExtensionNotAllowed = validation.NewError("validation_file_extension_not_allowed", "file extension not allowed")

// FileExtensionIn validates a filename against an allow-list of extensions
// (without the leading dot, case-insensitive).
func FileExtensionIn(exts ...string) FileExtensionRule {
	allowed := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(e)] = struct{}{}
	}
	return FileExtensionRule{allowed: allowed, err: ErrFileExtensionNotAllowed}
}

type FileExtensionRule struct {
	allowed map[string]struct{}
	err     validation.Error
}

func (r FileExtensionRule) Validate(value any) error {
	name, ok := value.(string)
	if !ok || name == "" {
		return nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if _, ok := r.allowed[ext]; !ok {
		return r.err
	}
	return nil
}

func (r FileExtensionRule) Error(message string) FileExtensionRule {
	r.err = r.err.SetMessage(message)
	return r
}

var ErrFileTooLarge = validation.NewError("validation_file_size_too_large", "file is too large")

// MaxFileSize validates an int64 byte size.
func MaxFileSize(limit int64) MaxFileSizeRule {
	return MaxFileSizeRule{limit: limit, err: ErrFileTooLarge}
}

type MaxFileSizeRule struct {
	limit int64
	err   validation.Error
}

func (r MaxFileSizeRule) Validate(value any) error {
	size, ok := value.(int64)
	if !ok {
		return nil
	}

	if size > r.limit {
		return r.err
	}
	return nil
}

func (r MaxFileSizeRule) Error(message string) MaxFileSizeRule {
	r.err = r.err.SetMessage(message)
	return r
}
