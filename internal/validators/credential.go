package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-campus-login/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the portal account name of a credential.
	FieldUsername = "username"

	// FieldPassword targets the portal password of a credential.
	FieldPassword = "password"
)

const (
	usernameMinLen = 2
	usernameMaxLen = 100
	passwordMinLen = 4
	passwordMaxLen = 256
)

// usernamePattern is the accepted portal account alphabet: alphanumeric plus
// dots, underscores, at signs and hyphens. Campus accounts look like
// "081bel052" or "j.doe@campus".
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._@-]+$`)

// CredentialValidator implements the [Validator] interface for
// [models.Credential]. It checks the format of both fields before a
// credential is sent to the portal or sealed into the vault; it never
// records either value anywhere.
//
// Validation expects the username as it will be sent, i.e. already trimmed
// of surrounding whitespace by the input layer. The password is taken
// verbatim: inner and outer whitespace are significant, only an
// all-whitespace password is rejected.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a new CredentialValidator
// and returns it as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches validation to the credential checks. Accepts
// [models.Credential] by value or pointer; any other type reports
// [ErrUnsupportedType].
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, credential models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(credential.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(credential.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) < usernameMinLen {
		return ErrUsernameTooShort
	}
	if len(username) > usernameMaxLen {
		return ErrUsernameTooLong
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameInvalidChars
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < passwordMinLen {
		return ErrPasswordTooShort
	}
	if len(password) > passwordMaxLen {
		return ErrPasswordTooLong
	}
	if strings.TrimSpace(password) == "" {
		return ErrPasswordWhitespace
	}

	return nil
}
