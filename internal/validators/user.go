package validators

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Field names accepted by [UserValidator].
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// UserValidator validates registration, profile-update and sign-in input.
type UserValidator struct{}

// NewUserValidator returns a [Validator] for user-related models.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User, models.UserUpdate and models.Credentials,
// by value or by pointer. Fields narrow the checks for models.User; when
// omitted, every field is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = checkName(user.Name)
		case FieldEmail:
			err = checkEmail(user.Email)
		case FieldPassword:
			err = checkPassword(user.Password)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateUserUpdate(update models.UserUpdate) error {
	if update.Name == nil && update.Email == nil && update.Password == nil {
		return ErrNoFieldsToUpdate
	}

	if update.Name != nil {
		if err := checkName(*update.Name); err != nil {
			return err
		}
	}
	if update.Email != nil {
		if err := checkEmail(*update.Email); err != nil {
			return err
		}
	}
	if update.Password != nil {
		if err := checkPassword(*update.Password); err != nil {
			return err
		}
	}

	return nil
}

// validateCredentials only checks presence and shape. Password length is
// not enforced on sign-in so the response does not reveal the policy.
func (v *UserValidator) validateCredentials(credentials models.Credentials) error {
	if err := checkEmail(credentials.Email); err != nil {
		return err
	}
	if credentials.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}
