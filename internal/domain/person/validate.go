package person

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/alem-hub/university-hub/internal/domain/shared"
)

var validate = validator.New()

// identityRules maps an Identity field to the error reported when its tag
// fails. Fields are checked in declaration order, so the first broken field
// decides the message.
var identityRules = map[string]struct {
	kind    error
	message string
}{
	"Name":    {shared.ErrEmptyValue, "Name cannot be empty."},
	"Age":     {shared.ErrValueOutOfRange, "Invalid age."},
	"ID":      {shared.ErrInvalidID, "Invalid ID provided"},
	"Contact": {shared.ErrInvalidInput, "Invalid contact info"},
}

func validateIdentity(op string, id Identity) error {
	err := validate.Struct(id)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return shared.WrapError(domainName, op, shared.ErrValidation, "identity validation failed", err)
	}

	rule, ok := identityRules[fieldErrs[0].StructField()]
	if !ok {
		return shared.NewDomainError(domainName, op, shared.ErrValidation, fieldErrs[0].Error())
	}
	return shared.NewDomainError(domainName, op, rule.kind, rule.message)
}
