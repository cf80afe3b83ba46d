package payload

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/jellydator/validation"
)

type DecodeValidator struct{}

func (dv DecodeValidator) DecodeAndValidateJSONPayload(r *http.Request, object any) error {
	err := DecodePayload(r, object)
	if err != nil && !errors.Is(err, ErrEmptyBody) {
		return err
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// Messages flattens a decode or validation error into field level messages,
// sorted by field name.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		var internalErr validation.InternalError
		if errors.As(err, &internalErr) {
			return []string{"invalid request payload"}
		}
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, fieldErrs[field].Error()))
	}
	return messages
}
