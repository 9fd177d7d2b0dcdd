package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	val "github.com/go-playground/validator/v10"

	"innsync/shared/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
}

// Validate decodes a JSON request body into dest and runs struct validation on it.
func Validate(body io.Reader, dest any) error {
	if err := json.NewDecoder(body).Decode(dest); err != nil {
		if err == io.EOF {
			return failure.BadRequestFromString("request body is required")
		}

		return failure.BadRequestFromString(fmt.Sprintf("invalid request body: %v", err))
	}

	if err := validate.Struct(dest); err != nil {
		validationErrors, ok := err.(val.ValidationErrors)
		if !ok {
			return failure.BadRequest(err)
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, buildMessage(fieldError))
		}

		return failure.BadRequestFromString(strings.Join(messages, "; "))
	}

	return nil
}

// ValidateStruct runs struct validation without decoding, for values built in code.
func ValidateStruct(dest any) error {
	if err := validate.Struct(dest); err != nil {
		return failure.BadRequest(err)
	}

	return nil
}
