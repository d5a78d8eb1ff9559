package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidParams = errors.New("invalid params")
	ErrNotFound      = errors.New("article not found")
	ErrUpstream      = errors.New("annotation failed")
)

// ErrorField describes the validation failure of a single request field.
type ErrorField struct {
	FieldName    string `json:"field_name"`
	ErrorMessage string `json:"error_message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

func getBindingErrorMessage(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "required_without":
		return "this field is required when the alternative is missing"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "numeric":
		return "must contain only numbers"
	case "gte":
		return "must be greater than or equal to the allowed minimum"
	case "lte":
		return "must be less than or equal to the allowed maximum"
	case "gt":
		return "must be greater than the allowed minimum"
	case "wiki_lang":
		return "must be a wikipedia language code"
	default:
		return "invalid input"
	}
}

// ExtractErrorFields converts validator errors into response fields.
// Any other error yields no fields.
func ExtractErrorFields(err error) []ErrorField {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: getBindingErrorMessage(fe.Tag()),
		})
	}

	return fields
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
