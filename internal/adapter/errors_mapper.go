package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/hashtrack/models"
	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

// mapStatus classifies a response by status; 2xx yields nil.
func mapStatus(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(status, body)

	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return newAPIError(ErrRejected, status, message)
	case status == http.StatusNotFound:
		return newAPIError(ErrNotFound, status, message)
	case status >= http.StatusInternalServerError:
		return newAPIError(ErrServerError, status, message)
	default:
		return newAPIError(ErrMalformed, status, message)
	}
}

// errorMessage prefers the message of an error envelope, then the raw body,
// then the status text.
func errorMessage(status int, body []byte) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}

func mapTransportError(err error) error {
	return &APIError{Kind: ErrNetwork, Message: err.Error(), Cause: err}
}

func malformed(status int, err error) error {
	return &APIError{Kind: ErrMalformed, Status: status, Message: err.Error(), Cause: err}
}

// mapCloseError classifies a websocket close frame sent by the service.
func mapCloseError(ce *websocket.CloseError) error {
	switch ce.Code {
	case websocket.ClosePolicyViolation:
		return &APIError{Kind: ErrRejected, Message: ce.Text, Cause: ce}
	case websocket.CloseInternalServerErr, websocket.CloseTryAgainLater:
		return &APIError{Kind: ErrServerError, Message: ce.Text, Cause: ce}
	default:
		return mapTransportError(ce)
	}
}

// RecordError reports whether a raw feed record is an in-band error envelope
// such as {"error": {"status": 500, "message": "..."}} and classifies it the
// same way an HTTP response with that status would be. It returns nil for
// ordinary records.
func RecordError(raw []byte) error {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error == nil {
		return nil
	}

	status := envelope.Error.Status
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	apiErr := mapStatus(status, nil).(*APIError)
	if envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}
