// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// hashtrack command layer.
//
// All Msg* constants are human-readable message strings printed to the user
// when a command fails. Keeping them in one place ensures consistent wording
// across commands.
package app

import (
	"errors"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/internal/service"
	"github.com/MKhiriev/hashtrack/internal/store"
)

const (
	// MsgLoginAgain is shown when no token is stored or the service refused
	// the stored one.
	MsgLoginAgain = "please log in again (hashtrack login)"

	// MsgNetwork is shown when the service could not be reached or the
	// connection broke mid-request.
	MsgNetwork = "cannot reach the hashtrack service"

	// MsgNotFound is shown when the addressed track or resource does not
	// exist.
	MsgNotFound = "not found"

	// MsgServerError is shown when the service failed to handle the request.
	MsgServerError = "the hashtrack service failed to handle the request"

	// MsgMalformed is shown when the service answered with something the
	// client does not understand.
	MsgMalformed = "unexpected response from the hashtrack service"

	// MsgStorageIO is shown when the token file cannot be written or removed.
	MsgStorageIO = "cannot access the session token file"

	// MsgInvalidHashtag is shown when a hashtag is empty after trimming.
	MsgInvalidHashtag = "hashtag must not be empty"

	// MsgInvalidCredentials is shown when login is attempted without an
	// email or password.
	MsgInvalidCredentials = "email and password are required"
)

// UserMessage renders err as the one-line message printed by the command
// layer. Errors outside the known taxonomy are printed as is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthenticated), errors.Is(err, adapter.ErrRejected):
		return MsgLoginAgain
	case errors.Is(err, adapter.ErrNetwork):
		return withDetail(MsgNetwork, err)
	case errors.Is(err, adapter.ErrNotFound):
		return withDetail(MsgNotFound, err)
	case errors.Is(err, adapter.ErrServerError):
		return withDetail(MsgServerError, err)
	case errors.Is(err, adapter.ErrMalformed):
		return withDetail(MsgMalformed, err)
	case errors.Is(err, store.ErrStorageIO):
		return MsgStorageIO
	case errors.Is(err, service.ErrInvalidHashtag):
		return MsgInvalidHashtag
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	default:
		return err.Error()
	}
}

// withDetail appends the service or transport message, if any.
func withDetail(msg string, err error) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return msg + ": " + apiErr.Message
	}
	return msg
}
