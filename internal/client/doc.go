// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the hashtrack client runtime.
//
// It turns the merged configuration into the token store, the transport
// adapters and the services the command layer calls, and owns the log file
// for the lifetime of one command.
package client
