// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Package capi defines the native-capability interface of the go-nwrfc
// bindings. A Driver provides access to an implementation of the NetWeaver
// RFC protocol (typically the NW RFC SDK) and is set on a rfc.Connector
// object. The rfc package consumes the capability through the Driver and
// Connection interfaces only: it hands over already marshalled parameter
// buffers and receives marshalled result buffers back.
package capi

import "context"

// The Driver interface needs to be implemented by RFC capability providers.
// A Driver opening connections to an ABAP system can be set in the
// rfc.Connector object.
type Driver interface {
	// Open opens a connection to the system addressed by the connection
	// parameters (ashost, sysnr, client, user, passwd, ...). The parameter
	// key set is owned by the capability; unknown keys are ignored.
	Open(ctx context.Context, parameters map[string]string) (Connection, error)
}

// A Connection represents an open native RFC connection.
//
// A Connection must not be used for two in-flight calls simultaneously.
type Connection interface {
	// Describe looks up the signature of the named remote function module.
	Describe(ctx context.Context, name string) (*FunctionDescription, error)
	// Invoke executes one call. The request carries the marshalled buffers
	// of the in-direction parameters and the names of the out-direction
	// parameters the caller wants returned.
	Invoke(ctx context.Context, req *CallRequest) (*CallResult, error)
	// SetTrace sets the trace level and trace directory of the native
	// capability for this connection.
	SetTrace(level TraceLevel, dir string) error
	// Version reports the capability version as "major.minor.patch".
	Version() string
	// Close releases the native connection handle.
	Close() error
}

// A NamedBuffer is the marshalled wire representation of one parameter.
type NamedBuffer struct {
	Name string
	Data []byte
}

// A CallRequest describes one remote function call.
type CallRequest struct {
	// Name is the name of the remote function module.
	Name string
	// In holds the marshalled buffers of the active IMPORT, CHANGING and
	// TABLES parameters in signature order.
	In []NamedBuffer
	// Out lists the names of the active EXPORT, CHANGING and TABLES
	// parameters to be returned. Parameters not listed are neither
	// requested nor transferred.
	Out []string
}

// A CallResult holds the marshalled result buffers of one call.
type CallResult struct {
	// Out holds exactly the buffers requested by CallRequest.Out.
	Out []NamedBuffer
}
