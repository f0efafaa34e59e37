// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfc

import (
	"context"
	"fmt"
	"time"

	"github.com/SAP/go-nwrfc/internal/protocol"
	"github.com/SAP/go-nwrfc/rfc/capi"
	"github.com/SAP/go-nwrfc/rfc/rfctrace"
)

// CallOptions control the unmarshalling of one call. A nil *CallOptions
// uses the connector defaults.
type CallOptions struct {
	// RTrim strips trailing pad blanks from fixed width CHAR and NUM
	// values in the outputs.
	RTrim bool
}

/*
A Function represents the looked up signature of a remote function module
plus the mutable per parameter active flags.

A Function is bound to the connection it was looked up on and is not
designed for concurrent use from multiple goroutines: either guard it with
a lock or obtain one Function per goroutine.
*/
type Function struct {
	conn   *Conn
	desc   *capi.FunctionDescription
	fields []*protocol.ParameterField
}

// Name returns the name of the function module.
func (f *Function) Name() string { return f.desc.Name }

// Description returns the signature of the function module.
func (f *Function) Description() *capi.FunctionDescription { return f.desc }

// ParameterNames returns the parameter names in signature order.
func (f *Function) ParameterNames() []string {
	names := make([]string, len(f.fields))
	for i, field := range f.fields {
		names[i] = field.Name()
	}
	return names
}

func (f *Function) field(name string) *protocol.ParameterField {
	for _, field := range f.fields {
		if field.Name() == name {
			return field
		}
	}
	return nil
}

// SetParameterActive activates or deactivates the named parameter
// (case-sensitive exact match). A deactivated parameter is neither
// required in the inputs nor transferred nor part of the outputs of
// subsequent calls.
func (f *Function) SetParameterActive(name string, active bool) error {
	field := f.field(name)
	if field == nil {
		return newFunctionCallError(f.desc.Name, capi.RcInvalidParameter, keyInvalidParameter, fmt.Errorf("unknown parameter %s", name))
	}
	field.SetActive(active)
	return nil
}

// IsParameterActive returns the active flag of the named parameter.
func (f *Function) IsParameterActive(name string) (bool, error) {
	field := f.field(name)
	if field == nil {
		return false, newFunctionCallError(f.desc.Name, capi.RcInvalidParameter, keyInvalidParameter, fmt.Errorf("unknown parameter %s", name))
	}
	return field.Active(), nil
}

// ActiveParameterCount returns the number of active parameters.
func (f *Function) ActiveParameterCount() int {
	cnt := 0
	for _, field := range f.fields {
		if field.Active() {
			cnt++
		}
	}
	return cnt
}

/*
Call invokes the function module.

inputs maps parameter names to host values and needs to cover exactly the
active IMPORT, CHANGING and TABLES parameters (optional parameters may be
omitted). Supplying a value for an unknown, inactive or EXPORT-only
parameter is an error.

The outputs map contains exactly the active EXPORT, CHANGING and TABLES
parameters. On error no partial outputs are returned.
*/
func (f *Function) Call(ctx context.Context, inputs map[string]any, options *CallOptions) (map[string]any, error) {
	if f.conn.closed.Load() {
		return nil, f.conn.closedError("call")
	}
	rtrim := f.conn.rtrim
	if options != nil {
		rtrim = options.RTrim
	}

	req, err := protocol.MarshalCall(f.desc.Name, f.fields, inputs)
	if err != nil {
		return nil, newFunctionCallError(f.desc.Name, capi.RcSerializationFailure, keySerializationFailure, err)
	}
	var bytesWritten uint64
	for _, buf := range req.In {
		bytesWritten += uint64(len(buf.Data))
	}
	f.conn.metrics.addCounterValue(counterBytesWritten, bytesWritten)

	rfctrace.Tracef("call %s: %d in, %d out requested", f.desc.Name, len(req.In), len(req.Out))

	t := time.Now()
	res, err := f.conn.db.Invoke(ctx, req)
	f.conn.metrics.addDurationHistogramValue(statCall, time.Since(t).Milliseconds())
	if err != nil {
		return nil, newFunctionCallError(f.desc.Name, capi.RcAbapRuntimeFailure, keyCommunicationFailure, err)
	}
	var bytesRead uint64
	for _, buf := range res.Out {
		bytesRead += uint64(len(buf.Data))
	}
	f.conn.metrics.addCounterValue(counterBytesRead, bytesRead)

	outputs, err := protocol.UnmarshalCall(f.fields, res, rtrim)
	if err != nil {
		return nil, newFunctionCallError(f.desc.Name, capi.RcSerializationFailure, keySerializationFailure, err)
	}
	return outputs, nil
}
