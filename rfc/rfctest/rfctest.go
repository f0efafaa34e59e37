// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Package rfctest provides an in-memory capi.Driver implementation for
// tests and benchmarks. Function modules are registered with their
// signature and a handler operating on host values; the driver decodes and
// encodes the wire buffers with the same marshalling rules as the
// bindings, so calls round-trip through the full encode / decode path.
package rfctest

import (
	"context"
	"fmt"
	"sync"

	"github.com/SAP/go-nwrfc/internal/protocol"
	"github.com/SAP/go-nwrfc/rfc/capi"
)

// connection parameters required by Open.
var requiredParameters = []string{"ashost", "sysnr", "client", "user", "passwd"}

// A HandlerFunc implements the server side of a function module. It
// receives the decoded input parameter values and returns the output
// parameter values. Returning a *capi.Error reports a native failure.
type HandlerFunc func(inputs map[string]any) (map[string]any, error)

// A FunctionModule is a registered remote function module.
type FunctionModule struct {
	Description *capi.FunctionDescription
	Handler     HandlerFunc
}

// A Driver is an in-memory capi.Driver. The zero value is not usable, use
// NewDriver.
type Driver struct {
	mu      sync.RWMutex
	modules map[string]*FunctionModule
	version string
}

var _ capi.Driver = (*Driver)(nil)

// NewDriver returns a new Driver instance with the standard test function
// modules (RFC_PING, STFC_CONNECTION, STFC_CHANGING, STFC_STRUCTURE)
// registered.
func NewDriver() *Driver {
	d := &Driver{modules: map[string]*FunctionModule{}, version: "7.50.12"}
	registerStdModules(d)
	return d
}

// Register registers a function module. A module registered under an
// already known name replaces the previous one.
func (d *Driver) Register(desc *capi.FunctionDescription, handler HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.modules[desc.Name] = &FunctionModule{Description: desc, Handler: handler}
}

func (d *Driver) module(name string) *FunctionModule {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modules[name]
}

// Open implements the capi.Driver interface.
func (d *Driver) Open(ctx context.Context, parameters map[string]string) (capi.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, name := range requiredParameters {
		if parameters[name] == "" {
			return nil, &capi.Error{
				Code:    capi.RcInvalidParameter,
				Key:     "RFC_INVALID_PARAMETER",
				Message: fmt.Sprintf("missing connection parameter %s", name),
			}
		}
	}
	return &conn{driver: d}, nil
}

type conn struct {
	driver     *Driver
	closed     bool
	traceLevel capi.TraceLevel
	traceDir   string
}

func (c *conn) checkOpen() error {
	if c.closed {
		return &capi.Error{Code: capi.RcInvalidHandle, Key: "RFC_INVALID_HANDLE", Message: "connection handle is closed"}
	}
	return nil
}

// Describe implements the capi.Connection interface.
func (c *conn) Describe(ctx context.Context, name string) (*capi.FunctionDescription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	module := c.driver.module(name)
	if module == nil {
		return nil, &capi.Error{
			Code:          capi.RcNotFound,
			Key:           "FU_NOT_FOUND",
			Message:       fmt.Sprintf("function module %s not found", name),
			AbapMsgClass:  "FL",
			AbapMsgType:   "E",
			AbapMsgNumber: "046",
			AbapMsgV1:     name,
		}
	}
	return module.Description, nil
}

// Invoke implements the capi.Connection interface.
func (c *conn) Invoke(ctx context.Context, req *capi.CallRequest) (*capi.CallResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	module := c.driver.module(req.Name)
	if module == nil {
		return nil, &capi.Error{Code: capi.RcNotFound, Key: "FU_NOT_FOUND", Message: fmt.Sprintf("function module %s not found", req.Name)}
	}
	desc := module.Description

	inputs := make(map[string]any, len(req.In))
	for _, buf := range req.In {
		p := desc.Parameter(buf.Name)
		if p == nil {
			return nil, &capi.Error{Code: capi.RcInvalidParameter, Key: "RFC_INVALID_PARAMETER", Message: fmt.Sprintf("unknown parameter %s", buf.Name)}
		}
		v, err := protocol.DecodeParameter(&p.FieldDescription, buf.Data, false)
		if err != nil {
			return nil, &capi.Error{Code: capi.RcSerializationFailure, Key: "RFC_SERIALIZATION_FAILURE", Message: err.Error()}
		}
		inputs[buf.Name] = v
	}

	outputs, err := module.Handler(inputs)
	if err != nil {
		if capiErr, ok := err.(*capi.Error); ok {
			return nil, capiErr
		}
		return nil, &capi.Error{Code: capi.RcAbapRuntimeFailure, Key: "RFC_ABAP_RUNTIME_FAILURE", Message: err.Error()}
	}

	res := &capi.CallResult{}
	for _, name := range req.Out {
		p := desc.Parameter(name)
		if p == nil {
			return nil, &capi.Error{Code: capi.RcInvalidParameter, Key: "RFC_INVALID_PARAMETER", Message: fmt.Sprintf("unknown parameter %s", name)}
		}
		v, ok := outputs[name]
		if !ok {
			v = zeroValue(&p.FieldDescription)
		}
		data, err := protocol.EncodeParameter(&p.FieldDescription, v)
		if err != nil {
			return nil, &capi.Error{Code: capi.RcSerializationFailure, Key: "RFC_SERIALIZATION_FAILURE", Message: err.Error()}
		}
		res.Out = append(res.Out, capi.NamedBuffer{Name: name, Data: data})
	}
	return res, nil
}

// SetTrace implements the capi.Connection interface.
func (c *conn) SetTrace(level capi.TraceLevel, dir string) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	c.traceLevel, c.traceDir = level, dir
	return nil
}

// Version implements the capi.Connection interface.
func (c *conn) Version() string { return c.driver.version }

// Close implements the capi.Connection interface.
func (c *conn) Close() error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	c.closed = true
	return nil
}

// zeroValue returns the initial host value of a field, used for requested
// output parameters the handler did not provide.
func zeroValue(fd *capi.FieldDescription) any {
	switch fd.TypeCode {
	case capi.TcChar, capi.TcNum, capi.TcString:
		return ""
	case capi.TcDate:
		return "00000000"
	case capi.TcTime:
		return "000000"
	case capi.TcByte, capi.TcXString:
		return []byte{}
	case capi.TcInt, capi.TcInt1, capi.TcInt2:
		return int64(0)
	case capi.TcFloat, capi.TcBCD:
		return float64(0)
	case capi.TcStructure:
		m := make(map[string]any, len(fd.Fields))
		for _, f := range fd.Fields {
			m[f.Name] = zeroValue(f)
		}
		return m
	case capi.TcTable:
		return []map[string]any{}
	default:
		return nil
	}
}
