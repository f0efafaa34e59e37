// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfc

import (
	"errors"
	"fmt"

	"github.com/SAP/go-nwrfc/rfc/capi"
)

// Error keys used for failures detected by the bindings themselves (native
// failures keep the key reported by the capability).
const (
	keyClosed               = "RFC_CLOSED"
	keyInvalidParameter     = "RFC_INVALID_PARAMETER"
	keySerializationFailure = "RFC_SERIALIZATION_FAILURE"
	keyCommunicationFailure = "RFC_COMMUNICATION_FAILURE"
)

// An ErrorInfo is the uniform error record attached to ConnectionError and
// FunctionCallError values.
type ErrorInfo struct {
	Code    int    // RFC return code (see package capi Rc* constants)
	Key     string // error key
	Message string // error message text

	// ABAP message details, set if the server raised an ABAP message.
	AbapMsgClass  string
	AbapMsgType   string
	AbapMsgNumber string
	AbapMsgV1     string
	AbapMsgV2     string
	AbapMsgV3     string
	AbapMsgV4     string
}

func (i *ErrorInfo) String() string {
	return fmt.Sprintf("code %d key %s message %s", i.Code, i.Key, i.Message)
}

// newErrorInfo normalizes an error into an ErrorInfo record. Native
// capability errors keep their code, key and ABAP message details; any
// other error is recorded under the given code and key.
func newErrorInfo(code int, key string, err error) *ErrorInfo {
	var capiErr *capi.Error
	if errors.As(err, &capiErr) {
		return &ErrorInfo{
			Code:          capiErr.Code,
			Key:           capiErr.Key,
			Message:       capiErr.Message,
			AbapMsgClass:  capiErr.AbapMsgClass,
			AbapMsgType:   capiErr.AbapMsgType,
			AbapMsgNumber: capiErr.AbapMsgNumber,
			AbapMsgV1:     capiErr.AbapMsgV1,
			AbapMsgV2:     capiErr.AbapMsgV2,
			AbapMsgV3:     capiErr.AbapMsgV3,
			AbapMsgV4:     capiErr.AbapMsgV4,
		}
	}
	return &ErrorInfo{Code: code, Key: key, Message: err.Error()}
}

// A ConnectionError reports a connection open failure, a configuration
// failure or the use of a closed connection.
type ConnectionError struct {
	op   string
	info *ErrorInfo
	err  error
}

func newConnectionError(op string, code int, key string, err error) *ConnectionError {
	return &ConnectionError{op: op, info: newErrorInfo(code, key, err), err: err}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection %s: %s", e.op, e.err)
}

// Unwrap returns the nested error.
func (e *ConnectionError) Unwrap() error { return e.err }

// Info returns the error record.
func (e *ConnectionError) Info() *ErrorInfo { return e.info }

// A FunctionCallError reports a function lookup failure, an unknown
// parameter name, a marshalling failure or a native execution failure.
type FunctionCallError struct {
	function string
	info     *ErrorInfo
	err      error
}

func newFunctionCallError(function string, code int, key string, err error) *FunctionCallError {
	return &FunctionCallError{function: function, info: newErrorInfo(code, key, err), err: err}
}

func (e *FunctionCallError) Error() string {
	return fmt.Sprintf("function %s: %s", e.function, e.err)
}

// Unwrap returns the nested error.
func (e *FunctionCallError) Unwrap() error { return e.err }

// Info returns the error record.
func (e *FunctionCallError) Info() *ErrorInfo { return e.info }

// Function returns the name of the function module the call failed for.
func (e *FunctionCallError) Function() string { return e.function }
