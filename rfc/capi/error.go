// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package capi

import "fmt"

// RFC return codes as reported by the native capability. The values match
// the RFC_RC constants of the NW RFC SDK.
const (
	RcOK                        = 0
	RcCommunicationFailure      = 1
	RcLogonFailure              = 2
	RcAbapRuntimeFailure        = 3
	RcAbapMessage               = 4
	RcAbapException             = 5
	RcClosed                    = 6
	RcCanceled                  = 7
	RcTimeout                   = 8
	RcMemoryInsufficient        = 9
	RcVersionMismatch           = 10
	RcInvalidProtocol           = 11
	RcSerializationFailure      = 12
	RcInvalidHandle             = 13
	RcRetry                     = 14
	RcExternalFailure           = 15
	RcExecuted                  = 16
	RcNotFound                  = 17
	RcNotSupported              = 18
	RcIllegalState              = 19
	RcInvalidParameter          = 20
	RcCodepageConversionFailure = 21
	RcConversionFailure         = 22
	RcInvalidDataFormat         = 23
	RcUnknownError              = 26
)

// An Error is the error record of the native capability, mirroring the
// RFC_ERROR_INFO structure of the NW RFC SDK.
type Error struct {
	Code    int    // RFC return code (Rc* constant)
	Key     string // error key, e.g. "RFC_LOGON_FAILURE" or the ABAP exception name
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

func (e *Error) Error() string {
	return fmt.Sprintf("rfc error %d key %s - %s", e.Code, e.Key, e.Message)
}
