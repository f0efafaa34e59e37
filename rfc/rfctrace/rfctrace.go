// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Package rfctrace implements the client side call trace of the go-nwrfc
// bindings. The trace logs function module lookups and invocations on the
// Go side and is independent of the native capability trace controlled via
// the connection trace level.
//
// The trace is off by default and can be switched on either with the
// rfc.callTrace command line flag or programmatically via SetOn.
package rfctrace

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"sync/atomic"
)

var (
	on     atomic.Bool
	logger = log.New(os.Stdout, "rfc ", log.Ldate|log.Ltime|log.Lshortfile)
)

// flagValue exposes the trace switch as a boolean command line flag.
type flagValue struct{}

func (flagValue) String() string { return strconv.FormatBool(on.Load()) }
func (flagValue) IsBoolFlag() bool { return true }
func (flagValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	on.Store(b)
	return nil
}

func init() {
	flag.Var(flagValue{}, "rfc.callTrace", "enabling rfc call trace")
}

// On reports whether the call trace is active.
func On() bool { return on.Load() }

// SetOn switches the call trace on or off.
func SetOn(b bool) { on.Store(b) }

// SetOutput redirects the call trace output. The default output is
// os.Stdout.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

// Trace writes its operands to the call trace in the manner of log.Print.
func Trace(v ...any) {
	if On() {
		logger.Print(v...)
	}
}

// Tracef writes a formatted record to the call trace in the manner of
// log.Printf.
func Tracef(format string, v ...any) {
	if On() {
		logger.Printf(format, v...)
	}
}
