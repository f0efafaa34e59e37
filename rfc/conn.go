// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfc

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/SAP/go-nwrfc/internal/protocol"
	"github.com/SAP/go-nwrfc/rfc/capi"
	"github.com/SAP/go-nwrfc/rfc/rfctrace"
)

var (
	errNoDriver = errors.New("no capability driver set")
	errClosed   = errors.New("connection is closed")
)

// unique connection number.
var connNo atomic.Uint64

/*
A Conn represents an open connection to an ABAP system.

A Conn owns exactly one native connection handle. It is not designed for
concurrent use from multiple goroutines without external synchronization:
the native handle must not be used for two in-flight calls simultaneously.
*/
type Conn struct {
	logger  *slog.Logger
	metrics *metrics
	db      capi.Connection
	rtrim   bool
	closed  atomic.Bool

	// trace configuration, kept to apply partial updates.
	traceLevel capi.TraceLevel
	traceDir   string
}

func connect(ctx context.Context, driver capi.Driver, parameters map[string]string, traceLevel capi.TraceLevel, traceDir string, logger *slog.Logger, rtrim bool, metrics *metrics) (*Conn, error) {
	logger = logger.With(slog.Uint64("conn", connNo.Add(1)))

	t := time.Now()
	db, err := driver.Open(ctx, parameters)
	if err != nil {
		return nil, newConnectionError("open", capi.RcCommunicationFailure, keyCommunicationFailure, err)
	}
	metrics.addDurationHistogramValue(statOpen, time.Since(t).Milliseconds())

	if traceLevel != capi.TraceOff || traceDir != "" {
		if err := db.SetTrace(traceLevel, traceDir); err != nil {
			db.Close()
			return nil, newConnectionError("set trace", capi.RcInvalidParameter, keyInvalidParameter, err)
		}
	}

	metrics.addGaugeValue(gaugeConn, 1)
	logger.LogAttrs(ctx, slog.LevelDebug, "connected", slog.String("sdk", db.Version()))

	return &Conn{
		logger:     logger,
		metrics:    metrics,
		db:         db,
		rtrim:      rtrim,
		traceLevel: traceLevel,
		traceDir:   traceDir,
	}, nil
}

// Close closes the connection and releases the native handle. Close is
// idempotent: calling it on a closed connection is a no-op.
func (c *Conn) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.metrics.addGaugeValue(gaugeConn, -1)
	if err := c.db.Close(); err != nil {
		return newConnectionError("close", capi.RcCommunicationFailure, keyCommunicationFailure, err)
	}
	return nil
}

// IsClosed returns true if the connection is closed, false otherwise.
func (c *Conn) IsClosed() bool { return c.closed.Load() }

func (c *Conn) closedError(op string) error {
	return newConnectionError(op, capi.RcInvalidHandle, keyClosed, errClosed)
}

// SetTraceLevel sets the trace level of the native capability, effective
// immediately.
func (c *Conn) SetTraceLevel(level capi.TraceLevel) error {
	if c.closed.Load() {
		return c.closedError("set trace")
	}
	if err := c.db.SetTrace(level, c.traceDir); err != nil {
		return newConnectionError("set trace", capi.RcInvalidParameter, keyInvalidParameter, err)
	}
	c.traceLevel = level
	return nil
}

// SetTraceDir sets the trace directory of the native capability, effective
// immediately.
func (c *Conn) SetTraceDir(dir string) error {
	if c.closed.Load() {
		return c.closedError("set trace")
	}
	if err := c.db.SetTrace(c.traceLevel, dir); err != nil {
		return newConnectionError("set trace", capi.RcInvalidParameter, keyInvalidParameter, err)
	}
	c.traceDir = dir
	return nil
}

// SDKVersion returns the version of the native capability.
func (c *Conn) SDKVersion() SDKVersion { return ParseSDKVersion(c.db.Version()) }

// Ping executes the RFC_PING function module.
func (c *Conn) Ping(ctx context.Context) error {
	if c.closed.Load() {
		return c.closedError("ping")
	}
	t := time.Now()
	_, err := c.db.Invoke(ctx, &capi.CallRequest{Name: "RFC_PING"})
	c.metrics.addDurationHistogramValue(statPing, time.Since(t).Milliseconds())
	if err != nil {
		return newFunctionCallError("RFC_PING", capi.RcCommunicationFailure, keyCommunicationFailure, err)
	}
	return nil
}

// GetFunction looks up the signature of the named remote function module
// and returns a Function instance for invoking it. The returned Function
// is bound to this connection and becomes unusable once the connection is
// closed.
func (c *Conn) GetFunction(ctx context.Context, name string) (*Function, error) {
	if c.closed.Load() {
		return nil, c.closedError("describe")
	}

	t := time.Now()
	desc, err := c.db.Describe(ctx, name)
	if err != nil {
		return nil, newFunctionCallError(name, capi.RcNotFound, keyInvalidParameter, err)
	}
	c.metrics.addDurationHistogramValue(statDescribe, time.Since(t).Milliseconds())
	c.metrics.addCounterValue(counterFunctionLookup, 1)

	rfctrace.Tracef("describe %s: %d parameters", name, len(desc.Parameters))

	return &Function{
		conn:   c,
		desc:   desc,
		fields: protocol.NewParameterFields(desc.Parameters),
	}, nil
}
