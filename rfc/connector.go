// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfc

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/SAP/go-nwrfc/rfc/capi"
)

// Connection parameter keys interpreted by the Connector itself. All other
// keys are passed through to the capability unmodified.
const (
	ParamTrace    = "trace"     // trace level: off, brief, verbose, full or 0-3
	ParamTraceDir = "trace_dir" // directory the capability writes trace files to
	ParamIniPath  = "ini_path"  // path of the sapnwrfc.ini file read by the capability
)

/*
A Connector represents the go-nwrfc bindings in a fixed configuration.
After a connection has been established via Connect the Connector must not
be modified.
*/
type Connector struct {
	mu         sync.RWMutex
	parameters map[string]string
	driver     capi.Driver
	logger     *slog.Logger
	traceLevel capi.TraceLevel
	traceDir   string
	iniPath    string
	rtrim      bool
	metrics    *metrics
}

// NewConnector returns a new Connector instance with the given connection
// parameters (host address, system number, client, user, credential, ...).
// The trace, trace_dir and ini_path parameters are additionally tracked on
// the Connector itself.
func NewConnector(parameters map[string]string) *Connector {
	c := &Connector{
		parameters: maps.Clone(parameters),
		logger:     slog.Default(),
		metrics:    newMetrics(stdMetrics),
	}
	if c.parameters == nil {
		c.parameters = map[string]string{}
	}
	if s, ok := c.parameters[ParamTrace]; ok {
		if level, err := capi.ParseTraceLevel(s); err == nil {
			c.traceLevel = level
		}
	}
	c.traceDir = c.parameters[ParamTraceDir]
	c.iniPath = c.parameters[ParamIniPath]
	return c
}

// Driver returns the capability driver of the connector.
func (c *Connector) Driver() capi.Driver { c.mu.RLock(); defer c.mu.RUnlock(); return c.driver }

// SetDriver sets the capability driver of the connector.
func (c *Connector) SetDriver(driver capi.Driver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.driver = driver
}

// Logger returns the logger of the connector.
func (c *Connector) Logger() *slog.Logger { c.mu.RLock(); defer c.mu.RUnlock(); return c.logger }

// SetLogger sets the logger of the connector.
func (c *Connector) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// TraceLevel returns the trace level of the connector.
func (c *Connector) TraceLevel() capi.TraceLevel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.traceLevel
}

// SetTraceLevel sets the trace level staged for the next connect.
func (c *Connector) SetTraceLevel(level capi.TraceLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.traceLevel = level
}

// TraceDir returns the trace directory of the connector.
func (c *Connector) TraceDir() string { c.mu.RLock(); defer c.mu.RUnlock(); return c.traceDir }

// SetTraceDir sets the trace directory staged for the next connect.
func (c *Connector) SetTraceDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.traceDir = dir
}

// IniPath returns the sapnwrfc.ini path of the connector.
func (c *Connector) IniPath() string { c.mu.RLock(); defer c.mu.RUnlock(); return c.iniPath }

// SetIniPath sets the sapnwrfc.ini path staged for the next connect.
func (c *Connector) SetIniPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.iniPath = path
	c.parameters[ParamIniPath] = path
}

// RTrim returns the default right trim behavior of calls (see CallOptions).
func (c *Connector) RTrim() bool { c.mu.RLock(); defer c.mu.RUnlock(); return c.rtrim }

// SetRTrim sets the default right trim behavior of calls.
func (c *Connector) SetRTrim(rtrim bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rtrim = rtrim
}

// Stats returns the statistics of all connections created by this
// connector.
func (c *Connector) Stats() *Stats { return c.metrics.stats() }

// Connect opens a connection to the ABAP system.
func (c *Connector) Connect(ctx context.Context) (*Conn, error) {
	c.mu.RLock()
	driver := c.driver
	parameters := maps.Clone(c.parameters)
	traceLevel := c.traceLevel
	traceDir := c.traceDir
	logger := c.logger
	rtrim := c.rtrim
	c.mu.RUnlock()

	if driver == nil {
		return nil, newConnectionError("open", capi.RcInvalidParameter, keyInvalidParameter, errNoDriver)
	}
	return connect(ctx, driver, parameters, traceLevel, traceDir, logger, rtrim, c.metrics)
}
