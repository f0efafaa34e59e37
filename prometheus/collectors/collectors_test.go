// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package collectors_test

import (
	"context"
	"testing"

	"github.com/SAP/go-nwrfc/prometheus/collectors"
	"github.com/SAP/go-nwrfc/rfc"
	"github.com/SAP/go-nwrfc/rfc/rfctest"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestConnectorStatsCollector(t *testing.T) {
	connector := rfc.NewConnector(map[string]string{
		"ashost": "localhost",
		"sysnr":  "00",
		"client": "100",
		"user":   "DEMO",
		"passwd": "secret",
	})
	connector.SetDriver(rfctest.NewDriver())

	conn, err := connector.Connect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err := conn.Ping(context.Background()); err != nil {
		t.Fatal(err)
	}

	collector := collectors.NewConnectorStatsCollector(connector, "testConnector")

	// 2 gauges, 2 counters and one histogram per call category
	expected := 4 + rfc.StatsNumCall
	if got := testutil.CollectAndCount(collector); got != expected {
		t.Fatalf("metrics got: %d expected: %d", got, expected)
	}

	// the histogram of the ping category carries the ping from above
	if got := testutil.CollectAndCount(collector, "go_nwrfc_connector_call_time"); got != rfc.StatsNumCall {
		t.Fatalf("call time metrics got: %d expected: %d", got, rfc.StatsNumCall)
	}
}

func TestStatsCollector(t *testing.T) {
	collector := collectors.NewStatsCollector()
	expected := 4 + rfc.StatsNumCall
	if got := testutil.CollectAndCount(collector); got != expected {
		t.Fatalf("metrics got: %d expected: %d", got, expected)
	}
}
