// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// rfcbench drives repeated function module calls against the in-memory
// rfctest backend to benchmark the marshalling engine. While running it
// serves the binding statistics as prometheus metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/SAP/go-nwrfc/prometheus/collectors"
	"github.com/SAP/go-nwrfc/rfc"
	"github.com/SAP/go-nwrfc/rfc/rfctest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	calls = flag.Int("calls", 10000, "number of calls per function module")
	rows  = flag.Int("rows", 100, "number of table rows per STFC_STRUCTURE call")
	addr  = flag.String("addr", "", "serve prometheus metrics on this address while running (empty: off)")
)

func testRow() map[string]any {
	return map[string]any{
		"RFCFLOAT": 1.23456789,
		"RFCCHAR1": "a",
		"RFCINT2":  4095,
		"RFCINT1":  163,
		"RFCCHAR4": "bcde",
		"RFCINT4":  416384,
		"RFCHEX3":  []byte{0x66, 0x67, 0x68},
		"RFCCHAR2": "fg",
		"RFCTIME":  "123456",
		"RFCDATE":  "20260829",
		"RFCDATA1": "hello",
		"RFCDATA2": "world",
	}
}

func bench(ctx context.Context, conn *rfc.Conn, name string, inputs func() map[string]any) error {
	fn, err := conn.GetFunction(ctx, name)
	if err != nil {
		return err
	}
	t := time.Now()
	for i := 0; i < *calls; i++ {
		if _, err := fn.Call(ctx, inputs(), nil); err != nil {
			return err
		}
	}
	d := time.Since(t)
	log.Printf("%-14s %d calls in %s (%.0f calls/s)", name, *calls, d, float64(*calls)/d.Seconds())
	return nil
}

func main() {
	flag.Parse()

	if *addr != "" {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewStatsCollector())
		http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*addr, nil); err != nil {
				log.Fatal(err)
			}
		}()
	}

	connector := rfc.NewConnector(map[string]string{
		"ashost": "localhost",
		"sysnr":  "00",
		"client": "000",
		"user":   "bench",
		"passwd": "bench",
	})
	connector.SetDriver(rfctest.NewDriver())

	ctx := context.Background()
	conn, err := connector.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := bench(ctx, conn, "STFC_CHANGING", func() map[string]any {
		return map[string]any{"START_VALUE": 0, "COUNTER": 1}
	}); err != nil {
		log.Fatal(err)
	}

	table := make([]map[string]any, *rows)
	for i := range table {
		table[i] = testRow()
	}
	if err := bench(ctx, conn, "STFC_STRUCTURE", func() map[string]any {
		return map[string]any{"IMPORTSTRUCT": testRow(), "RFCTABLE": table}
	}); err != nil {
		log.Fatal(err)
	}

	fmt.Println(connector.Stats())
}
