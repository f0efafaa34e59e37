// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package collectors_test

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/SAP/go-nwrfc/prometheus/collectors"
	"github.com/SAP/go-nwrfc/rfc"
	"github.com/SAP/go-nwrfc/rfc/rfctest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func formatHTTPAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "80"
	}
	return net.JoinHostPort(host, port)
}

// Example demonstrates the usage of go-nwrfc prometheus metrics.
func Example() {
	const envHTTP = "GONWRFCHTTP"

	addr := os.Getenv(envHTTP)

	// exit if http address is missing.
	if addr == "" {
		return
	}

	connector := rfc.NewConnector(map[string]string{
		"ashost": "localhost",
		"sysnr":  "00",
		"client": "100",
		"user":   "DEMO",
		"passwd": "secret",
	})
	connector.SetDriver(rfctest.NewDriver())

	// register collector for the binding statistics.
	if err := prometheus.Register(collectors.NewStatsCollector()); err != nil {
		log.Fatal(err)
	}
	// register collector for the connector statistics, using a connector name as label.
	if err := prometheus.Register(collectors.NewConnectorStatsCollector(connector, "myConnector")); err != nil {
		log.Fatal(err)
	}

	conn, err := connector.Connect(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	done := make(chan struct{})

	// do some rfc stuff...
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				if err := conn.Ping(context.Background()); err != nil {
					log.Fatal(err)
				}
			}
		}
	}()

	// register prometheus HTTP handler and start HTTP server.
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(addr, nil)

	log.Printf("access the metrics at http://%s/metrics", formatHTTPAddr(addr))

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	<-sigint

	close(done)

	// output:
}
