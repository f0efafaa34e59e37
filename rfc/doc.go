// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

/*
Package rfc provides client bindings for invoking remote function modules
on an ABAP system via the SAP NetWeaver RFC protocol.

The native RFC implementation is consumed through the capability interface
of package capi and set on a Connector. A Connector in a fixed
configuration opens connections; a connection looks up function module
signatures and a Function invokes one function module, marshalling host
values to the RFC wire types and back:

	connector := rfc.NewConnector(map[string]string{
		"ashost": "sap.example.com",
		"sysnr":  "00",
		"client": "100",
		"user":   "demo",
		"passwd": "secret",
	})
	connector.SetDriver(driver)

	conn, err := connector.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	fn, err := conn.GetFunction(ctx, "STFC_CONNECTION")
	if err != nil {
		log.Fatal(err)
	}
	outputs, err := fn.Call(ctx, map[string]any{"REQUTEXT": "hello"}, nil)
*/
package rfc
