// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfctrace

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestCallTrace(t *testing.T) {
	defer func() {
		SetOn(false)
		SetOutput(os.Stdout)
	}()

	b := new(bytes.Buffer)
	SetOutput(b)

	Tracef("invoke %s", "RFC_PING")
	if b.Len() != 0 {
		t.Fatalf("trace off - expected no output, got %q", b.String())
	}

	SetOn(true)
	if !On() {
		t.Fatal("expected trace to be on")
	}
	Tracef("invoke %s", "RFC_PING")
	if !strings.Contains(b.String(), "invoke RFC_PING") {
		t.Fatalf("trace output got: %q expected to contain: invoke RFC_PING", b.String())
	}
}

func TestFlagValue(t *testing.T) {
	defer SetOn(false)

	var v flagValue
	if !v.IsBoolFlag() {
		t.Fatal("expected boolean flag")
	}
	if err := v.Set("true"); err != nil {
		t.Fatal(err)
	}
	if !On() || v.String() != "true" {
		t.Fatalf("flag set - on got: %t string got: %s", On(), v.String())
	}
	if err := v.Set("not-a-bool"); err == nil {
		t.Fatal("expected parse error")
	}
}
