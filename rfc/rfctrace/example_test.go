// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfctrace_test

import (
	"github.com/SAP/go-nwrfc/rfc/rfctrace"
)

func Example() {
	rfctrace.SetOn(true)  // set rfc call trace output active
	rfctrace.SetOn(false) // set rfc call trace output inactive
}
