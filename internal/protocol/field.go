// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"fmt"

	"github.com/SAP/go-nwrfc/rfc/capi"
)

// A ParameterField combines the immutable parameter description of a
// function module signature with the mutable per call active flag.
type ParameterField struct {
	desc   *capi.ParameterDescription
	active bool
}

// NewParameterFields wraps the parameter descriptions of a signature.
// All parameters start active.
func NewParameterFields(descs []*capi.ParameterDescription) []*ParameterField {
	fields := make([]*ParameterField, len(descs))
	for i, desc := range descs {
		fields[i] = &ParameterField{desc: desc, active: true}
	}
	return fields
}

func (f *ParameterField) String() string {
	return fmt.Sprintf("%s active %t", f.desc, f.active)
}

// Name returns the parameter name.
func (f *ParameterField) Name() string { return f.desc.Name }

// Direction returns the parameter direction.
func (f *ParameterField) Direction() capi.Direction { return f.desc.Direction }

// Description returns the parameter description.
func (f *ParameterField) Description() *capi.ParameterDescription { return f.desc }

// Active returns the active flag.
func (f *ParameterField) Active() bool { return f.active }

// SetActive sets the active flag.
func (f *ParameterField) SetActive(active bool) { f.active = active }
