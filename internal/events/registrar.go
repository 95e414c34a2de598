// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import "slices"

type registration struct {
	observer Observer
	typ      Type
}

// Registrar remembers the registrations made by one owner so that they can
// all be undone with RemoveAll.
type Registrar struct {
	source        Source
	registrations []registration
}

// NewRegistrar creates a Registrar working on source.
func NewRegistrar(source Source) *Registrar {
	return &Registrar{source: source}
}

// Add registers o for t and remembers the registration.
func (r *Registrar) Add(o Observer, t Type) {
	reg := registration{observer: o, typ: t}
	if slices.Contains(r.registrations, reg) {
		return
	}
	r.registrations = append(r.registrations, reg)
	r.source.Add(o, t)
}

// Remove undoes a registration made through Add.
func (r *Registrar) Remove(o Observer, t Type) {
	reg := registration{observer: o, typ: t}
	i := slices.Index(r.registrations, reg)
	if i < 0 {
		return
	}
	r.registrations = slices.Delete(r.registrations, i, i+1)
	r.source.Remove(o, t)
}

// IsRegistered reports whether o is registered for t through this registrar.
func (r *Registrar) IsRegistered(o Observer, t Type) bool {
	return slices.Contains(r.registrations, registration{observer: o, typ: t})
}

// IsEmpty reports whether the registrar holds no registrations.
func (r *Registrar) IsEmpty() bool {
	return len(r.registrations) == 0
}

// RemoveAll undoes every registration made through this registrar.
func (r *Registrar) RemoveAll() {
	for _, reg := range r.registrations {
		r.source.Remove(reg.observer, reg.typ)
	}
	r.registrations = nil
}
