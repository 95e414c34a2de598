// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prefs

// PrefSource is the registration side of a preference store.
type PrefSource interface {
	AddPrefObserver(key string, o PrefObserver)
	RemovePrefObserver(key string, o PrefObserver)
}

type callbackObserver struct {
	fn func(key string)
}

func (c *callbackObserver) OnPreferenceChanged(key string) {
	c.fn(key)
}

// ChangeRegistrar binds callbacks to preference keys and removes all of them
// at once.
type ChangeRegistrar struct {
	source    PrefSource
	observers map[string]*callbackObserver
}

// NewChangeRegistrar creates a registrar working on source.
func NewChangeRegistrar(source PrefSource) *ChangeRegistrar {
	return &ChangeRegistrar{
		source:    source,
		observers: make(map[string]*callbackObserver),
	}
}

// Add calls fn after every change of key. A key can be bound only once;
// adding it again replaces the callback.
func (r *ChangeRegistrar) Add(key string, fn func(key string)) {
	if o, ok := r.observers[key]; ok {
		o.fn = fn
		return
	}
	o := &callbackObserver{fn: fn}
	r.observers[key] = o
	r.source.AddPrefObserver(key, o)
}

// Remove unbinds key.
func (r *ChangeRegistrar) Remove(key string) {
	o, ok := r.observers[key]
	if !ok {
		return
	}
	delete(r.observers, key)
	r.source.RemovePrefObserver(key, o)
}

// IsObserved reports whether key is bound.
func (r *ChangeRegistrar) IsObserved(key string) bool {
	_, ok := r.observers[key]
	return ok
}

// IsEmpty reports whether no key is bound.
func (r *ChangeRegistrar) IsEmpty() bool {
	return len(r.observers) == 0
}

// RemoveAll unbinds every key.
func (r *ChangeRegistrar) RemoveAll() {
	for key, o := range r.observers {
		r.source.RemovePrefObserver(key, o)
	}
	clear(r.observers)
}
