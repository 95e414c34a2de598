// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events is the in-process notification service used to deliver
// session lifecycle signals (a user's profile became ready, a user's avatar
// changed locally) to interested components.
//
// Delivery is synchronous on the goroutine that calls [Service.Notify]. The
// client runs every Notify on its single event loop, so observers never run
// concurrently with each other.
package events

import (
	"fmt"
	"slices"
	"sync"
)

// Type identifies the kind of notification.
type Type int

const (
	// TypeUserImageChanged is sent after a user's local avatar index was
	// persisted. Event.UserID names the user.
	TypeUserImageChanged Type = iota + 1

	// TypeUserProfilePrepared is sent once a user's profile, including its
	// preference store, is ready. Event.Details holds the profile.
	TypeUserProfilePrepared
)

// String returns a human-readable name of the notification type.
func (t Type) String() string {
	switch t {
	case TypeUserImageChanged:
		return "user_image_changed"
	case TypeUserProfilePrepared:
		return "user_profile_prepared"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Event is a single notification.
type Event struct {
	Type    Type
	UserID  string
	Details any
}

// Observer receives notifications it was registered for.
type Observer interface {
	Observe(e Event)
}

// Source is the registration side of the notification service.
type Source interface {
	Add(o Observer, t Type)
	Remove(o Observer, t Type)
}

// Notifier is the sending side of the notification service.
type Notifier interface {
	Notify(e Event)
}

// Service dispatches events to registered observers.
type Service struct {
	mu        sync.Mutex
	observers map[Type][]Observer
}

// NewService creates an empty notification service.
func NewService() *Service {
	return &Service{observers: make(map[Type][]Observer)}
}

// Add registers o for events of type t. Registering the same pair twice has
// no effect.
func (s *Service) Add(o Observer, t Type) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.observers[t], o) {
		return
	}
	s.observers[t] = append(s.observers[t], o)
}

// Remove unregisters o from events of type t.
func (s *Service) Remove(o Observer, t Type) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.observers[t]
	if i := slices.Index(list, o); i >= 0 {
		s.observers[t] = slices.Delete(slices.Clone(list), i, i+1)
	}
}

// Notify delivers e to every observer registered for e.Type. Observers removed
// by an earlier observer during the same dispatch are skipped.
func (s *Service) Notify(e Event) {
	s.mu.Lock()
	snapshot := slices.Clone(s.observers[e.Type])
	s.mu.Unlock()

	for _, o := range snapshot {
		if !s.has(o, e.Type) {
			continue
		}
		o.Observe(e)
	}
}

// Count returns the number of observers registered for t.
func (s *Service) Count(t Type) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers[t])
}

func (s *Service) has(o Observer, t Type) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.observers[t], o)
}
