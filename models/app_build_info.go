// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// NotStamped replaces build metadata that was not injected at link time.
const NotStamped = "N/A"

// AppBuildInfo is the version, date and commit linked into a binary with
// -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo stores the given values, replacing empty ones with
// [NotStamped].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotStamped(version),
		date:    orNotStamped(date),
		commit:  orNotStamped(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotStamped(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNotStamped(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNotStamped(a.commit) }

// HasVersion reports whether a version was linked in.
func (a AppBuildInfo) HasVersion() bool {
	return a.BuildVersion() != NotStamped
}

// String renders the block printed by the binaries on start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotStamped(s string) string {
	if s == "" {
		return NotStamped
	}
	return s
}
