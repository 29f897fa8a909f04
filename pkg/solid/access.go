// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

// Package solid defines the shared value types of the access client:
// the five-mode Access vector, actors, and the resource/governance
// model. Everything here is plain data with value semantics; no I/O.
package solid

import (
	"encoding/json"
	"fmt"
)

// Setting is the tri-state value of one access mode: unspecified,
// explicitly granted, or explicitly denied.
type Setting int

// Setting constants define the possible states of an access mode.
const (
	Unset   Setting = iota // unset
	Granted                // granted
	Denied                 // denied
)

var settingStrings = [...]string{
	"unset",
	"granted",
	"denied",
}

func (s Setting) String() string {
	if s >= 0 && int(s) < len(settingStrings) {
		return settingStrings[s]
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Bool returns the setting as a nullable boolean: nil when unset.
func (s Setting) Bool() *bool {
	switch s {
	case Granted:
		v := true
		return &v
	case Denied:
		v := false
		return &v
	default:
		return nil
	}
}

// SettingOf converts a nullable boolean into a Setting.
func SettingOf(v *bool) Setting {
	switch {
	case v == nil:
		return Unset
	case *v:
		return Granted
	default:
		return Denied
	}
}

// Access is the effective five-mode access vector for one actor on one
// resource. Each field is independently tri-state; a zero Access means
// "nothing specified". Access values are never mutated in place: every
// operation that changes one returns a new value.
type Access struct {
	Read         Setting
	Append       Setting
	Write        Setting
	ControlRead  Setting
	ControlWrite Setting
}

// Grants reports whether every mode set to Granted in want is also
// Granted in a. Unset modes in want are ignored.
func (a Access) Grants(want Access) bool {
	for _, pair := range [][2]Setting{
		{want.Read, a.Read},
		{want.Append, a.Append},
		{want.Write, a.Write},
		{want.ControlRead, a.ControlRead},
		{want.ControlWrite, a.ControlWrite},
	} {
		if pair[0] == Granted && pair[1] != Granted {
			return false
		}
	}
	return true
}

// Merge overlays other on a: modes set in other replace modes in a,
// unset modes in other leave a's value in place. Returns a new vector.
func (a Access) Merge(other Access) Access {
	out := a
	if other.Read != Unset {
		out.Read = other.Read
	}
	if other.Append != Unset {
		out.Append = other.Append
	}
	if other.Write != Unset {
		out.Write = other.Write
	}
	if other.ControlRead != Unset {
		out.ControlRead = other.ControlRead
	}
	if other.ControlWrite != Unset {
		out.ControlWrite = other.ControlWrite
	}
	return out
}

// IsZero reports whether no mode is specified.
func (a Access) IsZero() bool {
	return a == Access{}
}

// accessWire is the serialized shape: absent keys mean unset, matching
// the shape applications expect from both authorization schemes.
type accessWire struct {
	Read         *bool `json:"read,omitempty" yaml:"read,omitempty"`
	Append       *bool `json:"append,omitempty" yaml:"append,omitempty"`
	Write        *bool `json:"write,omitempty" yaml:"write,omitempty"`
	ControlRead  *bool `json:"controlRead,omitempty" yaml:"controlRead,omitempty"`
	ControlWrite *bool `json:"controlWrite,omitempty" yaml:"controlWrite,omitempty"`
}

func (a Access) wire() accessWire {
	return accessWire{
		Read:         a.Read.Bool(),
		Append:       a.Append.Bool(),
		Write:        a.Write.Bool(),
		ControlRead:  a.ControlRead.Bool(),
		ControlWrite: a.ControlWrite.Bool(),
	}
}

func (a *Access) fromWire(w accessWire) {
	a.Read = SettingOf(w.Read)
	a.Append = SettingOf(w.Append)
	a.Write = SettingOf(w.Write)
	a.ControlRead = SettingOf(w.ControlRead)
	a.ControlWrite = SettingOf(w.ControlWrite)
}

// MarshalJSON emits nullable booleans, omitting unset modes.
func (a Access) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.wire()) //nolint:wrapcheck
}

// UnmarshalJSON accepts the nullable-boolean shape.
func (a *Access) UnmarshalJSON(data []byte) error {
	var w accessWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err //nolint:wrapcheck
	}
	a.fromWire(w)
	return nil
}

// MarshalYAML emits the same shape as JSON.
func (a Access) MarshalYAML() (any, error) {
	return a.wire(), nil
}
