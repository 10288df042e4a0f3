// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// Languages is a set of syntax highlighting language ids. It remembers
// insertion order so that encoding is stable, but equality ignores order.
type Languages struct {
	ids []string
}

// NewLanguages creates a set from ids, dropping duplicates
func NewLanguages(ids ...string) Languages {
	l := Languages{}
	for _, id := range ids {
		l.Add(id)
	}
	return l
}

// Add inserts id unless it is already present
func (l *Languages) Add(id string) {
	if l.Has(id) {
		return
	}
	l.ids = append(l.ids, id)
}

// Has reports whether id is in the set
func (l Languages) Has(id string) bool {
	for _, v := range l.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len returns the number of ids
func (l Languages) Len() int {
	return len(l.ids)
}

// Items returns the ids in insertion order
func (l Languages) Items() []string {
	return append([]string{}, l.ids...)
}

// Slice returns the ids sorted
func (l Languages) Slice() []string {
	s := l.Items()
	sort.Strings(s)
	return s
}

// Equal compares two sets ignoring order
func (l Languages) Equal(o Languages) bool {
	if l.Len() != o.Len() {
		return false
	}
	for _, id := range l.ids {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (l Languages) Clone() Languages {
	if l.ids == nil {
		return Languages{}
	}
	return Languages{ids: l.Items()}
}

// MarshalJSON encodes the set as an array
func (l Languages) MarshalJSON() ([]byte, error) {
	if l.ids == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.ids)
}

// UnmarshalJSON decodes an array, dropping duplicates
func (l *Languages) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*l = NewLanguages(ids...)
	return nil
}

// MarshalYAML encodes the set as a sequence
func (l Languages) MarshalYAML() (interface{}, error) {
	return l.Items(), nil
}

// UnmarshalYAML decodes a sequence, dropping duplicates
func (l *Languages) UnmarshalYAML(value *yaml.Node) error {
	var ids []string
	if err := value.Decode(&ids); err != nil {
		return err
	}
	*l = NewLanguages(ids...)
	return nil
}
