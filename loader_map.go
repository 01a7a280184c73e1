// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import (
	"fmt"

	"github.com/spf13/cast"
)

// MapLoader is an explicit go map properties retriever.
// Each key and value is converted to its string representation
// (basic types, [fmt.Stringer], error are handled by [cast.ToStringE],
// anything else is formatted with [fmt.Sprint]; a nil becomes "").
// No properties grammar is applied.
//
// If two distinct keys have the same string representation (like 1 and "1"),
// which one ends up in the result is undefined.
func MapLoader[K comparable, V any](m map[K]V) Loader {
	// make a copy to preserve state at current time.
	// (prevents user modification of m from outside while using the loader).
	mCopy := make(map[K]V, len(m))
	for key, value := range m {
		mCopy[key] = value
	}

	return LoaderFunc(func() (Properties, error) {
		props := make(Properties, len(mCopy))
		for key, value := range mCopy {
			props[stringOf(key)] = stringOf(value)
		}

		return props, nil
	})
}

// Entry is a key-value pair.
type Entry struct {
	Key   any
	Value any
}

// NewEntry instantiates a new Entry.
func NewEntry(key, value any) Entry {
	return Entry{Key: key, Value: value}
}

// EntriesLoader retrieves properties from a list of entries.
// Keys and values are converted to strings like [MapLoader] does.
// If the same key appears more than once, the later entry wins.
func EntriesLoader(entries ...Entry) Loader {
	entriesCopy := make([]Entry, len(entries))
	copy(entriesCopy, entries)

	return LoaderFunc(func() (Properties, error) {
		props := make(Properties, len(entriesCopy))
		for _, entry := range entriesCopy {
			props[stringOf(entry.Key)] = stringOf(entry.Value)
		}

		return props, nil
	})
}

// stringOf returns the string representation of a value.
func stringOf(value any) string {
	if str, err := cast.ToStringE(value); err == nil {
		return str
	}

	return fmt.Sprint(value)
}
