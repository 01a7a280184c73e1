// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import (
	"io"
	"strings"
	"time"

	"github.com/magiconair/properties"
	"github.com/spf13/cast"
)

// Encoding specifies the byte encoding of a properties content.
type Encoding = properties.Encoding

const (
	// UTF8 interprets the properties content as UTF-8.
	UTF8 Encoding = properties.UTF8
	// ISO88591 interprets the properties content as ISO-8859-1 (Latin-1),
	// the encoding used by java.util.Properties for byte streams.
	ISO88591 Encoding = properties.ISO_8859_1
)

// Properties is a string key - string value map, the result of loading
// a properties source.
type Properties map[string]string

// Get returns a property value for a given key.
// The first parameter is the key to return the value for.
// The second parameter is optional, and represents a default
// value in case key is not found. It also has a role in inferring
// the type of key's value (if it exists) and thus key's value
// will be casted to default's value type.
// Only basic types (string, bool, int, uint, float, and their flavours),
// time.Duration, time.Time, []int, []string are covered.
// Slices are read as whitespace separated items.
// If a cast error occurs, the default value is returned.
//
// Without a default, the raw string value is returned, or nil if key is not found.
func (props Properties) Get(key string, def ...any) any {
	value, foundKey := props[key]

	if len(def) > 0 {
		defaultValue := def[0]
		if !foundKey {
			return defaultValue
		}
		if defaultValue != nil {
			return castValueByDefault(value, defaultValue)
		}
	}

	if !foundKey {
		return nil
	}

	return value
}

// Clone returns a copy of the properties map, safe for a later mutation.
func (props Properties) Clone() Properties {
	if props == nil {
		return nil
	}
	dst := make(Properties, len(props))
	for key, value := range props {
		dst[key] = value
	}

	return dst
}

// Write writes the properties in (java) properties format to w, keys being sorted.
// Keys and values are escaped and, with ISO88591 encoding, characters
// outside Latin-1 are written as \uXXXX sequences.
// It returns the number of bytes written.
func (props Properties) Write(w io.Writer, enc Encoding) (int, error) {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for key, value := range props {
		if _, _, err := p.Set(key, value); err != nil {
			return 0, err
		}
	}
	p.Sort()

	return p.Write(w, enc)
}

// castValueByDefault casts a key's value to provided default value's type.
// If a cast error occurs, the defaultValue is returned.
func castValueByDefault(value string, defaultValue any) any {
	var (
		castValue any
		castErr   error
	)
	switch defaultValue.(type) {
	case string:
		castValue = value
	case int:
		castValue, castErr = cast.ToIntE(value)
	case uint:
		castValue, castErr = cast.ToUintE(value)
	case float64:
		castValue, castErr = cast.ToFloat64E(value)
	case bool:
		castValue, castErr = cast.ToBoolE(value)
	case time.Duration:
		castValue, castErr = cast.ToDurationE(value)
	case int64:
		castValue, castErr = cast.ToInt64E(value)
	case int32:
		castValue, castErr = cast.ToInt32E(value)
	case int16:
		castValue, castErr = cast.ToInt16E(value)
	case int8:
		castValue, castErr = cast.ToInt8E(value)
	case uint64:
		castValue, castErr = cast.ToUint64E(value)
	case uint32:
		castValue, castErr = cast.ToUint32E(value)
	case uint16:
		castValue, castErr = cast.ToUint16E(value)
	case uint8:
		castValue, castErr = cast.ToUint8E(value)
	case float32:
		castValue, castErr = cast.ToFloat32E(value)
	case time.Time:
		castValue, castErr = cast.ToTimeE(value)
	case []string:
		castValue, castErr = cast.ToStringSliceE(value)
	case []int:
		castValue, castErr = cast.ToIntSliceE(strings.Fields(value))
	default:
		castValue = value // not supported cast type, return directly the value
	}

	if castErr == nil {
		return castValue
	}

	return defaultValue
}
