// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

// Package xprops provides a (java) properties key value map from various sources:
// a literal string, a text, bytes, a stream based input, a plain go map or a list of entries.
// The properties content is parsed lazily, on first access, and the result is cached,
// so the underlying source is read at most once.
package xprops
