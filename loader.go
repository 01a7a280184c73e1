// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

// Loader is responsible for loading a properties key value map.
type Loader interface {
	// Load returns a properties key value map or an error.
	//
	// A Loader does not perform any I/O until Load is called.
	// Each call of a plain Loader re-evaluates its source;
	// wrap it in a [PropertyMapLoader] to get the result cached.
	Load() (Properties, error)
}

// The LoaderFunc type is an adapter to allow the use of
// ordinary functions as Loaders. If fn is a function
// with the appropriate signature, LoaderFunc(fn) is a
// Loader that calls fn.
type LoaderFunc func() (Properties, error)

// Load calls fn().
func (fn LoaderFunc) Load() (Properties, error) {
	return fn()
}
