// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

// lazyState is the state of a lazy memoization cell.
type lazyState uint8

const (
	lazyEmpty    lazyState = iota // nothing was computed yet, or last computation failed.
	lazyComputed                  // terminal state, props are cached.
)

// lazy computes properties at most once with success.
// A failed computation is not cached, next call retries it.
// It is not safe for concurrent use.
type lazy struct {
	loader Loader     // the computation.
	state  lazyState  // current state.
	props  Properties // cached result, set on lazyComputed.
}

// newLazy instantiates a new, empty, lazy cell.
func newLazy(loader Loader) *lazy {
	return &lazy{loader: loader}
}

// value returns the cached properties, computing them first if needed.
func (cell *lazy) value() (Properties, error) {
	if cell.state == lazyComputed {
		return cell.props, nil
	}

	props, err := cell.loader.Load()
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = Properties{}
	}
	cell.props = props
	cell.state = lazyComputed

	return props, nil
}
