// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import "sync"

// SyncLoader decorates another loader to serialize its Load calls.
// Decorating a [PropertyMapLoader] makes it safe for concurrent use,
// and its source will be evaluated at most once successfully, even under concurrency.
func SyncLoader(loader Loader) Loader {
	var mu sync.Mutex

	return LoaderFunc(func() (Properties, error) {
		mu.Lock()
		defer mu.Unlock()

		return loader.Load()
	})
}
