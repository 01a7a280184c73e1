// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import (
	"errors"
)

// IgnoreErrorLoader decorates another loader to ignore the error returned by it,
// if error is present in the list of errors passed as second parameter.
// You can ignore, for example, [os.ErrNotExist] for a properties file which is not
// mandatory to exist. In such case, an empty Properties map is returned.
func IgnoreErrorLoader(loader Loader, errs ...error) Loader {
	return LoaderFunc(func() (Properties, error) {
		props, err := loader.Load()
		if err != nil {
			for _, ignoreErr := range errs {
				if errors.Is(err, ignoreErr) {
					return Properties{}, nil
				}
			}
		}

		return props, err
	})
}
