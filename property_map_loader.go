// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

// PropertyMapLoader provides a Properties map from a source, lazily.
// The source is evaluated on first [PropertyMapLoader.Value] call, and,
// if successful, the result is cached and returned on every subsequent call
// (the very same map instance, which should be treated as read-only).
// If evaluation fails, nothing is cached, and next call evaluates the source again.
//
// There is no thread-safety guarantee. Concurrent calls of Value before
// the first successful one may evaluate the source more than once.
// Decorate it with [SyncLoader] if you need to share it between goroutines.
type PropertyMapLoader struct {
	// cell memoizes the source's result.
	cell *lazy
	// errHandler is an optional handler for errors occurred during evaluation.
	errHandler func(error)
}

// PropertyMapLoaderOption defines optional function for configuring
// a PropertyMapLoader object.
type PropertyMapLoaderOption func(*PropertyMapLoader)

// WithErrorHandler sets the handler for errors that may occur
// during source evaluation. It is called on every failed evaluation,
// with the same error Value returns.
//
// You can choose to log the error, for example, see [LogErrorHandler].
//
// By default, error is only returned.
func WithErrorHandler(errHandler func(error)) PropertyMapLoaderOption {
	return func(loader *PropertyMapLoader) {
		loader.errHandler = errHandler
	}
}

// NewPropertyMapLoader instantiates a new PropertyMapLoader object
// which caches the result of the given loader.
// The loader is not called here.
func NewPropertyMapLoader(loader Loader, opts ...PropertyMapLoaderOption) *PropertyMapLoader {
	propsLoader := &PropertyMapLoader{
		cell: newLazy(loader),
	}

	// apply options, if any.
	for _, opt := range opts {
		opt(propsLoader)
	}

	return propsLoader
}

// FromString returns a PropertyMapLoader for a literal properties content.
// The content is parsed as UTF8, regardless of a [WithEncoding] option.
func FromString(content string, opts ...ParseOption) *PropertyMapLoader {
	return NewPropertyMapLoader(PropertiesStringLoader(content, opts...))
}

// FromText returns a PropertyMapLoader for a properties content given as [Text].
// The rendered text is parsed as UTF8, regardless of a [WithEncoding] option.
func FromText(text Text, opts ...ParseOption) *PropertyMapLoader {
	return NewPropertyMapLoader(PropertiesTextLoader(text, opts...))
}

// FromBytes returns a PropertyMapLoader for a properties content given as bytes.
func FromBytes(content []byte, opts ...ParseOption) *PropertyMapLoader {
	return NewPropertyMapLoader(PropertiesBytesLoader(content, opts...))
}

// FromBytesSource returns a PropertyMapLoader for a properties content given as [Bytes].
func FromBytesSource(src Bytes, opts ...ParseOption) *PropertyMapLoader {
	return NewPropertyMapLoader(PropertiesBytesSourceLoader(src, opts...))
}

// FromInput returns a PropertyMapLoader for a properties content streamed by an [Input].
func FromInput(input Input, opts ...ParseOption) *PropertyMapLoader {
	return NewPropertyMapLoader(PropertiesInputLoader(input, opts...))
}

// FromFile returns a PropertyMapLoader for a properties file.
func FromFile(filePath string, opts ...ParseOption) *PropertyMapLoader {
	return NewPropertyMapLoader(PropertiesFileLoader(filePath, opts...))
}

// FromMap returns a PropertyMapLoader for a go map, see [MapLoader].
func FromMap[K comparable, V any](m map[K]V) *PropertyMapLoader {
	return NewPropertyMapLoader(MapLoader(m))
}

// FromEntries returns a PropertyMapLoader for a list of entries, see [EntriesLoader].
func FromEntries(entries ...Entry) *PropertyMapLoader {
	return NewPropertyMapLoader(EntriesLoader(entries...))
}

// Value returns the properties map.
// Any error is returned as an [*IOError] (matching [ErrIO]).
func (loader *PropertyMapLoader) Value() (Properties, error) {
	props, err := loader.cell.value()
	if err != nil {
		err = toIOError(err)
		if loader.errHandler != nil {
			loader.errHandler(err)
		}

		return nil, err
	}

	return props, nil
}

// Load returns the same as Value.
// It makes PropertyMapLoader a [Loader] itself, so it can be decorated.
func (loader *PropertyMapLoader) Load() (Properties, error) {
	return loader.Value()
}
