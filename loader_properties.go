// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import (
	"bytes"
	"io"

	"github.com/actforgood/xerr"
	"github.com/magiconair/properties"
)

// parseOptions holds properties grammar settings.
type parseOptions struct {
	encoding  Encoding // encoding used to decode raw bytes.
	expansion bool     // whether ${key} references get expanded.
}

// ParseOption defines optional function for configuring
// the properties parsing.
type ParseOption func(*parseOptions)

// WithEncoding sets the encoding used to decode a byte / stream based source.
//
// By default, byte / stream based sources are decoded as ISO88591, like java.util.Properties does.
// String / Text based sources are already decoded, they are always interpreted as UTF8.
func WithEncoding(enc Encoding) ParseOption {
	return func(opts *parseOptions) {
		opts.encoding = enc
	}
}

// WithExpansion enables ${key} references expansion in values.
//
// By default, expansion is disabled, values are returned as they are written.
func WithExpansion() ParseOption {
	return func(opts *parseOptions) {
		opts.expansion = true
	}
}

// newParseOptions applies given options over defaults.
func newParseOptions(defaultEnc Encoding, opts []ParseOption) parseOptions {
	options := parseOptions{encoding: defaultEnc}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// PropertiesStringLoader loads Properties from a literal string content.
// The content is already decoded, so it is always parsed as UTF8,
// a [WithEncoding] option is ignored.
func PropertiesStringLoader(content string, opts ...ParseOption) Loader {
	options := newParseOptions(UTF8, opts)
	options.encoding = UTF8

	return LoaderFunc(func() (Properties, error) {
		return parseProperties([]byte(content), options)
	})
}

// PropertiesTextLoader loads Properties from a [Text].
// The text gets rendered on each Load.
// Like for [PropertiesStringLoader], a [WithEncoding] option is ignored.
func PropertiesTextLoader(text Text, opts ...ParseOption) Loader {
	options := newParseOptions(UTF8, opts)
	options.encoding = UTF8

	return LoaderFunc(func() (Properties, error) {
		content, err := text.AsString()
		if err != nil {
			return nil, err
		}

		return parseProperties([]byte(content), options)
	})
}

// PropertiesBytesLoader loads Properties from bytes.
func PropertiesBytesLoader(propertiesContent []byte, opts ...ParseOption) Loader {
	return PropertiesBytesSourceLoader(
		BytesFunc(func() ([]byte, error) {
			return propertiesContent, nil
		}),
		opts...,
	)
}

// PropertiesBytesSourceLoader loads Properties from a [Bytes] source.
// The bytes are wrapped into a stream which is then parsed.
func PropertiesBytesSourceLoader(src Bytes, opts ...ParseOption) Loader {
	return PropertiesInputLoader(InputOf(src), opts...)
}

// PropertiesFileLoader loads Properties from a file.
// The location of properties content based file is given as parameter.
func PropertiesFileLoader(filePath string, opts ...ParseOption) Loader {
	return PropertiesInputLoader(FileInput(filePath), opts...)
}

// PropertiesInputLoader loads Properties from an [Input].
// On each Load exactly one stream is opened, read entirely, parsed and closed.
// The stream is closed whether parsing succeeds or not.
// If closing fails, the Load fails too.
func PropertiesInputLoader(input Input, opts ...ParseOption) Loader {
	options := newParseOptions(ISO88591, opts)

	return LoaderFunc(func() (Properties, error) {
		return readStream(input, func(stream io.Reader) (Properties, error) {
			content, err := io.ReadAll(stream)
			if err != nil {
				return nil, err
			}

			return parseProperties(content, options)
		})
	})
}

// readStream opens a stream from input, hands it to read, and closes it whatever read's outcome is.
// A close error fails the whole operation, and gets combined with read's error, if any.
func readStream(input Input, read func(io.Reader) (Properties, error)) (props Properties, err error) {
	stream, err := input.Stream()
	if err != nil {
		return nil, err
	}
	if stream == nil {
		return nil, ErrNilStream
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			var mErr *xerr.MultiError
			if err != nil {
				mErr = mErr.Add(err)
			}
			mErr = mErr.Add(closeErr)
			props, err = nil, mErr.ErrOrNil()
		}
	}()

	return read(stream)
}

// parseProperties applies the (java) properties grammar over content.
func parseProperties(content []byte, opts parseOptions) (Properties, error) {
	content = dropPendingContinuation(content)
	loader := properties.Loader{
		Encoding:         opts.encoding,
		DisableExpansion: !opts.expansion,
	}
	p, err := loader.LoadBytes(content)
	if err != nil {
		return nil, err
	}
	keys := p.Keys()

	props := make(Properties, len(keys))
	for _, key := range keys {
		value, _ := p.Get(key) // Get (not Map) so ${key} references get expanded, if enabled.
		props[key] = value
	}

	return props, nil
}

// dropPendingContinuation removes a line continuation left open at the end of content,
// as java.util.Properties ignores it, while magiconair/properties reports a premature EOF.
// An even run of trailing backslashes is a sequence of escaped backslashes and is kept.
func dropPendingContinuation(content []byte) []byte {
	backslashesCnt := len(content) - len(bytes.TrimRight(content, `\`))
	if backslashesCnt%2 == 1 {
		return content[:len(content)-1]
	}

	return content
}
