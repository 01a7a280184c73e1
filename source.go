// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import (
	"bytes"
	"io"
	"os"
)

// Text produces a string content.
type Text interface {
	// AsString returns the text's content or an error.
	AsString() (string, error)
}

// The TextFunc type is an adapter to allow the use of
// ordinary functions as Text.
type TextFunc func() (string, error)

// AsString calls fn().
func (fn TextFunc) AsString() (string, error) {
	return fn()
}

// TextOf returns a Text with the given literal content.
func TextOf(content string) Text {
	return TextFunc(func() (string, error) {
		return content, nil
	})
}

// Bytes produces a byte content.
type Bytes interface {
	// AsBytes returns the content bytes or an error.
	AsBytes() ([]byte, error)
}

// The BytesFunc type is an adapter to allow the use of
// ordinary functions as Bytes.
type BytesFunc func() ([]byte, error)

// AsBytes calls fn().
func (fn BytesFunc) AsBytes() ([]byte, error) {
	return fn()
}

// BytesOf returns the (UTF-8) bytes of a Text.
// The text is rendered on every AsBytes call.
func BytesOf(text Text) Bytes {
	return BytesFunc(func() ([]byte, error) {
		content, err := text.AsString()
		if err != nil {
			return nil, err
		}

		return []byte(content), nil
	})
}

// Input produces a stream to read content from.
type Input interface {
	// Stream opens and returns a new stream.
	// The caller is responsible for closing it.
	Stream() (io.ReadCloser, error)
}

// The InputFunc type is an adapter to allow the use of
// ordinary functions as Input.
type InputFunc func() (io.ReadCloser, error)

// Stream calls fn().
func (fn InputFunc) Stream() (io.ReadCloser, error) {
	return fn()
}

// InputOf returns an Input streaming the content of src.
func InputOf(src Bytes) Input {
	return InputFunc(func() (io.ReadCloser, error) {
		content, err := src.AsBytes()
		if err != nil {
			return nil, err
		}

		return io.NopCloser(bytes.NewReader(content)), nil
	})
}

// FileInput returns an Input which opens the file located at filePath
// each time a stream is requested.
func FileInput(filePath string) Input {
	return InputFunc(func() (io.ReadCloser, error) {
		return os.Open(filePath)
	})
}

// ReaderInput returns an Input over an already opened [io.Reader].
// The reader is not closed by the returned stream, it remains caller's responsibility.
// If the reader is also an [io.Seeker], it is moved to the beginning each time
// a stream is requested, in case of a re-read needed.
func ReaderInput(reader io.Reader) Input {
	return InputFunc(func() (io.ReadCloser, error) {
		if seekReader, ok := reader.(io.Seeker); ok {
			if _, err := seekReader.Seek(0, io.SeekStart); err != nil {
				return nil, err
			}
		}

		return io.NopCloser(reader), nil
	})
}
