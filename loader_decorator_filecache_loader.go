// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops

import (
	"io"
	"io/fs"
	"os"
	"sync"
	"time"
)

// FileCacheLoader loads Properties from a properties file, parsing it only
// if it was modified. Unlike [PropertyMapLoader], which reads its source once for good,
// it picks up changes of the file, while avoiding to re-parse an unchanged one.
type FileCacheLoader struct {
	input    Input        // file input, see FileInput.
	filePath string       // file's path, used if the stream cannot stat itself.
	options  parseOptions // grammar settings.
	cache    *fileCache   // cache storage.
}

// NewFileCacheLoader instantiates a new FileCacheLoader object for given properties file.
// Options are the ones of [PropertiesFileLoader].
func NewFileCacheLoader(filePath string, opts ...ParseOption) FileCacheLoader {
	return FileCacheLoader{
		input:    FileInput(filePath),
		filePath: filePath,
		options:  newParseOptions(ISO88591, opts),
		cache:    new(fileCache),
	}
}

// Load returns the file's properties.
// The file is opened on each call, and its modification time is checked on the opened handle.
// If the file was modified since last load, its content is read and parsed again,
// if not, a copy of previous, already parsed, properties is returned.
// A failed load does not alter the cache.
func (loader FileCacheLoader) Load() (Properties, error) {
	return readStream(loader.input, func(stream io.Reader) (Properties, error) {
		fInfo, err := loader.stat(stream)
		if err != nil {
			return nil, err
		}
		fModifiedAt := fInfo.ModTime()

		if props := loader.cache.load(fModifiedAt); props != nil {
			return props, nil
		}

		content, err := io.ReadAll(stream)
		if err != nil {
			return nil, err
		}
		props, err := parseProperties(content, loader.options)
		if err != nil {
			return nil, err
		}

		loader.cache.save(props, fModifiedAt)

		return props, nil
	})
}

// stat returns the opened file's info, so that content and modification time belong to the same file.
func (loader FileCacheLoader) stat(stream io.Reader) (fs.FileInfo, error) {
	if f, ok := stream.(interface{ Stat() (fs.FileInfo, error) }); ok {
		return f.Stat()
	}

	return os.Stat(loader.filePath)
}

// fileCache holds caching info.
type fileCache struct {
	props        Properties   // cached properties.
	lastModified time.Time    // file's last modified time.
	mu           sync.RWMutex // concurrency semaphore
}

// save stores a copy of properties and file's last modified time.
func (cache *fileCache) save(props Properties, lastModified time.Time) {
	cache.mu.Lock()
	cache.props = props.Clone()
	cache.lastModified = lastModified
	cache.mu.Unlock()
}

// load retrieves a copy of properties, if file was not modified since they were saved.
func (cache *fileCache) load(currentLastModified time.Time) Properties {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	if cache.props != nil && currentLastModified.Equal(cache.lastModified) {
		return cache.props.Clone()
	}

	return nil
}
