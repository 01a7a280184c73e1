// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops_test

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/actforgood/xprops"
)

func TestFileCacheLoader(t *testing.T) {
	t.Parallel()

	t.Run("success - properties are loaded from cache", testFileCacheLoaderSuccess)
	t.Run("error - file not found", testFileCacheLoaderWithNotFoundFile)
	t.Run("error - invalid content", testFileCacheLoaderWithInvalidFileContent)
	t.Run("error - failed load keeps cache", testFileCacheLoaderKeepsCacheOnError)
	t.Run("success - safe-mutable properties", testFileCacheLoaderReturnsSafeMutableProperties)
	t.Run("success - parse options are applied", testFileCacheLoaderWithParseOptions)
}

func testFileCacheLoaderSuccess(t *testing.T) {
	t.Parallel()

	// arrange
	// setup a file for which we will play with its modification time.
	filePath, err := setUpTmpFile("xprops-filecacheloader-*.properties", "foo=bar\n")
	if err != nil {
		t.Fatal("prerequisite failed:", err)
	}
	defer tearDownTmpFile(filePath)
	fInfo, err := os.Stat(filePath)
	if err != nil {
		t.Fatal("prerequisite failed:", err)
	}
	modifiedAt := fInfo.ModTime()
	subject := xprops.NewFileCacheLoader(filePath)

	// act & assert - first time content should be parsed from file
	props, err := subject.Load()
	requireNil(t, err)
	assertEqual(t, xprops.Properties{"foo": "bar"}, props)

	// change content, but keep modification time
	if err := writeToFile(filePath, "foo=baz\nyear=2022\n"); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(filePath, modifiedAt, modifiedAt); err != nil {
		t.Fatal(err)
	}

	// act & assert - second time result should be taken from cache
	props, err = subject.Load()
	requireNil(t, err)
	assertEqual(t, xprops.Properties{"foo": "bar"}, props)

	// mark the file as modified
	modifiedAt = modifiedAt.Add(2 * time.Second)
	if err := os.Chtimes(filePath, modifiedAt, modifiedAt); err != nil {
		t.Fatal(err)
	}

	// act & assert - third time result should be reloaded
	props, err = subject.Load()
	requireNil(t, err)
	assertEqual(t, xprops.Properties{"foo": "baz", "year": "2022"}, props)
}

func testFileCacheLoaderWithNotFoundFile(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xprops.NewFileCacheLoader("/this/path/does/not/exist/1234.properties")

	// act
	props, err := subject.Load()

	// assert
	assertTrue(t, errors.Is(err, os.ErrNotExist))
	assertNil(t, props)
}

func testFileCacheLoaderWithInvalidFileContent(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xprops.NewFileCacheLoader(propertiesFilePath + invalidFileExt)

	// act
	props, err := subject.Load()

	// assert
	assertNotNil(t, err)
	assertNil(t, props)
}

func testFileCacheLoaderKeepsCacheOnError(t *testing.T) {
	t.Parallel()

	// arrange
	filePath, err := setUpTmpFile("xprops-filecacheloader-err-*.properties", "foo=bar\n")
	if err != nil {
		t.Fatal("prerequisite failed:", err)
	}
	defer tearDownTmpFile(filePath)
	fInfo, err := os.Stat(filePath)
	if err != nil {
		t.Fatal("prerequisite failed:", err)
	}
	modifiedAt := fInfo.ModTime()
	subject := xprops.NewFileCacheLoader(filePath)

	props, err := subject.Load()
	requireNil(t, err)
	assertEqual(t, xprops.Properties{"foo": "bar"}, props)

	// break the file
	if err := writeToFile(filePath, "foo=\\uZZZZ\n"); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(filePath, modifiedAt.Add(time.Second), modifiedAt.Add(time.Second)); err != nil {
		t.Fatal(err)
	}

	// act & assert - invalid content is reported
	props, err = subject.Load()
	assertNotNil(t, err)
	assertNil(t, props)

	// restore previous modification time
	if err := os.Chtimes(filePath, modifiedAt, modifiedAt); err != nil {
		t.Fatal(err)
	}

	// act & assert - previously parsed properties are still cached
	props, err = subject.Load()
	assertNil(t, err)
	assertEqual(t, xprops.Properties{"foo": "bar"}, props)
}

func testFileCacheLoaderReturnsSafeMutableProperties(t *testing.T) {
	t.Parallel()

	// arrange
	subject := xprops.NewFileCacheLoader(propertiesFilePath)

	// act
	props1, err1 := subject.Load()

	// assert
	assertNil(t, err1)
	assertEqual(t, propertiesFileProps, props1)

	// modify first returned value, expect second returned value to be initial one.
	props1["properties_foo"] = "test filecache string"
	props1["properties_another_key"] = "some value"

	// act
	props2, err2 := subject.Load()

	// assert
	assertNil(t, err2)
	assertEqual(t, propertiesFileProps, props2)
}

func testFileCacheLoaderWithParseOptions(t *testing.T) {
	t.Parallel()

	// arrange
	filePath, err := setUpTmpFile("xprops-filecacheloader-opts-*.properties", "name=été\nref=${name}\n")
	if err != nil {
		t.Fatal("prerequisite failed:", err)
	}
	defer tearDownTmpFile(filePath)
	subject := xprops.NewFileCacheLoader(filePath, xprops.WithEncoding(xprops.UTF8), xprops.WithExpansion())

	// act
	props, err := subject.Load()

	// assert
	assertNil(t, err)
	assertEqual(t, xprops.Properties{"name": "été", "ref": "été"}, props)
}

func TestFileCacheLoader_concurrency(t *testing.T) {
	t.Parallel()

	// arrange
	// setup a file for which we will play with its modification time.
	filePath, err := setUpTmpFile("xprops-filecacheloader-concurrency-*.properties", "foo=bar\n")
	if err != nil {
		t.Fatal("prerequisite failed:", err)
	}
	defer tearDownTmpFile(filePath)

	// have a goroutine that constantly modifies the file
	stopModify, stoppedModify := make(chan struct{}, 1), make(chan struct{}, 1)
	var modifiedCnt uint32
	go func(fPath string, stop <-chan struct{}, stopped chan<- struct{}) {
		for {
			select {
			case <-stop: // stop this goroutine
				close(stopped)

				return
			default:
				content := "foo=bar_" + strconv.FormatInt(time.Now().UnixNano(), 10) + "\n"
				_ = writeToFile(fPath, content)

				// make a pause, let Load() also take from cache.
				time.Sleep(time.Millisecond)
				atomic.AddUint32(&modifiedCnt, 1)
			}
		}
	}(filePath, stopModify, stoppedModify)

	subject := xprops.NewFileCacheLoader(filePath)
	goroutinesNo := 200
	var wg sync.WaitGroup

	// act & assert
	for range goroutinesNo {
		wg.Add(1)
		go func(loader xprops.Loader, waitGr *sync.WaitGroup) {
			defer waitGr.Done()

			// trigger load while another goroutine may modify the underlying file
			for range 50 {
				props, err := loader.Load()
				if assertNil(t, err) {
					assertTrue(t, len(props) <= 1)
				}
			}
		}(subject, &wg)
	}

	wg.Wait()         // wait for Loading goroutines to finish
	close(stopModify) // trigger file modification goroutine to stop
	<-stoppedModify   // wait for file modification goroutine to stop
	// print some stats
	t.Logf(
		"%d goroutines loaded for 50 times each a file that was modified for %d times",
		goroutinesNo,
		atomic.LoadUint32(&modifiedCnt),
	)
}

func BenchmarkFileCacheLoader(b *testing.B) {
	subject := xprops.NewFileCacheLoader(propertiesFilePath)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_, err := subject.Load()
		if err != nil {
			b.Error(err)
		}
	}
}

func ExampleFileCacheLoader() {
	var (
		filePath = "testdata/config.properties"
		loader   = xprops.NewFileCacheLoader(filePath)
		props xprops.Properties
		err   error
	)

	for range 3 {
		// 1st time the file will be parsed,
		// 2nd and 3rd time, properties will be retrieved from cache.
		props, err = loader.Load()
		if err != nil {
			panic(err)
		}
	}

	for key, value := range props {
		fmt.Println(key+":", value)
	}

	// Unordered output:
	// properties_foo: bar
	// properties_baz: bar
	// properties_year: 2022
	// properties_temperature: 37.5
	// properties_fruits: apple, banana
}
