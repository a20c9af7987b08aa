// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avlview/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create the directory if it is missing
// fails if the name exists but is not a directory
func EnsureDirectory(name string) error {
	info, err := os.Stat(name)
	if os.IsNotExist(err) {
		return os.MkdirAll(name, 0700)
	}
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return fault.ErrNotADirectory
	}
	return nil
}

// IsPlainFileName - true for a name without any directory part
func IsPlainFileName(name string) bool {
	return "" != name && filepath.Base(name) == name && "." != name && ".." != name
}
