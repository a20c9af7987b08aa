// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlview/fault"
	"github.com/bitmark-inc/avlview/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/base/file.txt", util.EnsureAbsolute("/base", "file.txt"), "relative")
	assert.Equal(t, "/base/sub/file.txt", util.EnsureAbsolute("/base", "sub/../sub/file.txt"), "cleaned")
	assert.Equal(t, "/other/file.txt", util.EnsureAbsolute("/base", "/other/file.txt"), "already absolute")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	sub := filepath.Join(dir, "a", "b")
	assert.False(t, util.EnsureFileExists(sub), "not yet created")
	assert.Nil(t, util.EnsureDirectory(sub), "create")
	assert.True(t, util.EnsureFileExists(sub), "created")
	assert.Nil(t, util.EnsureDirectory(sub), "already present")

	file := filepath.Join(dir, "plain")
	assert.Nil(t, ioutil.WriteFile(file, []byte("x"), 0600), "write file")
	assert.Equal(t, fault.ErrNotADirectory, util.EnsureDirectory(file), "file in the way")
}

func TestIsPlainFileName(t *testing.T) {
	assert.True(t, util.IsPlainFileName("avlview.log"), "plain")
	assert.False(t, util.IsPlainFileName("log/avlview.log"), "has directory")
	assert.False(t, util.IsPlainFileName(""), "empty")
	assert.False(t, util.IsPlainFileName(".."), "parent")
}
