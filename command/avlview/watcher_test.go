// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlview/background"
	"github.com/bitmark-inc/avlview/fault"
)

const (
	eventTimeout = 5 * time.Second
)

func TestNewFileWatcherErrors(t *testing.T) {
	log := logger.New("test")

	_, err := newFileWatcher("whatever", log, WatcherChannel{})
	assert.Equal(t, fault.ErrWatcherChannelsNotSet, err, "channels")

	dir, err := ioutil.TempDir("", "avlview")
	assert.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	_, err = newFileWatcher(filepath.Join(dir, "absent.conf"), log, newWatcherChannel())
	assert.Equal(t, fault.ErrWatchedFileDoesNotExist, err, "missing file")
}

func TestFileWatcherEvents(t *testing.T) {
	log := logger.New("test")

	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	channels := newWatcherChannel()
	w, err := newFileWatcher(fileName, log, channels)
	assert.Nil(t, err, "new watcher")

	p := background.Start(background.Processes{w}, nil)
	defer p.Stop()

	err = ioutil.WriteFile(fileName, []byte(`return { data_directory = ".", watch = true }`), 0600)
	assert.Nil(t, err, "rewrite configuration")

	select {
	case <-channels.change:
	case <-time.After(eventTimeout):
		t.Fatal("watcher did not send change event")
	}

	err = os.Remove(fileName)
	assert.Nil(t, err, "remove configuration")

	select {
	case <-channels.remove:
	case <-time.After(eventTimeout):
		t.Fatal("watcher did not send remove event")
	}
}

func TestSendEventCoalesces(t *testing.T) {
	log := logger.New("test")

	ch := make(chan struct{}, 1)
	sendEvent(log, ch, "test")
	sendEvent(log, ch, "test") // must not block

	assert.Equal(t, 1, len(ch), "pending events")
}

func TestEventClassification(t *testing.T) {
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "", Op: fsnotify.Write}), "blank name")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")

	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}), "chmod")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
}

func TestRendererRendersOnChange(t *testing.T) {
	log := logger.New("test")

	dir, fileName := writeConfiguration(t, `return { data_directory = ".", tree = { seed = { 1, 2, 3 } } }`)
	defer os.RemoveAll(dir)

	rendered := make(chan *Configuration, 1)
	channels := newWatcherChannel()
	r := newRenderer(fileName, log, channels, func(c *Configuration) error {
		rendered <- c
		return nil
	})

	p := background.Start(background.Processes{r}, nil)
	defer p.Stop()

	channels.remove <- struct{}{} // only logged
	channels.change <- struct{}{}

	select {
	case c := <-rendered:
		assert.Equal(t, []int{1, 2, 3}, c.Tree.Seed, "seed")
	case <-time.After(eventTimeout):
		t.Fatal("renderer did not render")
	}
}
