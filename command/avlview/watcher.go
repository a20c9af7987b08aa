// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avlview/fault"
	"github.com/bitmark-inc/avlview/util"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
	rendererLoggerPrefix    = "renderer"
)

// WatcherChannel - events sent from the watcher to the renderer
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// FileWatcher - background process forwarding file system events for
// a single file
type FileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	channels WatcherChannel
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channels WatcherChannel) (*FileWatcher, error) {
	if nil == channels.change || nil == channels.remove {
		return nil, fault.ErrWatcherChannelsNotSet
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrWatchedFileDoesNotExist
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	if err := watcher.Add(filePath); nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
	}, nil
}

// Run - forward events until shutdown
func (w *FileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	defer w.watcher.Close()

	log.Infof("watching: %s", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			log.Errorf("watcher error: %v", err)

		case event := <-w.watcher.Events:
			log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				log.Debugf("file %s not match, discard event", event.Name)
				continue loop
			}

			if watcherEventFileRemove(event) {
				// editors often replace the file by renaming a new one over it
				if err := w.watcher.Add(w.filePath); nil == err {
					log.Info("file replaced, sending change event…")
					sendEvent(log, w.channels.change, "change")
					continue loop
				}
				log.Warnf("file %s removed", w.filePath)
				sendEvent(log, w.channels.remove, "remove")
				continue loop
			}

			if watcherEventFileChange(event) {
				log.Info("sending change event…")
				sendEvent(log, w.channels.change, "change")
			}
		}
	}

	log.Info("stopped")
}

// events are coalesced: if one is already pending the new one is dropped
func sendEvent(log *logger.L, ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return "" == event.Name ||
		event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}

// Renderer - background process that rebuilds and renders the tree
// each time the configuration file changes
type Renderer struct {
	log      *logger.L
	fileName string
	channels WatcherChannel
	render   func(*Configuration) error
}

func newRenderer(fileName string, log *logger.L, channels WatcherChannel, render func(*Configuration) error) *Renderer {
	return &Renderer{
		log:      log,
		fileName: fileName,
		channels: channels,
		render:   render,
	}
}

// Run - render on each change until shutdown
func (r *Renderer) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.channels.remove:
			log.Warnf("configuration: %s was removed, keeping last output", r.fileName)

		case <-r.channels.change:
			theConfiguration, err := getConfiguration(r.fileName)
			if nil != err {
				log.Errorf("configuration: %s  error: %s", r.fileName, err)
				continue loop
			}
			if err := r.render(theConfiguration); nil != err {
				log.Errorf("render error: %s", err)
				continue loop
			}
			log.Info("rendered")
		}
	}

	log.Info("stopped")
}
