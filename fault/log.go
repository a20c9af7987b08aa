// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for messages logged just before the program gives up
var log *logger.L

// Initialise - open the PANIC log channel, logger must be running
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the channel
func Finalise() {
	if nil == log {
		return
	}
	log.Flush()
	log = nil
}

// Criticalf - log a fatal condition, prefixed with the caller's
// file and line
func Criticalf(format string, arguments ...interface{}) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		critical(format, arguments...)
		return
	}
	critical("(%q:%d) %s", file, line, fmt.Sprintf(format, arguments...))
}

// Panic - log then panic with the message
func Panic(message string) {
	critical("%s", message)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// PanicWithError - log then panic with: "<message> failed with error: <err>"
func PanicWithError(message string, err error) {
	Panic(fmt.Sprintf("%s failed with error: %v", message, err))
}

// without a channel the message goes to standard output
func critical(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
