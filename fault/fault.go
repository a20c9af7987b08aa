// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrInvalidBranch           = InvalidError("branch must be L or R")
	ErrInvalidDataDirectory    = InvalidError("data directory is invalid")
	ErrInvalidKey              = InvalidError("key is not an integer")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidOutputFormat     = InvalidError("output format is not supported")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrMissingKeys             = LengthError("missing key arguments")
	ErrNodeAllocationFailed    = ProcessError("node allocation failed")
	ErrNotAPlainFileName       = InvalidError("file name must not contain a path")
	ErrNotADirectory           = InvalidError("path is not a directory")
	ErrTreeCountMismatch       = RecordError("tree node count does not match")
	ErrTreeHeightIncorrect     = RecordError("tree node height is incorrect")
	ErrTreeOutOfOrder          = RecordError("tree keys are out of order")
	ErrTreeUnbalanced          = RecordError("tree is not balanced")
	ErrUnknownOperation        = InvalidError("unknown tree operation")
	ErrWatchedFileDoesNotExist = NotFoundError("watched file does not exist")
	ErrWatcherChannelsNotSet   = InvalidError("watcher channels are not set")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
