// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlview/avl"
	"github.com/bitmark-inc/avlview/fault"
)

// operation names
const (
	opInsert = "insert"
	opRemove = "remove"
)

func validOperation(op string) bool {
	return opInsert == op || opRemove == op
}

// build a tree from the seed keys followed by the operations
//
// a node limit that is exceeded is reported as an error instead of
// aborting the program, any other panic is passed on
func buildTree(log *logger.L, t *TreeType, extra []Operation) (tree *avl.Tree, err error) {

	defer func() {
		if r := recover(); nil != r {
			if !isAllocationFailure(r) {
				panic(r)
			}
			log.Errorf("build aborted: %v", r)
			tree = nil
			err = fault.ErrNodeAllocationFailed
		}
	}()

	tree = avl.NewLimited(t.MaximumNodes)

	for _, key := range t.Seed {
		if !tree.Insert(key) {
			log.Debugf("seed: duplicate key: %d", key)
		}
	}
	log.Infof("seeded: %d keys  height: %d  rotations: %+v", tree.Count(), tree.Height(), tree.Rotations())

	operations := make([]Operation, 0, len(t.Operations)+len(extra))
	operations = append(operations, t.Operations...)
	operations = append(operations, extra...)

	for _, o := range operations {
		if err := apply(log, tree, o); nil != err {
			return nil, err
		}
	}

	return tree, nil
}

// true for the panic raised by fault.PanicWithError for an exhausted
// node allocator
func isAllocationFailure(r interface{}) bool {
	s, ok := r.(string)
	return ok && strings.HasSuffix(s, "failed with error: "+fault.ErrNodeAllocationFailed.Error())
}

// apply one operation, absent or duplicate keys leave the tree unchanged
func apply(log *logger.L, tree *avl.Tree, o Operation) error {
	before := tree.Rotations()
	changed := false

	switch o.Op {
	case opInsert:
		changed = tree.Insert(o.Key)
	case opRemove:
		changed = tree.Delete(o.Key)
	default:
		log.Errorf("operation: %q  key: %d  error: %s", o.Op, o.Key, fault.ErrUnknownOperation)
		return fault.ErrUnknownOperation
	}

	after := tree.Rotations()
	log.Infof("%s %d  changed: %t  left rotations: %d  right rotations: %d",
		o.Op, o.Key, changed,
		after.Left-before.Left, after.Right-before.Right)
	return nil
}

// convert command arguments to operations
func makeOperations(op string, arguments []string) ([]Operation, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingKeys
	}
	operations := make([]Operation, 0, len(arguments))
	for _, a := range arguments {
		key, err := strconv.Atoi(a)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		operations = append(operations, Operation{
			Op:  op,
			Key: key,
		})
	}
	return operations, nil
}
