// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/bitmark-inc/avlview/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if 0 != c1.Uint64() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	for i := 1; i <= 5; i += 1 {
		if n := c1.Increment(); uint64(i) != n {
			t.Errorf("increment returned: %d  expected: %d", n, i)
		}
	}

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}
}

// test that reset returns the old value and clears the counter
func TestReset(t *testing.T) {

	var c counter.Counter

	for i := 0; i < 7; i += 1 {
		c.Increment()
	}

	if n := c.Reset(); 7 != n {
		t.Errorf("reset returned: %d  expected: 7", n)
	}
	if 0 != c.Uint64() {
		t.Errorf("counter is not zero after reset: %d", c.Uint64())
	}
}
