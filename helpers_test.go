// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import "strconv"

func itoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
