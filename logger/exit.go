// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package logger

import "os"

// ExitWithError terminates the process with the given code. It is meant to be
// deferred from main so that other deferred cleanups run before the exit.
func ExitWithError(exitCode *int) {
	os.Exit(*exitCode)
}
