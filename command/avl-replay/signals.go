// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
)

// call cancel on SIGINT or SIGTERM
//
// the returned stop function releases the signals and waits for the
// watching goroutine to exit
func cancelOnSignal(cancel context.CancelFunc, log *logger.L) func() {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer close(done)
		sig, ok := <-ch
		if ok {
			if nil != log {
				log.Infof("received signal: %v", sig)
			}
			cancel()
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
		<-done
	}
}
