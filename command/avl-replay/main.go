// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotavl/fault"
	"github.com/bitmark-inc/slotavl/replay"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--print] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	if verbose {
		masterConfiguration.Logging.Console = true
	}
	printTrees := masterConfiguration.PrintTrees || len(options["print"]) > 0

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// stop the replay early on a signal
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := cancelOnSignal(cancel, log)
	defer stop()

	totals := replay.Totals{}
	outcomes, err := replay.RunAll(ctx, masterConfiguration.Trees, logger.New("replay"), &totals)
	if nil != err {
		log.Errorf("replay failed: %s", err)
		fault.Criticalf("replay failed: %s", err)
		exitwithstatus.Message("%s: replay failed: %s", program, err)
	}

	for _, o := range outcomes {
		if printTrees {
			fmt.Printf("tree: %s\n", o.Name)
			depth := o.Tree.Print(os.Stdout)
			fmt.Printf("depth: %d\n\n", depth)
		}
		fmt.Printf("%-16s inserted: %6d  duplicates: %6d  removed: %6d  missing: %6d  rejected: %6d  count: %6d  height: %3d\n",
			o.Name, o.Inserted, o.Duplicates, o.Removed, o.Missing, o.Rejected, o.Count, o.Tree.Height())
	}

	fmt.Printf("trees: %d  inserted: %d  duplicates: %d  removed: %d  missing: %d  rejected: %d\n",
		totals.Scripts.Uint64(),
		totals.Inserted.Uint64(),
		totals.Duplicates.Uint64(),
		totals.Removed.Uint64(),
		totals.Missing.Uint64(),
		totals.Rejected.Uint64(),
	)
	log.Infof("trees: %d  inserted: %d  removed: %d", totals.Scripts.Uint64(), totals.Inserted.Uint64(), totals.Removed.Uint64())
}
