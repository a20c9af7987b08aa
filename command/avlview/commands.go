// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlview/export"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "print", "p", "start", "run":
		return false // continue processing

	case "insert", "i", "add", "remove", "r", "delete", "check", "c", "watch", "w":
		return false // defer processing until configuration is read

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  print                      (run)    - build the configured tree and render it\n")
		fmt.Printf("                                        same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  insert KEY...              (i)      - insert extra keys after the configured\n")
		fmt.Printf("                                        operations, then render\n")
		fmt.Printf("\n")

		fmt.Printf("  remove KEY...              (r)      - remove keys after the configured\n")
		fmt.Printf("                                        operations, then render\n")
		fmt.Printf("\n")

		fmt.Printf("  check                      (c)      - build the tree and verify its structure\n")
		fmt.Printf("\n")

		fmt.Printf("  watch                      (w)      - render, then render again whenever the\n")
		fmt.Printf("                                        configuration file changes\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	return true
}

// configuration command handler
//
// commands that only need the configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "print"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson("configuration", options)
		return true

	default:
		return false
	}
}

// tree command handler
//
// commands that build a tree, returns true if the program should
// keep running to watch for configuration changes
func processTreeCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "print"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "print", "p", "start", "run":
		if err := render(log, options, nil); nil != err {
			exitwithstatus.Message("render error: %s", err)
		}
		return options.Watch

	case "insert", "i", "add":
		operations, err := makeOperations(opInsert, arguments)
		if nil != err {
			exitwithstatus.Message("insert error: %s", err)
		}
		if err := render(log, options, operations); nil != err {
			exitwithstatus.Message("render error: %s", err)
		}

	case "remove", "r", "delete":
		operations, err := makeOperations(opRemove, arguments)
		if nil != err {
			exitwithstatus.Message("remove error: %s", err)
		}
		if err := render(log, options, operations); nil != err {
			exitwithstatus.Message("render error: %s", err)
		}

	case "check", "c":
		if err := check(log, os.Stdout, options); nil != err {
			exitwithstatus.Message("check error: %s", err)
		}

	case "watch", "w":
		if err := render(log, options, nil); nil != err {
			exitwithstatus.Message("render error: %s", err)
		}
		return true

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	return false
}

// build the tree and write it to the configured output
func render(log *logger.L, options *Configuration, extra []Operation) error {

	tree, err := buildTree(log, &options.Tree, extra)
	if nil != err {
		return err
	}

	var handle io.Writer = os.Stdout
	if "" != options.Output.File {
		fh, err := os.Create(options.Output.File)
		if nil != err {
			return err
		}
		defer fh.Close()
		handle = fh
	}

	log.Infof("render: %d nodes as: %s", tree.Count(), options.Output.Format)
	return export.Write(handle, tree, options.Output.Format, options.Output.Layout)
}

// build the tree and verify it
func check(log *logger.L, handle io.Writer, options *Configuration) error {

	tree, err := buildTree(log, &options.Tree, nil)
	if nil != err {
		return err
	}
	if err := tree.Check(); nil != err {
		log.Errorf("check failed: %s", err)
		return err
	}

	r := tree.Rotations()
	fmt.Fprintf(handle, "nodes: %d\n", tree.Count())
	fmt.Fprintf(handle, "height: %d\n", tree.Height())
	fmt.Fprintf(handle, "rotations: left: %d  right: %d\n", r.Left, r.Right)
	fmt.Fprintf(handle, "keys: %v\n", tree.Keys())
	fmt.Fprintf(handle, "check: ok\n")
	return nil
}

// print out json
func printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("%s: error: %s", title, err)
	}
	fmt.Printf("%s\n", b)
}
