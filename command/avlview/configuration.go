// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlview/configuration"
	"github.com/bitmark-inc/avlview/export"
	"github.com/bitmark-inc/avlview/fault"
	"github.com/bitmark-inc/avlview/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlview.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultFormat = export.ASCII
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}

	// the tree used to demonstrate every rotation case
	defaultSeed = []int{40, 20, 50, 10, 30, 5, 25, 27}
)

// Operation - a single change applied after the seed keys
type Operation struct {
	Op  string `gluamapper:"op" json:"op"`
	Key int    `gluamapper:"key" json:"key"`
}

// TreeType - how the tree is built
type TreeType struct {
	Seed         []int       `gluamapper:"seed" json:"seed"`
	Operations   []Operation `gluamapper:"operations" json:"operations"`
	MaximumNodes int         `gluamapper:"maximum_nodes" json:"maximum_nodes"`
}

// OutputType - how the tree is rendered
type OutputType struct {
	Format string          `gluamapper:"format" json:"format"`
	File   string          `gluamapper:"file" json:"file"`
	Layout export.Geometry `gluamapper:"layout" json:"layout"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Tree          TreeType             `gluamapper:"tree" json:"tree"`
	Output        OutputType           `gluamapper:"output" json:"output"`
	Watch         bool                 `gluamapper:"watch" json:"watch"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	// absolute path of the file this was read from
	fileName string
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Tree: TreeType{
			Seed:         nil, // filled from defaultSeed if not set
			Operations:   nil,
			MaximumNodes: 0,
		},

		Output: OutputType{
			Format: defaultFormat,
			File:   "", // standard output
			Layout: export.DefaultGeometry(),
		},

		Watch: false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},

		fileName: configurationFileName,
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// a list in the file replaces the default entirely,
	// an empty list gives an empty starting tree
	if nil == options.Tree.Seed {
		options.Tree.Seed = append([]int{}, defaultSeed...)
	}

	if options.Tree.MaximumNodes < 0 {
		options.Tree.MaximumNodes = 0
	}

	for i := range options.Tree.Operations {
		op := strings.ToLower(strings.TrimSpace(options.Tree.Operations[i].Op))
		if !validOperation(op) {
			return nil, fault.ErrUnknownOperation
		}
		options.Tree.Operations[i].Op = op
	}

	options.Output.Format = strings.ToLower(strings.TrimSpace(options.Output.Format))
	if "" == options.Output.Format {
		options.Output.Format = defaultFormat
	}
	if !export.ValidFormat(options.Output.Format) {
		return nil, fault.ErrInvalidOutputFormat
	}

	if options.Output.Layout.Shrink <= 0 || options.Output.Layout.Shrink > 1 {
		options.Output.Layout.Shrink = export.DefaultGeometry().Shrink
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Output.File,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// log file must be a simple name, it is placed in the log directory
	if !util.IsPlainFileName(options.Logging.File) {
		return nil, fault.ErrNotAPlainFileName
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
