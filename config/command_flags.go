// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "flag"

const defaultConfigFilePath = "./config.yaml"

var configFilePathFlag string

// parseCommandLineArgs registers and parses flags, returning the value of -config.
func parseCommandLineArgs() string {
	if flag.Lookup("config") == nil {
		flag.StringVar(&configFilePathFlag, "config", defaultConfigFilePath, "Path to a scholarpage configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	return configFilePathFlag
}
