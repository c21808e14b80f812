// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command genconfig writes the example configuration files under deploy/
// from the defaults in package config.
package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/scholarpage/scholarpage/config"
	"codeberg.org/scholarpage/scholarpage/core/audit"
)

const (
	envOutputFile  = "deploy/.env.example"
	yamlOutputFile = "deploy/config.yaml.example"
	filePerm       = 0o644

	envFileHeader = `# scholarpage configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# scholarpage configuration (via configuration file)
#
# Copy this file to config.yaml and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
)

// uncommentedEnv are written active in the .env example.
var uncommentedEnv = map[string]bool{
	"SCHOLARPAGE_HOST": true,
	"SCHOLARPAGE_PORT": true,
}

func main() {
	audit.SetDefaultLogger()

	defaults := &config.ServerConfig{}
	defaults.SetDefaults()

	if err := os.MkdirAll("deploy", 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create deploy directory")
	}

	writeOrDie(envOutputFile, envFile(defaults))

	yamlFile, err := yamlFile(defaults)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	writeOrDie(yamlOutputFile, yamlFile)
}

func writeOrDie(path, contents string) {
	if err := os.WriteFile(path, []byte(contents), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write example file")
	}

	log.Info().Str("path", path).Msg("Generated example file")
}

// envFile lists every env-tagged field of cfg, grouped by section.
func envFile(cfg *config.ServerConfig) string {
	var sb strings.Builder
	sb.WriteString(envFileHeader)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	for i := range typ.NumField() {
		structField := typ.Field(i)
		structValue := val.Field(i)

		if structValue.Kind() != reflect.Struct || structField.Name == "Build" {
			continue
		}

		var section strings.Builder

		innerTyp := structValue.Type()
		for j := range innerTyp.NumField() {
			tag, ok := innerTyp.Field(j).Tag.Lookup("env")
			if !ok {
				continue
			}

			name := strings.Split(tag, ",")[0]
			value := structValue.Field(j)

			switch {
			case uncommentedEnv[name]:
				fmt.Fprintf(&section, "%s=\"%v\"\n", name, value.Interface())
			case value.Kind() == reflect.Slice || (value.Kind() == reflect.String && value.Len() == 0):
				fmt.Fprintf(&section, "# %s=\n", name)
			default:
				fmt.Fprintf(&section, "# %s=%v\n", name, value.Interface())
			}
		}

		if section.Len() == 0 {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n%s\n", structField.Name, section.String())
	}

	return sb.String()
}

// yamlFile renders cfg as YAML with every value commented out.
func yamlFile(cfg *config.ServerConfig) (string, error) {
	var yamlContent strings.Builder

	encoderOpts := []yaml.EncodeOption{
		config.GetDurationEncoderOption(),
		yaml.Indent(2),
	}
	if err := yaml.NewEncoder(&yamlContent, encoderOpts...).Encode(cfg); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	for line := range strings.SplitSeq(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys are section headers.
		if !strings.HasPrefix(line, " ") {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	return sb.String(), nil
}
