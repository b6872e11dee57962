package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the presentation settings of an interpreter session,
// typically derived from defaults, an optional YAML file and command-line flags.
type Config struct {
	Banner          string `yaml:"banner"`           // Printed once when the session starts
	Prompt          string `yaml:"prompt"`           // Printed before reading each command (e.g., "Command: ")
	OutputPrefix    string `yaml:"output_prefix"`    // Prefix of PRINT output and BEG prompts (e.g., "SNOL> ")
	ErrorPrefix     string `yaml:"error_prefix"`     // Prefix of every error line (e.g., "SNOL> Error! ")
	InputPrompt     string `yaml:"input_prompt"`     // Printed before reading a BEG value (e.g., "Input: ")
	ExitMessage     string `yaml:"exit_message"`     // Printed when EXIT! ends the session
	EchoAssignments bool   `yaml:"echo_assignments"` // Print "[name] = value" after each assignment
}

// Default returns the settings of the classic SNOL environment.
func Default() *Config {
	return &Config{
		Banner:       "The SNOL environment is now active, you may proceed with giving your commands.",
		Prompt:       "Command: ",
		OutputPrefix: "SNOL> ",
		ErrorPrefix:  "SNOL> Error! ",
		InputPrompt:  "Input: ",
		ExitMessage:  "Interpreter is now terminated...",
	}
}

// Quiet returns a copy of c without banner, prompts and exit message,
// which is what piped scripts usually want.
func (c *Config) Quiet() *Config {
	q := *c
	q.Banner = ""
	q.Prompt = ""
	q.InputPrompt = ""
	q.ExitMessage = ""
	return &q
}

// Load reads a YAML file on top of the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()
	return decode(file, absPath)
}

// Parse decodes YAML settings from data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	return decode(bytes.NewReader(data), "<input>")
}

func decode(r io.Reader, name string) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %s is empty", name)
		}
		return nil, fmt.Errorf("config: parse %s: %w", name, err)
	}
	return cfg, nil
}
