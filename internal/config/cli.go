// Package config defines the command-line surface of the inputframe binary.
package config

import "github.com/Alia5/inputframe/internal/cmd"

// Log configures the process logger and the frame trace log.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"INPUTFRAME_LOG_LEVEL"`
	File    string `help:"Also write logs to this file (console output moves to stderr)" env:"INPUTFRAME_LOG_FILE"`
	RawFile string `help:"Write a hex dump of every frame to this file" env:"INPUTFRAME_LOG_RAW_FILE"`
}

// CLI is the root kong command.
type CLI struct {
	Config string `help:"Configuration file (json, yaml or toml)" type:"path" env:"INPUTFRAME_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Replay    cmd.Replay        `cmd:"" help:"Feed a scenario or recording through the input core and print snapshots"`
	Watch     cmd.Watch         `cmd:"" help:"Show live input state for this terminal"`
	Record    cmd.Record        `cmd:"" help:"Record terminal input for later replay"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
