// Package config defines configuration for the lineprogress command.
//
// Configuration can be provided via:
//   - Command-line flags
//   - YAML configuration file (--config)
//
// Flags win over the file, and the file wins over Default.
//
// # Example
//
//	label: Copying files
//	steps: 200
//	delay: 25ms
//	format: "[#]"
//	status_format: "⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏"
//	width: 0
package config
