// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. Settings here are
// ambient only (logging); the task file location is fixed by the program.
package config
