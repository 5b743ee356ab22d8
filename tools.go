//go:build tools

package tools

// Tracks CLI tool dependencies so `go mod tidy` keeps their versions.
import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
