//go:build tools

// Package tools pins the linters used on the inquire module.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
