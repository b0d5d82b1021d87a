//go:build tools
// +build tools

// Package tools pins the build, lint, and test tooling in go.mod so that
// go mod tidy keeps their versions.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "golang.org/x/tools/cmd/goimports"
	_ "gotest.tools/gotestsum"
)
