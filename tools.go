//go:build tools
// +build tools

package noam

import (
	_ "golang.org/x/tools/cmd/stringer"
)
