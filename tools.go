//go:build tools

package decnum

import (
	_ "golang.org/x/tools/cmd/stringer"
)
