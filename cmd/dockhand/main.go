package main

import (
	"os"

	"github.com/schmitthub/dockhand/internal/dockhand"
)

func main() {
	os.Exit(dockhand.Main())
}
