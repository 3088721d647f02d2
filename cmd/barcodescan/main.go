// Command barcodescan detects and decodes 2-D barcodes in image files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gobarcode/core/cmd/barcodescan/cmd"
)

var gitsha = "dev"

func main() {
	if err := cmd.NewRoot(context.Background(), gitsha).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
