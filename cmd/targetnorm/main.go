// cmd/targetnorm/main.go
package main

import (
	"os"

	"targetnorm/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
