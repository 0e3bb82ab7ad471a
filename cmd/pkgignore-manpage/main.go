package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pkgignore/cmd/pkgignore"
	"github.com/arthur-debert/pkgignore/internal/version"
)

func main() {
	rootCmd := pkgignore.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PKGIGNORE",
		Section: "1",
		Source:  "pkgignore " + version.Version,
		Manual:  "pkgignore manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
