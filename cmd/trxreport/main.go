// Package main is the entry point for the trxreport CLI.
package main

import (
	"os"

	"github.com/AleksandrSmirnovB2T/CICD/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
