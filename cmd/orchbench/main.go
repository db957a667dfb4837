package main

import (
	"github.com/orchbench/orchbench/cmd/orchbench/cmd"
	"github.com/orchbench/orchbench/internal/common/logging"
)

func main() {
	logging.ConfigureCliLogging()
	cmd.Execute()
}
