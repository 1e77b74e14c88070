// Command procmine discovers a process tree from a plain-text event log
// using the Inductive Miner — Directly-Follows algorithm.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/procmine/procmine/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("procmine failed")
		os.Exit(1)
	}
}
