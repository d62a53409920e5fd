// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/rim/emulator"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "rim <program.rim>",
		Short:        "Run a rim program image",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			emu := emulator.NewEmulator(nil)

			inf, err := os.Open(args[0])
			if err != nil {
				return err
			}

			// The file is not held past the load phase.
			err = emu.Load(inf)
			inf.Close()
			if err != nil {
				return err
			}

			return emu.Run()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
