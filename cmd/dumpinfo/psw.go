package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoskit/ipcskit/hex"
	"github.com/zoskit/ipcskit/psw"
)

func init() {
	rootCmd.AddCommand(newPSWCmd())
}

func newPSWCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "psw <value>",
		Short: "Decode a program status word",
		Long: `The psw command decodes a 64-bit PSW, or the raw 128-bit form which is
folded into 64 bits first, and prints the machine state it describes.

Example:
  dumpinfo psw 070C3000854387AA
  dumpinfo psw 07042000800000000000000012345678 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPSW(args)
		},
	}
	return cmd
}

func runPSW(args []string) error {
	v, err := hex.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse PSW value: %w", err)
	}

	scrunched, err := psw.Scrunch(v)
	if err != nil {
		return fmt.Errorf("failed to fold PSW: %w", err)
	}
	info, err := psw.Parse(scrunched)
	if err != nil {
		return fmt.Errorf("failed to decode PSW: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(info)
	}

	// Text output
	printInfo("\nPSW %s:\n", scrunched)
	printInfo("  Interrupts: %s\n", info.Enabled)
	printInfo("  Key:        %d\n", info.Key)
	printInfo("  State:      %s\n", stateName(info.Privileged))
	printInfo("  ASC mode:   %s\n", info.ASC)
	printInfo("  CC:         %d\n", info.CC)
	if info.AMode == 0 {
		printInfo("  AMode:      invalid\n")
	} else {
		printInfo("  AMode:      %d-bit\n", info.AMode)
	}
	printInfo("  Address:    %s\n", info.InstrAddr)

	return nil
}

func stateName(privileged bool) string {
	if privileged {
		return "supervisor"
	}
	return "problem"
}
