package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoskit/ipcskit/dump"
)

func init() {
	rootCmd.AddCommand(newHeaderCmd())
}

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header <dump-file>",
		Short: "Decode and display a dump's header record",
		Long: `The header command decodes the header block of a dump dataset and prints
the dump type, source system, timestamp, title, and - for dumps taken by a
running system - the requesting address spaces.

Example:
  dumpinfo header slip.dump
  dumpinfo header svcd.dump --json
  dumpinfo header old.dump --codepage 037`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(args)
		},
	}
	return cmd
}

func runHeader(args []string) error {
	path := args[0]

	cp, err := selectCodePage()
	if err != nil {
		return err
	}

	printVerbose("Opening dump: %s\n", path)

	src, err := dump.OpenFile(path, 0)
	if err != nil {
		return fmt.Errorf("failed to open dump: %w", err)
	}
	defer src.Close()

	h, err := dump.ReadHeader(src, cp)
	if err != nil {
		return fmt.Errorf("failed to decode header: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(h)
	}

	// Text output
	printInfo("\nDump Header:\n")
	printInfo("  Type:    %s\n", h.Type)
	printInfo("  System:  %s\n", h.Sysname)
	printInfo("  Taken:   %s %s\n", h.LocalDate(), h.LocalTime())
	printInfo("  Title:   %s\n", h.Title)
	printInfo("  Dataset: %s\n", h.OriginalDSN)
	printInfo("  z/OS:    V%dR%d\n", h.Version, h.Release)
	printInfo("  CPU:     serial %s, model %s\n", h.SerialNumber, h.ModelNumber)
	if h.Complete {
		printInfo("  Complete dump\n")
	} else {
		printInfo("  Partial dump, SDRSN %s\n", h.SDRSN)
	}

	if r := h.Request; r != nil {
		printInfo("\nRequest:\n")
		printInfo("  Jobname: %s\n", r.Jobname)
		printInfo("  ASIDs:   PASN %s, SASN %s, HASN %s\n", r.Primary, r.Secondary, r.Home)
		printInfo("  SDWA:    %s in ASID %s\n", r.SDWAAddress, r.SDWAASID)
		printInfo("  Blocks:  %d\n", r.Blocks)
		if r.Remote {
			printInfo("  Requested remotely by %s\n", r.RemoteSysname)
		}
	}

	return nil
}
