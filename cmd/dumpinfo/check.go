package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoskit/ipcskit/dump"
	"github.com/zoskit/ipcskit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <dump-file>",
		Short: "Check whether a file holds a dump dataset copy",
		Long: `The check command reads the front of a file and reports whether it carries
a valid dump header. The exit status is 0 for a dump and 1 for anything else.

Example:
  dumpinfo check slip.dump`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

func runCheck(args []string) error {
	path := args[0]

	cp, err := selectCodePage()
	if err != nil {
		return err
	}

	src, err := dump.OpenFile(path, 0)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	if _, err := dump.ReadHeader(src, cp); err != nil {
		if errors.Is(err, types.ErrNotHeader) {
			return fmt.Errorf("%s is not a dump dataset", path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	printInfo("%s is a dump dataset\n", path)
	return nil
}
