package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/collections/tree/avl"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		seed int64
		num  int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Build an AVL tree from keys inserted in a random order and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if num < 0 {
				return fmt.Errorf("number of nodes must not be negative, got %d", num)
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			tr := avl.BuildRandom(num, seed)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "seed:", seed)
			fmt.Fprintln(out, "inorder:", tr.ToSlice())
			fmt.Fprintln(out, "tree:")
			fmt.Fprint(out, tr.String())
			fmt.Fprintln(out, "height:", tr.Height(), "bound:", avl.MaxHeight(num))
			fmt.Fprintln(out, "valid:", tr.Valid())

			return nil
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().IntVarP(&num, "num", "n", 10, "number of nodes in the tree")

	return cmd
}
