package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mofminer/oxfeat/internal/structure"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect STRUCTURE",
	Short: "Parse a structure file and list its sites",
	Long: "Inspect runs the same precheck parse the featurize pipeline uses and\n" +
		"prints the lattice and site table, marking metal sites.",
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := structure.Read(args[0])
	if err != nil {
		return err
	}

	lengths := s.Lattice.Lengths()
	fmt.Fprintf(cmd.OutOrStdout(), "lattice: a=%.4f b=%.4f c=%.4f volume=%.2f A^3\n",
		lengths[0], lengths[1], lengths[2], s.Lattice.Volume())

	_, metalIdx := s.MetalSites()
	metal := make(map[int]bool, len(metalIdx))
	for _, i := range metalIdx {
		metal[i] = true
	}

	for i, site := range s.Sites {
		mark := " "
		if metal[i] {
			mark = "M"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%3d %s %-6s %-3s frac=(%.4f %.4f %.4f) occ=%.2f\n",
			i, mark, site.Label, site.Symbol, site.Frac[0], site.Frac[1], site.Frac[2], site.Occupancy)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d sites, %d metal\n", len(s.Sites), len(metalIdx))
	return nil
}
