package main

import (
	"fmt"
	"strings"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/listing"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/taxonomy"
	"github.com/spf13/cobra"
)

var showAll bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.taxonomy.Refresh(cmd.Context()); err != nil {
			return err
		}
		tree := a.taxonomy.Tree()
		cats := taxonomy.FirstN(tree, a.cfg.NavCompactSize)
		if showAll {
			cats = taxonomy.All(tree)
		}
		out := cmd.OutOrStdout()
		for _, c := range cats {
			fmt.Fprintln(out, c.Name)
			for _, s := range c.Subcategories {
				fmt.Fprintf(out, "  %s\n", s)
			}
		}
		if !showAll && len(cats) < tree.Len() {
			fmt.Fprintf(out, "(%d more, use --all)\n", tree.Len()-len(cats))
		}
		return nil
	},
}

var listingsCmd = &cobra.Command{
	Use:   "listings",
	Short: "Print the listing page, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		tree := a.taxonomy.Degraded(cmd.Context())
		props := listing.NewReader(a.client, a.log.Logger).Page(cmd.Context())
		out := cmd.OutOrStdout()
		if len(props) == 0 {
			fmt.Fprintln(out, "No listings.")
			return nil
		}
		for _, p := range props {
			c := listing.NewCard(p, tree)
			fmt.Fprintf(out, "%s  %-40s %14s  %s\n", c.ID, c.Title, c.Price, c.Location)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := listing.NewReader(a.client, a.log.Logger).GetByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		d := listing.NewDetail(p, a.taxonomy.Degraded(cmd.Context()))
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n%s\n", d.Title, strings.Repeat("=", len(d.Title)))
		if d.Badge != "" {
			fmt.Fprintln(out, d.Badge)
		}
		for _, row := range [][2]string{
			{"Price", d.Price},
			{"Location", d.Location},
			{"Type", d.Type},
			{"BHK", d.BHK},
			{"Bathrooms", d.Bathrooms},
			{"Furnishing", d.Furnishing},
			{"Project status", d.ProjectStatus},
			{"Listed by", d.ListedBy},
			{"Super built-up area", d.SuperBuiltupArea},
			{"Carpet area", d.CarpetArea},
			{"Floor", d.FloorNo},
			{"Total floors", d.TotalFloors},
			{"Car parking", d.CarParking},
			{"Facing", d.Facing},
			{"Seller", d.SellerName},
		} {
			if row[1] != "" {
				fmt.Fprintf(out, "%-20s %s\n", row[0]+":", row[1])
			}
		}
		fmt.Fprintf(out, "Photos: %d\n\n%s\n", len(p.Images), d.Description)
		return nil
	},
}

func init() {
	categoriesCmd.Flags().BoolVar(&showAll, "all", false, "print every category instead of the compact bar")
}
