package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceer-dev/optimarketsrl/internal/measure"
	"github.com/ceer-dev/optimarketsrl/internal/search"
)

func newSearchCmd(configPath *string) *cobra.Command {
	var (
		category string
		material string
		medida   string
		adds     string
		base     string
		code     string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Resolve one catalog price from the terminal",
		Long: `Resolves a single price entry the same way the quotation interface does:
the typed measure is normalized ("+150" → "+1.50", commas to points, "CIL" to
"cil") and matched against the indexed catalog.`,
		Example: `  # A lens measure, material picked from "optiprecio materials"
  optiprecio search --category Lentilla --material "Organico Blanco" --medida +125

  # Ready material needs measure and adds
  optiprecio search --category "Material Listo" --material Bifocal --medida -2.75 --adds +1.25

  # Blocks match base and integer adds
  optiprecio search --category Block --material Progresivo --base 4 --adds 225

  # Frames match the code anywhere in the stored measure
  optiprecio search --category Montura --code 8057`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Same split as the HTTP API: a missing material is a validation
			// failure, never a not-found.
			if category != measure.CategoryFrame && material == "" {
				return &measure.ValidationError{Field: "material"}
			}

			index, _, err := loadIndex(*configPath)
			if err != nil {
				return err
			}

			q, err := measure.NewQuery(category, measure.Fields{
				Measure: medida,
				Adds:    adds,
				Base:    base,
				Code:    code,
			})
			if err != nil {
				return err
			}

			entry, err := search.New(index).Resolve(q, material)
			if errors.Is(err, search.ErrNotFound) {
				fmt.Println("No se encontraron productos.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s — %s\n", entry.SubMaterial, entry.Measure)
			fmt.Printf("  Precio (CF): %.2f Bs.\n", entry.PriceInvoiced)
			if entry.HasNoInvoicePrice() {
				fmt.Printf("  Precio (SF): %.2f Bs.\n", *entry.PriceNoInvoice)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", measure.CategoryLens, "Catalog category (Lentilla, Material Listo, Block, Montura)")
	cmd.Flags().StringVar(&material, "material", "", "Sub-material name (not used for Montura)")
	cmd.Flags().StringVar(&medida, "medida", "", "Measure, e.g. +1.25 or 'cil -0.50'")
	cmd.Flags().StringVar(&adds, "adds", "", "Addition value (Material Listo, Block)")
	cmd.Flags().StringVar(&base, "base", "", "Base curve (Block)")
	cmd.Flags().StringVar(&code, "code", "", "Frame code (Montura)")

	return cmd
}
