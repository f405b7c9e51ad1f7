package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ceer-dev/optimarketsrl/internal/measure"
)

func newMaterialsCmd(configPath *string) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List the sub-materials available in a category",
		Example: `  optiprecio materials --category Lentilla
  optiprecio materials --category "Material Listo"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _, err := loadIndex(*configPath)
			if err != nil {
				return err
			}

			names := index.SubMaterials(category)
			if len(names) == 0 {
				fmt.Printf("No hay materiales en la categoría %q.\n", category)
				return nil
			}

			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", measure.CategoryLens, "Catalog category")

	return cmd
}
