package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/synthd/pkg/faker"
	"github.com/getmockd/synthd/pkg/preset"
)

var fieldsJSON bool

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List available preset types and atomic field names",
	RunE: func(cmd *cobra.Command, args []string) error {
		if fieldsJSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"types":  preset.Names(),
				"fields": faker.Fields(),
			})
		}

		fmt.Println("Types:")
		for _, name := range preset.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("\nFields:")
		for _, name := range faker.Fields() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "Output as JSON")
}
