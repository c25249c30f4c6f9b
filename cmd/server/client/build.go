package client

import (
	"github.com/spf13/cobra"

	"github.com/muutmoku/ao-build-share/internal/handlers/buildshare/v1alpha1"
)

var (
	buildQuery   string
	buildSlot    string
	buildItem    string
	buildEnchant string
	buildTitle   string
	buildDesc    string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Decode and normalize a share query",
	Long:  `Decode a share query and print it in canonical form with enchants clamped to the catalog.`,
	RunE:  runNormalize,
}

var selectItemCmd = &cobra.Command{
	Use:   "select-item",
	Short: "Set a slot's item",
	Long:  `Set the item of a slot. The enchant resets to the first level the item offers.`,
	RunE:  runSelectItem,
}

var selectEnchantCmd = &cobra.Command{
	Use:   "select-enchant",
	Short: "Set a slot's enchant level",
	RunE:  runSelectEnchant,
}

var updateDetailsCmd = &cobra.Command{
	Use:   "update-details",
	Short: "Set the build title and/or description",
	RunE:  runUpdateDetails,
}

func init() {
	for _, cmd := range []*cobra.Command{normalizeCmd, selectItemCmd, selectEnchantCmd, updateDetailsCmd} {
		cmd.Flags().StringVar(&buildQuery, "query", "", "current share query")
	}

	selectItemCmd.Flags().StringVar(&buildSlot, "slot", "", "Slot (required)")
	selectItemCmd.Flags().StringVar(&buildItem, "item", "", "Item identifier, empty clears the slot")
	_ = selectItemCmd.MarkFlagRequired("slot") // nolint:errcheck // safe to ignore in init

	selectEnchantCmd.Flags().StringVar(&buildSlot, "slot", "", "Slot (required)")
	selectEnchantCmd.Flags().StringVar(&buildEnchant, "enchant", "", "Enchant level (required)")
	_ = selectEnchantCmd.MarkFlagRequired("slot")    // nolint:errcheck // safe to ignore in init
	_ = selectEnchantCmd.MarkFlagRequired("enchant") // nolint:errcheck // safe to ignore in init

	updateDetailsCmd.Flags().StringVar(&buildTitle, "title", "", "Build title")
	updateDetailsCmd.Flags().StringVar(&buildDesc, "description", "", "Build description")
}

func runNormalize(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.NormalizeBuildMethod, map[string]interface{}{"query": buildQuery})
	if err != nil {
		return err
	}
	printState(resp)
	return nil
}

func runSelectItem(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.SelectItemMethod, map[string]interface{}{
		"query": buildQuery,
		"slot":  buildSlot,
		"item":  buildItem,
	})
	if err != nil {
		return err
	}
	printState(resp)
	return nil
}

func runSelectEnchant(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.SelectEnchantMethod, map[string]interface{}{
		"query":   buildQuery,
		"slot":    buildSlot,
		"enchant": buildEnchant,
	})
	if err != nil {
		return err
	}
	printState(resp)
	return nil
}

func runUpdateDetails(cmd *cobra.Command, _ []string) error {
	fields := map[string]interface{}{"query": buildQuery}
	if cmd.Flags().Changed("title") {
		fields["title"] = buildTitle
	}
	if cmd.Flags().Changed("description") {
		fields["description"] = buildDesc
	}

	resp, err := call(v1alpha1.UpdateDetailsMethod, fields)
	if err != nil {
		return err
	}
	printState(resp)
	return nil
}
