package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muutmoku/ao-build-share/internal/handlers/buildshare/v1alpha1"
)

var (
	catalogSlot  string
	catalogBase  string
	searchLang   string
	searchQuery  string
	searchLimit  int
	previewQuery string
	previewLang  string
)

var enchantsCmd = &cobra.Command{
	Use:   "enchants",
	Short: "List the enchant levels of an item",
	RunE:  runEnchants,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the items of a slot",
	RunE:  runSearch,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Resolve the display of a share query",
	RunE:  runPreview,
}

func init() {
	enchantsCmd.Flags().StringVar(&catalogSlot, "slot", "", "Slot (required)")
	enchantsCmd.Flags().StringVar(&catalogBase, "base", "", "Base key or item identifier (required)")
	_ = enchantsCmd.MarkFlagRequired("slot") // nolint:errcheck // safe to ignore in init
	_ = enchantsCmd.MarkFlagRequired("base") // nolint:errcheck // safe to ignore in init

	searchCmd.Flags().StringVar(&catalogSlot, "slot", "", "Slot (required)")
	searchCmd.Flags().StringVar(&searchLang, "lang", "", "Display language, e.g. DE-DE")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Name filter")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum results")
	_ = searchCmd.MarkFlagRequired("slot") // nolint:errcheck // safe to ignore in init

	previewCmd.Flags().StringVar(&previewQuery, "query", "", "Share query")
	previewCmd.Flags().StringVar(&previewLang, "lang", "", "Display language")
}

func runEnchants(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.ListEnchantsMethod, map[string]interface{}{
		"slot": catalogSlot,
		"base": catalogBase,
	})
	if err != nil || rawOutput {
		return err
	}

	out := resp.AsMap()
	options, _ := out["options"].([]interface{})
	if len(options) == 0 {
		fmt.Println("No enchant levels available")
		return nil
	}
	fmt.Printf("Options: %v\n", options)
	fmt.Printf("Default: %v\n", out["default"])
	if locked, _ := out["locked"].(bool); locked {
		fmt.Println("Locked: item has a single level")
	}
	return nil
}

func runSearch(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.SearchItemsMethod, map[string]interface{}{
		"slot":  catalogSlot,
		"lang":  searchLang,
		"q":     searchQuery,
		"limit": searchLimit,
	})
	if err != nil || rawOutput {
		return err
	}

	items := resp.GetFields()["items"].GetListValue().GetValues()
	fmt.Printf("Found %d items:\n", len(items))
	for _, v := range items {
		it := v.GetStructValue().GetFields()
		var enchants []string
		for _, e := range it["enchants"].GetListValue().GetValues() {
			enchants = append(enchants, e.GetStringValue())
		}
		fmt.Printf("  T%-2d %-40s %s [%s]\n",
			int(it["tier"].GetNumberValue()),
			it["name"].GetStringValue(),
			it["uniqueName"].GetStringValue(),
			strings.Join(enchants, ","))
	}
	return nil
}

func runPreview(_ *cobra.Command, _ []string) error {
	resp, err := call(v1alpha1.PreviewBuildMethod, map[string]interface{}{
		"query": previewQuery,
		"lang":  previewLang,
	})
	if err != nil || rawOutput {
		return err
	}

	fields := resp.GetFields()
	if title := fields["title"].GetStringValue(); title != "" {
		fmt.Printf("%s\n", title)
	}
	if desc := fields["description"].GetStringValue(); desc != "" {
		fmt.Printf("%s\n", desc)
	}
	for _, v := range fields["slots"].GetListValue().GetValues() {
		d := v.GetStructValue().GetFields()
		fmt.Printf("  %-9s %s\n            %s\n",
			d["slotLabel"].GetStringValue(),
			d["label"].GetStringValue(),
			d["imageUrl"].GetStringValue())
	}
	return nil
}
