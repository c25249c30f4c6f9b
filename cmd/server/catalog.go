package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	catalogsvc "github.com/muutmoku/ao-build-share/internal/services/catalog"
)

var (
	warmRefresh bool
	warmSlots   []string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the cached item catalog",
}

var catalogWarmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Download catalogs into the cache",
	Long: `Load catalogs through the configured cache. With --redis-addr this pre-populates
the shared snapshot cache so servers start without hitting the snapshot host.`,
	RunE: runCatalogWarm,
}

func init() {
	catalogWarmCmd.Flags().BoolVar(&warmRefresh, "refresh", false, "ignore cached documents and re-download")
	catalogWarmCmd.Flags().StringSliceVar(&warmSlots, "slot", nil, "slots to load (default: all)")
	catalogFlags(catalogWarmCmd)
	catalogCmd.AddCommand(catalogWarmCmd)
}

func runCatalogWarm(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	slots, err := parseSlots(warmSlots)
	if err != nil {
		return err
	}

	orchestrator, closeRepo, err := newCatalogOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	var (
		loaded []*catalogsvc.LoadSlotOutput
		failed = map[equipment.Slot]error{}
	)
	if len(slots) == 0 {
		out, err := orchestrator.LoadAll(ctx, &catalogsvc.LoadAllInput{Refresh: warmRefresh})
		if err != nil {
			return err
		}
		loaded, failed = out.Loaded, out.Failed
	} else {
		for _, slot := range slots {
			out, err := orchestrator.LoadSlot(ctx, &catalogsvc.LoadSlotInput{Slot: slot, Refresh: warmRefresh})
			if err != nil {
				failed[slot] = err
				continue
			}
			loaded = append(loaded, out)
		}
	}

	for _, out := range loaded {
		source := "downloaded"
		if out.FromCache {
			source = "cache"
		}
		fmt.Printf("%-9s %5d records %4d bases  (%s, %s)\n",
			out.Slot, out.Records, out.Bases, source, out.LoadedAt.Format(time.RFC3339))
	}

	failedSlots := make([]string, 0, len(failed))
	for slot := range failed {
		failedSlots = append(failedSlots, slot.String())
	}
	sort.Strings(failedSlots)
	for _, name := range failedSlots {
		fmt.Printf("%-9s FAILED: %v\n", name, failed[equipment.Slot(name)])
	}

	if len(failed) > 0 {
		return errors.Unavailablef("%d of %d slots failed to load", len(failed), len(failed)+len(loaded))
	}
	return nil
}

func parseSlots(raw []string) ([]equipment.Slot, error) {
	slots := make([]equipment.Slot, 0, len(raw))
	for _, r := range raw {
		slot, ok := equipment.SlotFromString(r)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown slot %q", r)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
