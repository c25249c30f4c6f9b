// Package v1alpha1 handles the buildshare gRPC service interface
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	buildsvc "github.com/muutmoku/ao-build-share/internal/services/build"
	catalogsvc "github.com/muutmoku/ao-build-share/internal/services/catalog"
	previewsvc "github.com/muutmoku/ao-build-share/internal/services/preview"
)

// HandlerConfig holds dependencies for the BuildService handler
type HandlerConfig struct {
	BuildService   buildsvc.Service
	CatalogService catalogsvc.Service
	PreviewService previewsvc.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.BuildService == nil {
		vb.RequiredField("BuildService")
	}
	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.PreviewService == nil {
		vb.RequiredField("PreviewService")
	}
	return vb.Build()
}

// Handler implements BuildServiceServer
type Handler struct {
	buildService   buildsvc.Service
	catalogService catalogsvc.Service
	previewService previewsvc.Service
}

// NewHandler creates a new BuildService handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		buildService:   cfg.BuildService,
		catalogService: cfg.CatalogService,
		previewService: cfg.PreviewService,
	}, nil
}

// Ensure Handler implements BuildServiceServer
var _ BuildServiceServer = (*Handler)(nil)

// NormalizeBuild decodes a share query and returns its normalized form
func (h *Handler) NormalizeBuild(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.buildService.GetBuild(ctx, &buildsvc.GetBuildInput{
		Query: stringField(req, "query"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return stateResponse(out.State, out.Query)
}

// SelectItem sets a slot's item
func (h *Handler) SelectItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	slot, err := slotField(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.buildService.SelectItem(ctx, &buildsvc.SelectItemInput{
		Query: stringField(req, "query"),
		Slot:  slot,
		Item:  stringField(req, "item"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return stateResponse(out.State, out.Query)
}

// SelectEnchant sets a slot's enchant level
func (h *Handler) SelectEnchant(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	slot, err := slotField(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.buildService.SelectEnchant(ctx, &buildsvc.SelectEnchantInput{
		Query:   stringField(req, "query"),
		Slot:    slot,
		Enchant: stringField(req, "enchant"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return stateResponse(out.State, out.Query)
}

// UpdateDetails sets the title and/or description
func (h *Handler) UpdateDetails(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.buildService.UpdateDetails(ctx, &buildsvc.UpdateDetailsInput{
		Query:       stringField(req, "query"),
		Title:       optionalStringField(req, "title"),
		Description: optionalStringField(req, "description"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return stateResponse(out.State, out.Query)
}

// ListEnchants returns the enchant options of a base item
func (h *Handler) ListEnchants(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	slot, err := slotField(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.buildService.ListEnchants(ctx, &buildsvc.ListEnchantsInput{
		Slot: slot,
		Base: stringField(req, "base"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]interface{}{
		"options": stringList(out.Options),
		"default": out.Default,
		"locked":  out.Locked,
	})
}

// SearchItems lists the items of a slot
func (h *Handler) SearchItems(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	slot, err := slotField(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalogService.SearchItems(ctx, &catalogsvc.SearchItemsInput{
		Slot:  slot,
		Lang:  stringField(req, "lang"),
		Query: stringField(req, "q"),
		Limit: int(req.GetFields()["limit"].GetNumberValue()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	items := make([]interface{}, 0, len(out.Items))
	for _, it := range out.Items {
		items = append(items, map[string]interface{}{
			"uniqueName": it.UniqueName,
			"name":       it.Name,
			"tier":       it.Tier,
			"base":       it.Base,
			"enchants":   stringList(it.Enchants),
		})
	}

	return toStruct(map[string]interface{}{"items": items})
}

// PreviewBuild resolves the preview of a share query
func (h *Handler) PreviewBuild(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.previewService.PreviewBuild(ctx, &previewsvc.PreviewBuildInput{
		Query: stringField(req, "query"),
		Lang:  stringField(req, "lang"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	slots := make([]interface{}, 0, len(out.Preview.Slots))
	for _, d := range out.Preview.Slots {
		slots = append(slots, map[string]interface{}{
			"slot":         d.Slot.String(),
			"slotLabel":    d.SlotLabel,
			"label":        d.Label,
			"renderId":     d.RenderID,
			"enchantLevel": d.EnchantLevel,
			"imageUrl":     d.ImageURL,
		})
	}

	return toStruct(map[string]interface{}{
		"title":       out.Preview.Title,
		"description": out.Preview.Description,
		"lang":        out.Preview.Lang,
		"slots":       slots,
	})
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func optionalStringField(req *structpb.Struct, name string) *string {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil
	}
	s := v.GetStringValue()
	return &s
}

func slotField(req *structpb.Struct) (equipment.Slot, error) {
	raw := stringField(req, "slot")
	if raw == "" {
		return "", errors.InvalidArgument("slot is required")
	}
	slot, ok := equipment.SlotFromString(raw)
	if !ok {
		return "", errors.InvalidArgumentf("unknown slot %q", raw)
	}
	return slot, nil
}

func stringList(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func stateResponse(state build.State, query string) (*structpb.Struct, error) {
	slots := make(map[string]interface{}, len(state.Slots))
	enchants := make(map[string]interface{}, len(state.Enchants))
	for _, slot := range equipment.AllSlots() {
		slots[slot.String()] = state.Item(slot)
		enchants[slot.String()] = state.Enchant(slot)
	}

	return toStruct(map[string]interface{}{
		"query": query,
		"state": map[string]interface{}{
			"title":       state.Title,
			"description": state.Description,
			"slots":       slots,
			"enchants":    enchants,
		},
	})
}

func toStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}
