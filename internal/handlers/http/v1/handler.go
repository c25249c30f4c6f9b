// Package v1 serves the build share JSON API over HTTP
package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/pkg/clock"
	"github.com/muutmoku/ao-build-share/internal/pkg/idgen"
	buildsvc "github.com/muutmoku/ao-build-share/internal/services/build"
	catalogsvc "github.com/muutmoku/ao-build-share/internal/services/catalog"
	previewsvc "github.com/muutmoku/ao-build-share/internal/services/preview"
)

// HandlerConfig holds dependencies for the HTTP handler
type HandlerConfig struct {
	BuildService   buildsvc.Service
	CatalogService catalogsvc.Service
	PreviewService previewsvc.Service
	// Loaded reports the slots whose catalog is available, used by /healthz
	Loaded func() []equipment.Slot
	// RequestIDs generates request IDs (optional, defaults to UUIDs)
	RequestIDs idgen.Generator
	// Clock stamps health responses (optional, defaults to the wall clock)
	Clock clock.Clock
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
	if c.Loaded == nil {
		vb.RequiredField("Loaded")
	}
	if c.RequestIDs == nil {
		c.RequestIDs = idgen.NewUUID("req")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return vb.Build()
}

// Handler serves the HTTP API
type Handler struct {
	buildService   buildsvc.Service
	catalogService catalogsvc.Service
	previewService previewsvc.Service
	loaded         func() []equipment.Slot
	requestIDs     idgen.Generator
	clock          clock.Clock
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		buildService:   cfg.BuildService,
		catalogService: cfg.CatalogService,
		previewService: cfg.PreviewService,
		loaded:         cfg.Loaded,
		requestIDs:     cfg.RequestIDs,
		clock:          cfg.Clock,
	}, nil
}

// Routes returns the API mux wrapped in request logging
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /v1/build", h.handleGetBuild)
	mux.HandleFunc("POST /v1/build/items", h.handleSelectItem)
	mux.HandleFunc("POST /v1/build/enchants", h.handleSelectEnchant)
	mux.HandleFunc("POST /v1/build/details", h.handleUpdateDetails)
	mux.HandleFunc("GET /v1/slots/{slot}/enchants/{base}", h.handleListEnchants)
	mux.HandleFunc("GET /v1/slots/{slot}/items", h.handleSearchItems)
	mux.HandleFunc("GET /v1/preview", h.handlePreview)
	return h.withRequestLogging(mux)
}

type healthResponse struct {
	Status string   `json:"status"`
	Loaded []string `json:"loaded"`
	Time   string   `json:"time"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	loaded := h.loaded()
	names := make([]string, len(loaded))
	for i, slot := range loaded {
		names[i] = slot.String()
	}

	status := "ok"
	if len(loaded) < len(equipment.AllSlots()) {
		status = "degraded"
	}

	writeJSON(w, r, http.StatusOK, healthResponse{
		Status: status,
		Loaded: names,
		Time:   h.clock.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleGetBuild(w http.ResponseWriter, r *http.Request) {
	out, err := h.buildService.GetBuild(r.Context(), &buildsvc.GetBuildInput{Query: r.URL.RawQuery})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, BuildResponse{Query: out.Query, State: out.State})
}

// SelectItemRequest is the body of POST /v1/build/items
type SelectItemRequest struct {
	Query string `json:"query"`
	Slot  string `json:"slot"`
	Item  string `json:"item"`
}

func (h *Handler) handleSelectItem(w http.ResponseWriter, r *http.Request) {
	var req SelectItemRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	slot, err := parseSlot(req.Slot)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.buildService.SelectItem(r.Context(), &buildsvc.SelectItemInput{
		Query: req.Query,
		Slot:  slot,
		Item:  req.Item,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, BuildResponse{Query: out.Query, State: out.State})
}

// SelectEnchantRequest is the body of POST /v1/build/enchants
type SelectEnchantRequest struct {
	Query   string `json:"query"`
	Slot    string `json:"slot"`
	Enchant string `json:"enchant"`
}

func (h *Handler) handleSelectEnchant(w http.ResponseWriter, r *http.Request) {
	var req SelectEnchantRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	slot, err := parseSlot(req.Slot)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.buildService.SelectEnchant(r.Context(), &buildsvc.SelectEnchantInput{
		Query:   req.Query,
		Slot:    slot,
		Enchant: req.Enchant,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, BuildResponse{Query: out.Query, State: out.State})
}

// UpdateDetailsRequest is the body of POST /v1/build/details.
// Omitted fields are left unchanged.
type UpdateDetailsRequest struct {
	Query       string  `json:"query"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *Handler) handleUpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req UpdateDetailsRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.buildService.UpdateDetails(r.Context(), &buildsvc.UpdateDetailsInput{
		Query:       req.Query,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, BuildResponse{Query: out.Query, State: out.State})
}

// EnchantsResponse is returned by GET /v1/slots/{slot}/enchants/{base}
type EnchantsResponse struct {
	Options []string `json:"options"`
	Default string   `json:"default"`
	Locked  bool     `json:"locked"`
}

func (h *Handler) handleListEnchants(w http.ResponseWriter, r *http.Request) {
	slot, err := parseSlot(r.PathValue("slot"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.buildService.ListEnchants(r.Context(), &buildsvc.ListEnchantsInput{
		Slot: slot,
		Base: r.PathValue("base"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	options := out.Options
	if options == nil {
		options = []string{}
	}
	writeJSON(w, r, http.StatusOK, EnchantsResponse{Options: options, Default: out.Default, Locked: out.Locked})
}

// ItemResponse is one entry of GET /v1/slots/{slot}/items
type ItemResponse struct {
	UniqueName string   `json:"uniqueName"`
	Name       string   `json:"name"`
	Tier       int      `json:"tier"`
	Base       string   `json:"base"`
	Enchants   []string `json:"enchants"`
}

func (h *Handler) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	slot, err := parseSlot(r.PathValue("slot"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, errors.InvalidArgumentf("limit must be a number: %s", raw))
			return
		}
	}

	out, err := h.catalogService.SearchItems(r.Context(), &catalogsvc.SearchItemsInput{
		Slot:  slot,
		Lang:  q.Get("lang"),
		Query: q.Get("q"),
		Limit: limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]ItemResponse, 0, len(out.Items))
	for _, it := range out.Items {
		enchants := it.Enchants
		if enchants == nil {
			enchants = []string{}
		}
		items = append(items, ItemResponse{
			UniqueName: it.UniqueName,
			Name:       it.Name,
			Tier:       it.Tier,
			Base:       it.Base,
			Enchants:   enchants,
		})
	}
	writeJSON(w, r, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	out, err := h.previewService.PreviewBuild(r.Context(), &previewsvc.PreviewBuildInput{
		Query: r.URL.RawQuery,
		Lang:  r.URL.Query().Get("lang"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, out.Preview)
}

func parseSlot(raw string) (equipment.Slot, error) {
	if raw == "" {
		return "", errors.InvalidArgument("slot is required")
	}
	slot, ok := equipment.SlotFromString(raw)
	if !ok {
		return "", errors.InvalidArgumentf("unknown slot %q", raw)
	}
	return slot, nil
}
