package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"bankflow/backend/database"
	"bankflow/backend/models"
	"bankflow/backend/services"
)

// DashboardHandler serves the derived dashboard views. Every endpoint takes
// the same filter query parameters; expensive views are memoized per
// (ledger version, criteria fingerprint).
type DashboardHandler struct {
	cache *services.ViewCache
	log   zerolog.Logger
}

func NewDashboardHandler(cache *services.ViewCache, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{cache: cache, log: log}
}

type summaryResponse struct {
	Selected bool           `json:"selected"`
	Summary  models.Summary `json:"summary"`
}

type rollupsResponse struct {
	Selected bool                   `json:"selected"`
	Rollups  []models.AccountRollup `json:"rollups"`
}

type graphResponse struct {
	Selected bool             `json:"selected"`
	Graph    models.FlowGraph `json:"graph"`
}

type sankeyResponse struct {
	Selected bool              `json:"selected"`
	Sankey   models.SankeyData `json:"sankey"`
}

type timelineResponse struct {
	Selected bool                `json:"selected"`
	Bars     []models.BalanceBar `json:"bars"`
}

type distributionResponse struct {
	Selected bool                `json:"selected"`
	Column   string              `json:"column"`
	Buckets  []models.LabelCount `json:"buckets"`
}

type reloadResponse struct {
	Version string `json:"version"`
	Rows    int    `json:"rows"`
}

// GetSummary handles GET /dashboard/summary
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ledger, result := h.filter(r)
	if !result.Selected {
		writeJSON(w, http.StatusOK, summaryResponse{})
		return
	}

	summary := h.cached(ledger, r, "summary", func() interface{} {
		return services.Summarize(result.Rows)
	}).(models.Summary)

	writeJSON(w, http.StatusOK, summaryResponse{Selected: true, Summary: summary})
}

// GetRollups handles GET /dashboard/rollups
func (h *DashboardHandler) GetRollups(w http.ResponseWriter, r *http.Request) {
	ledger, result := h.filter(r)
	if !result.Selected {
		writeJSON(w, http.StatusOK, rollupsResponse{Rollups: []models.AccountRollup{}})
		return
	}

	rollups := h.cached(ledger, r, "rollups", func() interface{} {
		return services.SummarizeAccounts(ledger.Rows, result.Rows)
	}).([]models.AccountRollup)

	writeJSON(w, http.StatusOK, rollupsResponse{Selected: true, Rollups: rollups})
}

// GetNetwork handles GET /dashboard/network
func (h *DashboardHandler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	h.flowGraph(w, r, models.KeyByName, "network")
}

// GetMap handles GET /dashboard/map
func (h *DashboardHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	h.flowGraph(w, r, models.KeyByBranch, "map")
}

func (h *DashboardHandler) flowGraph(w http.ResponseWriter, r *http.Request, keyBy, view string) {
	ledger, result := h.filter(r)
	if !result.Selected {
		writeJSON(w, http.StatusOK, graphResponse{Graph: models.FlowGraph{
			KeyedBy: keyBy,
			Nodes:   []models.FlowNode{},
			Edges:   []models.FlowEdge{},
		}})
		return
	}

	graph := h.cached(ledger, r, view, func() interface{} {
		return services.BuildFlowGraph(result.Rows, keyBy)
	}).(models.FlowGraph)

	if len(graph.Warnings) > 0 {
		h.log.Warn().
			Int("skipped", len(graph.Warnings)).
			Str("view", view).
			Msg("Rows skipped for malformed branch locations")
	}

	writeJSON(w, http.StatusOK, graphResponse{Selected: true, Graph: graph})
}

// GetSankey handles GET /dashboard/sankey
func (h *DashboardHandler) GetSankey(w http.ResponseWriter, r *http.Request) {
	byAccount := r.URL.Query().Get("by") == "account"

	ledger, result := h.filter(r)
	if !result.Selected {
		writeJSON(w, http.StatusOK, sankeyResponse{Sankey: models.SankeyData{
			Labels: []string{},
			Links:  []models.SankeyLink{},
		}})
		return
	}

	view := "sankey"
	if byAccount {
		view = "sankey-account"
	}
	sankey := h.cached(ledger, r, view, func() interface{} {
		return services.SankeyFlows(result.Rows, byAccount)
	}).(models.SankeyData)

	writeJSON(w, http.StatusOK, sankeyResponse{Selected: true, Sankey: sankey})
}

// GetTimeline handles GET /dashboard/timeline
func (h *DashboardHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	ledger, result := h.filter(r)
	if !result.Selected {
		writeJSON(w, http.StatusOK, timelineResponse{Bars: []models.BalanceBar{}})
		return
	}

	bars := h.cached(ledger, r, "timeline", func() interface{} {
		return services.BalanceTimeline(result.Rows)
	}).([]models.BalanceBar)
	if bars == nil {
		bars = []models.BalanceBar{}
	}

	writeJSON(w, http.StatusOK, timelineResponse{Selected: true, Bars: bars})
}

// GetDistribution handles GET /dashboard/distribution/{column}
func (h *DashboardHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	column := mux.Vars(r)["column"]
	switch column {
	case models.ColumnPurpose, models.ColumnType, models.ColumnSender, models.ColumnReceiver:
	default:
		writeError(w, http.StatusBadRequest, "unknown distribution column "+column)
		return
	}

	ledger, result := h.filter(r)
	if !result.Selected {
		writeJSON(w, http.StatusOK, distributionResponse{Column: column, Buckets: []models.LabelCount{}})
		return
	}

	buckets := h.cached(ledger, r, "distribution-"+column, func() interface{} {
		counts, _ := services.Distribution(result.Rows, column)
		return counts
	}).([]models.LabelCount)
	if buckets == nil {
		buckets = []models.LabelCount{}
	}

	writeJSON(w, http.StatusOK, distributionResponse{Selected: true, Column: column, Buckets: buckets})
}

// ReloadLedger handles POST /admin/reload: it re-reads the persisted ledger
// into a new snapshot and drops every cached view.
func (h *DashboardHandler) ReloadLedger(w http.ResponseWriter, r *http.Request) {
	ledger, err := database.RefreshLedger()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to reload ledger")
		writeError(w, http.StatusInternalServerError, "Failed to reload ledger")
		return
	}
	h.cache.Invalidate()

	h.log.Info().Str("version", ledger.Version).Int("rows", len(ledger.Rows)).Msg("Ledger reloaded")
	writeJSON(w, http.StatusOK, reloadResponse{Version: ledger.Version, Rows: len(ledger.Rows)})
}

func (h *DashboardHandler) filter(r *http.Request) (*models.Ledger, services.FilterResult) {
	ledger := database.GetLedger()
	return ledger, services.ApplyFilters(ledger.Rows, parseCriteria(r))
}

func (h *DashboardHandler) cached(ledger *models.Ledger, r *http.Request, view string, compute func() interface{}) interface{} {
	fingerprint := parseCriteria(r).Fingerprint()
	return h.cache.GetOrCompute(ledger.Version, fingerprint, view, compute)
}
