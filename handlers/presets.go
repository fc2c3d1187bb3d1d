package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bankflow/backend/database"
	"bankflow/backend/models"

	"github.com/gorilla/mux"
)

type presetRequest struct {
	Name     string                `json:"name"`
	Criteria models.FilterCriteria `json:"criteria"`
}

// GetFilterPresets returns all saved filter presets.
func GetFilterPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := database.ListPresets()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list presets: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, presets)
}

// GetFilterPreset returns a specific saved preset.
func GetFilterPreset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	preset, err := database.GetPreset(id)
	if errors.Is(err, database.ErrPresetNotFound) {
		writeError(w, http.StatusNotFound, "Preset not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get preset: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

// CreateFilterPreset stores a new named filter selection.
func CreateFilterPreset(w http.ResponseWriter, r *http.Request) {
	var request presetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if request.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if request.Criteria.Empty() {
		writeError(w, http.StatusBadRequest, "criteria must select something")
		return
	}

	preset, err := database.CreatePreset(request.Name, request.Criteria)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create preset: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, preset)
}

// UpdateFilterPreset replaces the name and criteria of an existing preset.
func UpdateFilterPreset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var request presetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if request.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if request.Criteria.Empty() {
		writeError(w, http.StatusBadRequest, "criteria must select something")
		return
	}

	preset, err := database.UpdatePreset(id, request.Name, request.Criteria)
	if errors.Is(err, database.ErrPresetNotFound) {
		writeError(w, http.StatusNotFound, "Preset not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update preset: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

// DeleteFilterPreset removes a saved preset.
func DeleteFilterPreset(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := database.DeletePreset(id)
	if errors.Is(err, database.ErrPresetNotFound) {
		writeError(w, http.StatusNotFound, "Preset not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete preset: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}
