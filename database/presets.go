package database

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"bankflow/backend/models"

	"github.com/google/uuid"
)

// ErrPresetNotFound is returned when a preset id has no stored row.
var ErrPresetNotFound = errors.New("filter preset not found")

// ListPresets returns all saved filter presets ordered by creation time.
func ListPresets() ([]models.FilterPreset, error) {
	rows, err := DB.Query(`
		SELECT id, name, names, phones, accounts, createdAt
		FROM filter_presets
		ORDER BY createdAt, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	presets := []models.FilterPreset{}
	for rows.Next() {
		preset, err := scanPreset(rows.Scan)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}
	return presets, rows.Err()
}

// GetPreset returns a single preset by id.
func GetPreset(id string) (models.FilterPreset, error) {
	row := DB.QueryRow(`
		SELECT id, name, names, phones, accounts, createdAt
		FROM filter_presets
		WHERE id = ?
	`, id)

	preset, err := scanPreset(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FilterPreset{}, ErrPresetNotFound
	}
	return preset, err
}

// CreatePreset stores a new named criteria selection and returns it with its
// generated id.
func CreatePreset(name string, criteria models.FilterCriteria) (models.FilterPreset, error) {
	preset := models.FilterPreset{
		ID:        uuid.New().String(),
		Name:      name,
		Criteria:  criteria,
		CreatedAt: time.Now().UTC(),
	}

	_, err := DB.Exec(`
		INSERT INTO filter_presets (id, name, names, phones, accounts, createdAt)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		preset.ID,
		preset.Name,
		strings.Join(criteria.Names, ","),
		strings.Join(criteria.Phones, ","),
		strings.Join(criteria.Accounts, ","),
		preset.CreatedAt,
	)
	if err != nil {
		return models.FilterPreset{}, err
	}
	return preset, nil
}

// UpdatePreset replaces the name and criteria of a stored preset.
func UpdatePreset(id, name string, criteria models.FilterCriteria) (models.FilterPreset, error) {
	result, err := DB.Exec(`
		UPDATE filter_presets
		SET name = ?, names = ?, phones = ?, accounts = ?
		WHERE id = ?
	`,
		name,
		strings.Join(criteria.Names, ","),
		strings.Join(criteria.Phones, ","),
		strings.Join(criteria.Accounts, ","),
		id,
	)
	if err != nil {
		return models.FilterPreset{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.FilterPreset{}, err
	}
	if affected == 0 {
		return models.FilterPreset{}, ErrPresetNotFound
	}
	return GetPreset(id)
}

// DeletePreset removes a stored preset.
func DeletePreset(id string) error {
	result, err := DB.Exec("DELETE FROM filter_presets WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPresetNotFound
	}
	return nil
}

func scanPreset(scan func(...interface{}) error) (models.FilterPreset, error) {
	var preset models.FilterPreset
	var names, phones, accounts string
	if err := scan(&preset.ID, &preset.Name, &names, &phones, &accounts, &preset.CreatedAt); err != nil {
		return models.FilterPreset{}, err
	}
	preset.Criteria = models.FilterCriteria{
		Names:    splitStored(names),
		Phones:   splitStored(phones),
		Accounts: splitStored(accounts),
	}
	return preset, nil
}

func splitStored(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
