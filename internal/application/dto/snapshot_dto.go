package dto

import "time"

// SaveSnapshotRequest guardar el conjunto fusionado (post-ediciones) como
// proyecto combinado con linaje a sus orígenes.
type SaveSnapshotRequest struct {
	Name          string         `json:"name" validate:"required,min=1,max=200"`
	SourceFileIDs []string       `json:"source_file_ids"`
	SourceNames   []string       `json:"source_names"`
	Parts         []PartResponse `json:"parts" validate:"required,min=1"`
}

// SaveSnapshotResponse identificador del snapshot creado.
type SaveSnapshotResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

// SnapshotResponse un proyecto combinado persistido.
type SnapshotResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	SourceFileIDs []string  `json:"source_file_ids"`
	SourceNames   []string  `json:"source_names"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
