package dto

import "time"

// SourceResponse un archivo origen registrado.
type SourceResponse struct {
	FileID      string    `json:"file_id"`
	DisplayName string    `json:"display_name"`
	UploadBatch string    `json:"upload_batch,omitempty"`
	PartCount   int       `json:"part_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// RenameSourceRequest cambio de nombre visible. No toca la identidad ni los
// snapshots ya guardados.
type RenameSourceRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=200"`
}

// ImportResponse resultado de importar un BOM.
type ImportResponse struct {
	FileID      string `json:"file_id"`
	DisplayName string `json:"display_name"`
	PartCount   int    `json:"part_count"`
}
