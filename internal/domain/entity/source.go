package entity

import "time"

// Source representa un archivo BOM importado. FileID es el identificador
// estable: se asigna una sola vez en la importación y nunca se reutiliza,
// aunque el nombre visible (DisplayName) cambie después.
type Source struct {
	FileID      string // uuid estable del archivo
	DisplayName string // nombre visible, editable
	UploadBatch string
	UploadedBy  string
	CreatedAt   time.Time
}
