package dto

// PartResponse una fila de BOM tal como la ve la API. Los pesos viajan como
// texto: así los entregó el Excel y así se comparan.
type PartResponse struct {
	ID                string `json:"id"`
	SourceFileID      string `json:"source_file_id,omitempty"`
	SourceName        string `json:"source_name"`
	Level             string `json:"level"`
	PartCode          string `json:"part_code"`
	PartName          string `json:"part_name"`
	Spec              string `json:"spec"`
	Version           string `json:"version"`
	Material          string `json:"material"`
	UnitCountPerLevel string `json:"unit_count_per_level"`
	UnitWeightKg      string `json:"unit_weight_kg"`
	TotalWeightKg     string `json:"total_weight_kg"`
	PartProperty      string `json:"part_property"`
	DrawingSize       string `json:"drawing_size"`
	ReferenceNumber   string `json:"reference_number"`
	PurchaseStatus    string `json:"purchase_status"`
	ProcessRoute      string `json:"process_route"`
	Remark            string `json:"remark"`
}

// FieldEdit una edición pendiente de un campo de una parte.
type FieldEdit struct {
	PartID string `json:"id" validate:"required"`
	Field  string `json:"field" validate:"required"`
	Value  string `json:"value"`
}

// UpdatePartsRequest lote de ediciones a confirmar sobre la selección dada.
// La selección se reenvía para poder recalcular el mapa de conflictos
// completo tras aplicar los cambios.
type UpdatePartsRequest struct {
	Edits       []FieldEdit `json:"edits" validate:"required,min=1"`
	FileIDs     []string    `json:"file_ids"`
	SourceNames []string    `json:"source_names"`
}

// UpdatePartsResponse resultado de confirmar ediciones.
type UpdatePartsResponse struct {
	UpdatedCount int                 `json:"updated_count"`
	Conflicts    map[string][]string `json:"conflicts"`
}
