package dto

// MergeRequest selección explícita de orígenes a fusionar, con alcance de
// petición (no hay sesión de fusión en el servidor). FileIDs es la identidad
// preferida; SourceNames es el respaldo para clientes antiguos que solo
// conocen nombres.
type MergeRequest struct {
	FileIDs     []string `json:"file_ids"`
	SourceNames []string `json:"source_names"`
}

// MergeResponse conjunto fusionado más el mapa de conflictos derivado
// (part_code -> campos en discrepancia). El mapa se recalcula en cada
// vista, nunca se persiste.
type MergeResponse struct {
	Parts     []PartResponse      `json:"parts"`
	Conflicts map[string][]string `json:"conflicts"`
}
