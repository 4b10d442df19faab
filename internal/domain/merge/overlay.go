package merge

import "github.com/jhoicas/bom-merge-api/internal/domain/entity"

// Overlay acumula ediciones de campo pendientes sobre un conjunto fusionado,
// sin tocar las partes base. Cada par (parte, campo) admite escrituras
// repetidas con semántica last-write-wins hasta que se confirma o descarta.
// El estado es de una sola sesión de llamada; no se comparte entre usuarios.
type Overlay struct {
	pending map[string]map[string]string // part ID -> campo -> valor
}

// NewOverlay crea un overlay vacío.
func NewOverlay() *Overlay {
	return &Overlay{pending: make(map[string]map[string]string)}
}

// SetField registra una edición pendiente. Los campos de identidad
// (part_code, atribución de origen) no son editables: la llamada se ignora
// en silencio, no es un error (la UI debe impedirlo).
func (o *Overlay) SetField(partID, field, value string) {
	if partID == "" || !IsEditable(field) {
		return
	}
	edits, ok := o.pending[partID]
	if !ok {
		edits = make(map[string]string)
		o.pending[partID] = edits
	}
	edits[field] = value
}

// Len devuelve cuántas partes tienen ediciones pendientes.
func (o *Overlay) Len() int {
	return len(o.pending)
}

// Discard descarta todas las ediciones pendientes sin persistir nada.
func (o *Overlay) Discard() {
	o.pending = make(map[string]map[string]string)
}

// Apply devuelve una copia del conjunto con las ediciones aplicadas y la
// lista de partes que cambiaron. Las partes de entrada no se mutan; las
// ediciones sin parte destino en el conjunto se ignoran.
func (o *Overlay) Apply(parts []*entity.Part) (applied []*entity.Part, changed []*entity.Part) {
	applied = make([]*entity.Part, 0, len(parts))
	for _, p := range parts {
		edits, ok := o.pending[p.ID]
		if !ok {
			applied = append(applied, p)
			continue
		}
		cp := *p
		modified := false
		for field, value := range edits {
			if FieldValue(&cp, field) == value {
				continue
			}
			if SetFieldValue(&cp, field, value) {
				modified = true
			}
		}
		applied = append(applied, &cp)
		if modified {
			changed = append(changed, &cp)
		}
	}
	return applied, changed
}
