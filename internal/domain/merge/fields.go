package merge

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
)

// Nombres de campo expuestos por la API de fusión. Coinciden con las columnas
// de parts_library y con el orden de columnas del Excel estándar.
const (
	FieldLevel             = "level"
	FieldPartCode          = "part_code"
	FieldPartName          = "part_name"
	FieldSpec              = "spec"
	FieldVersion           = "version"
	FieldMaterial          = "material"
	FieldUnitCountPerLevel = "unit_count_per_level"
	FieldUnitWeightKg      = "unit_weight_kg"
	FieldTotalWeightKg     = "total_weight_kg"
	FieldPartProperty      = "part_property"
	FieldDrawingSize       = "drawing_size"
	FieldReferenceNumber   = "reference_number"
	FieldPurchaseStatus    = "purchase_status"
	FieldProcessRoute      = "process_route"
	FieldRemark            = "remark"
)

// ComparedFields es el conjunto fijo de campos que el detector de conflictos
// compara dentro de un grupo, en orden canónico. part_code queda fuera: es la
// identidad del grupo, no un campo comparable. Este mismo conjunto define qué
// campos son editables vía overlay.
var ComparedFields = []string{
	FieldLevel,
	FieldPartName,
	FieldSpec,
	FieldVersion,
	FieldMaterial,
	FieldUnitCountPerLevel,
	FieldUnitWeightKg,
	FieldTotalWeightKg,
	FieldPartProperty,
	FieldDrawingSize,
	FieldReferenceNumber,
	FieldPurchaseStatus,
	FieldProcessRoute,
	FieldRemark,
}

// IsEditable indica si un campo puede modificarse vía overlay. La identidad
// (part_code, atribución de origen) nunca es editable por esta vía.
func IsEditable(field string) bool {
	for _, f := range ComparedFields {
		if f == field {
			return true
		}
	}
	return false
}

// FieldValue devuelve el valor textual de un campo comparable de la parte.
// Campos desconocidos devuelven "".
func FieldValue(p *entity.Part, field string) string {
	switch field {
	case FieldLevel:
		return p.Level
	case FieldPartCode:
		return p.PartCode
	case FieldPartName:
		return p.PartName
	case FieldSpec:
		return p.Spec
	case FieldVersion:
		return p.Version
	case FieldMaterial:
		return p.Material
	case FieldUnitCountPerLevel:
		return p.UnitCountPerLevel
	case FieldUnitWeightKg:
		return p.UnitWeightKg
	case FieldTotalWeightKg:
		if !p.TotalWeightKg.Valid {
			return ""
		}
		return p.TotalWeightKg.Decimal.String()
	case FieldPartProperty:
		return p.PartProperty
	case FieldDrawingSize:
		return p.DrawingSize
	case FieldReferenceNumber:
		return p.ReferenceNumber
	case FieldPurchaseStatus:
		return p.PurchaseStatus
	case FieldProcessRoute:
		return p.ProcessRoute
	case FieldRemark:
		return p.Remark
	}
	return ""
}

// SetFieldValue escribe un campo editable de la parte. Devuelve false si el
// campo no es editable o el valor no aplica (ej. peso total no numérico).
func SetFieldValue(p *entity.Part, field, value string) bool {
	switch field {
	case FieldLevel:
		p.Level = value
	case FieldPartName:
		p.PartName = value
	case FieldSpec:
		p.Spec = value
	case FieldVersion:
		p.Version = value
	case FieldMaterial:
		p.Material = value
	case FieldUnitCountPerLevel:
		p.UnitCountPerLevel = value
	case FieldUnitWeightKg:
		p.UnitWeightKg = value
	case FieldTotalWeightKg:
		if strings.TrimSpace(value) == "" {
			p.TotalWeightKg = decimal.NullDecimal{}
			return true
		}
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return false
		}
		p.TotalWeightKg = decimal.NullDecimal{Decimal: d, Valid: true}
	case FieldPartProperty:
		p.PartProperty = value
	case FieldDrawingSize:
		p.DrawingSize = value
	case FieldReferenceNumber:
		p.ReferenceNumber = value
	case FieldPurchaseStatus:
		p.PurchaseStatus = value
	case FieldProcessRoute:
		p.ProcessRoute = value
	case FieldRemark:
		p.Remark = value
	default:
		return false
	}
	return true
}
