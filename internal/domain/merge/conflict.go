package merge

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
)

// DetectConflicts agrupa las partes por part_code y devuelve, por cada grupo
// con 2+ miembros que discrepan, la lista de campos en conflicto en el orden
// canónico de ComparedFields. Los códigos en blanco no agrupan (un código
// vacío no aporta identidad). Nunca falla y es determinista: ni el orden de
// entrada ni el orden de iteración de grupos cambian el resultado.
func DetectConflicts(parts []*entity.Part) map[string][]string {
	groups := make(map[string][]*entity.Part)
	for _, p := range parts {
		code := strings.TrimSpace(p.PartCode)
		if code == "" {
			continue
		}
		groups[code] = append(groups[code], p)
	}

	result := make(map[string][]string)
	for code, members := range groups {
		if len(members) < 2 {
			continue
		}
		var conflicts []string
		for _, field := range ComparedFields {
			if fieldDisagrees(members, field) {
				conflicts = append(conflicts, field)
			}
		}
		if len(conflicts) > 0 {
			result[code] = conflicts
		}
	}
	return result
}

// fieldDisagrees reporta si el campo tiene más de un valor normalizado
// distinto dentro del grupo.
func fieldDisagrees(members []*entity.Part, field string) bool {
	seen := make(map[string]struct{}, 2)
	for _, p := range members {
		seen[normalizedValue(p, field)] = struct{}{}
		if len(seen) > 1 {
			return true
		}
	}
	return false
}

// normalizedValue normaliza el valor de un campo para comparación:
//   - level se compara como entero ("1", "1.0" y 1 son iguales);
//   - los campos de peso y cantidad se comparan numéricamente cuando parsean
//     ("2.50" y "2.5" son iguales), conservando el texto original si no;
//   - el resto como texto sin espacios exteriores, con nulo/ausente = "".
func normalizedValue(p *entity.Part, field string) string {
	v := strings.TrimSpace(FieldValue(p, field))
	switch field {
	case FieldLevel:
		return coerceLevel(v)
	case FieldUnitCountPerLevel, FieldUnitWeightKg, FieldTotalWeightKg:
		return coerceNumericText(v)
	}
	return v
}

// coerceLevel reduce el nivel a su representación entera. Las diferencias de
// representación textual/numérica no son conflictos.
func coerceLevel(v string) string {
	if v == "" {
		return ""
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return v
	}
	return d.Truncate(0).String()
}

// coerceNumericText canoniza texto numérico quitando ceros finales
// insignificantes ("2.50" -> "2.5", "3.0" -> "3"). Texto no numérico se
// devuelve tal cual.
func coerceNumericText(v string) string {
	if v == "" {
		return ""
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return v
	}
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
