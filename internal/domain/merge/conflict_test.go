package merge_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
	"github.com/jhoicas/bom-merge-api/internal/domain/merge"
)

func part(code string, mutate func(p *entity.Part)) *entity.Part {
	p := &entity.Part{
		ID:       code + "-" + "x",
		PartCode: code,
		PartName: "pieza",
		Spec:     "S1",
		Level:    "1",
	}
	if mutate != nil {
		mutate(p)
	}
	return p
}

// Grupos con valores uniformes no aparecen en el mapa de conflictos.
func TestDetectConflicts_GrupoUniformeSinConflicto(t *testing.T) {
	parts := []*entity.Part{
		part("P1", nil),
		part("P1", nil),
		part("P1", nil),
	}
	got := merge.DetectConflicts(parts)
	assert.Empty(t, got)
}

// Escenario de la referencia: A={P1, spec X}, B={P1, spec Y} -> {"P1": ["spec"]}.
func TestDetectConflicts_SpecDistintoEsConflicto(t *testing.T) {
	parts := []*entity.Part{
		part("P1", func(p *entity.Part) { p.Spec = "X" }),
		part("P1", func(p *entity.Part) { p.Spec = "Y" }),
	}
	got := merge.DetectConflicts(parts)
	require.Contains(t, got, "P1")
	assert.Equal(t, []string{"spec"}, got["P1"])
}

// Diferencias de representación en level ("2" vs "2.0") no son conflicto.
func TestDetectConflicts_LevelCoercionEntera(t *testing.T) {
	parts := []*entity.Part{
		part("P1", func(p *entity.Part) { p.Level = "1" }),
		part("P1", func(p *entity.Part) { p.Level = "1.0" }),
	}
	got := merge.DetectConflicts(parts)
	assert.Empty(t, got)

	parts = []*entity.Part{
		part("P1", func(p *entity.Part) { p.Level = "1" }),
		part("P1", func(p *entity.Part) { p.Level = "2" }),
	}
	got = merge.DetectConflicts(parts)
	require.Contains(t, got, "P1")
	assert.Equal(t, []string{"level"}, got["P1"])
}

// Códigos en blanco nunca agrupan: dos partes sin código jamás se comparan.
func TestDetectConflicts_CodigoEnBlancoNoAgrupa(t *testing.T) {
	parts := []*entity.Part{
		part("", func(p *entity.Part) { p.Spec = "X" }),
		part("", func(p *entity.Part) { p.Spec = "Y" }),
		part("   ", func(p *entity.Part) { p.Spec = "Z" }),
	}
	got := merge.DetectConflicts(parts)
	assert.Empty(t, got)
}

// Valores ausentes normalizan a cadena vacía: "" y "  " no discrepan.
func TestDetectConflicts_NuloYVacioSonIguales(t *testing.T) {
	parts := []*entity.Part{
		part("P1", func(p *entity.Part) { p.Material = "" }),
		part("P1", func(p *entity.Part) { p.Material = "   " }),
	}
	got := merge.DetectConflicts(parts)
	assert.Empty(t, got)
}

// El peso total compara numéricamente: 2.50 y 2.5 son iguales; nulo vs valor no.
func TestDetectConflicts_PesoTotalNumerico(t *testing.T) {
	w1 := decimal.NullDecimal{Decimal: decimal.RequireFromString("2.50"), Valid: true}
	w2 := decimal.NullDecimal{Decimal: decimal.RequireFromString("2.5"), Valid: true}
	parts := []*entity.Part{
		part("P1", func(p *entity.Part) { p.TotalWeightKg = w1 }),
		part("P1", func(p *entity.Part) { p.TotalWeightKg = w2 }),
	}
	assert.Empty(t, merge.DetectConflicts(parts))

	parts = []*entity.Part{
		part("P1", func(p *entity.Part) { p.TotalWeightKg = w1 }),
		part("P1", nil),
	}
	got := merge.DetectConflicts(parts)
	require.Contains(t, got, "P1")
	assert.Equal(t, []string{"total_weight_kg"}, got["P1"])
}

// Varios campos en conflicto se reportan en el orden canónico fijo.
func TestDetectConflicts_OrdenCanonicoDeCampos(t *testing.T) {
	parts := []*entity.Part{
		part("P1", func(p *entity.Part) { p.Level = "1"; p.PartName = "A"; p.Remark = "r1" }),
		part("P1", func(p *entity.Part) { p.Level = "2"; p.PartName = "B"; p.Remark = "r2" }),
	}
	got := merge.DetectConflicts(parts)
	require.Contains(t, got, "P1")
	assert.Equal(t, []string{"level", "part_name", "remark"}, got["P1"])
}

// El orden de entrada no altera el resultado (determinismo).
func TestDetectConflicts_Determinista(t *testing.T) {
	a := part("P1", func(p *entity.Part) { p.Spec = "X" })
	b := part("P1", func(p *entity.Part) { p.Spec = "Y" })
	c := part("P2", nil)

	first := merge.DetectConflicts([]*entity.Part{a, b, c})
	second := merge.DetectConflicts([]*entity.Part{c, b, a})
	assert.Equal(t, first, second)
}

// Duplicados exactos no se deduplican aguas arriba; aquí simplemente forman
// un grupo sin conflictos.
func TestDetectConflicts_DuplicadoExactoSinConflicto(t *testing.T) {
	parts := []*entity.Part{part("P9", nil), part("P9", nil)}
	assert.Empty(t, merge.DetectConflicts(parts))
}
