package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
	"github.com/jhoicas/bom-merge-api/internal/domain"
)

func newMergeUC(repo *memRepo) *usecase.MergeUseCase {
	return usecase.NewMergeUseCase(repo, repo)
}

// La fusión concatena en el orden de la selección y conserva el orden interno
// de cada origen; el total es la suma de las partes.
func TestMerge_PorFileIDs_ConservaOrdenYConteo(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor",
		bomPart("a1", "f1", "motor", "P1", "S1"),
		bomPart("a2", "f1", "motor", "P2", "S2"),
	)
	repo.addSource("f2", "chasis",
		bomPart("b1", "f2", "chasis", "P3", "S3"),
	)

	out, err := newMergeUC(repo).Merge(dto.MergeRequest{FileIDs: []string{"f2", "f1"}})
	require.NoError(t, err)
	require.Len(t, out.Parts, 3)
	assert.Equal(t, "P3", out.Parts[0].PartCode)
	assert.Equal(t, "P1", out.Parts[1].PartCode)
	assert.Equal(t, "P2", out.Parts[2].PartCode)
	assert.Empty(t, out.Conflicts)
}

// Selección vacía en ambas vías → ErrEmptySelection.
func TestMerge_SeleccionVacia(t *testing.T) {
	_, err := newMergeUC(newMemRepo()).Merge(dto.MergeRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
}

// Si la vía por id falla pero hay nombres, se reintenta por nombre visible.
func TestMerge_FileIDDesconocido_RespaldoPorNombre(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor", bomPart("a1", "f1", "motor", "P1", "S1"))

	out, err := newMergeUC(repo).Merge(dto.MergeRequest{
		FileIDs:     []string{"no-existe"},
		SourceNames: []string{"motor"},
	})
	require.NoError(t, err)
	require.Len(t, out.Parts, 1)
	assert.Equal(t, "P1", out.Parts[0].PartCode)
}

// Si ambas vías fallan se devuelve el error de la vía por id, que nombra el
// FileID desconocido.
func TestMerge_AmbasViasFallan_ErrorPorID(t *testing.T) {
	repo := newMemRepo()
	_, err := newMergeUC(repo).Merge(dto.MergeRequest{
		FileIDs:     []string{"fantasma"},
		SourceNames: []string{"tampoco"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownSource))
	assert.Contains(t, err.Error(), "fantasma")
}

// Solo nombres, sin ids: resuelve por nombre directamente.
func TestMerge_SoloNombres(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor", bomPart("a1", "f1", "motor", "P1", "S1"))

	out, err := newMergeUC(repo).Merge(dto.MergeRequest{SourceNames: []string{"motor"}})
	require.NoError(t, err)
	require.Len(t, out.Parts, 1)
}

// Duplicados exactos no se pierden ni generan conflicto: aparecen dos veces y
// el grupo queda sin campos en discrepancia.
func TestMerge_DuplicadosExactos_SinConflicto(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor", bomPart("a1", "f1", "motor", "P1", "S1"))
	repo.addSource("f2", "chasis", bomPart("b1", "f2", "chasis", "P1", "S1"))

	out, err := newMergeUC(repo).Merge(dto.MergeRequest{FileIDs: []string{"f1", "f2"}})
	require.NoError(t, err)
	require.Len(t, out.Parts, 2)
	assert.Empty(t, out.Conflicts)
}

// Mismo part_code con spec distinto entre orígenes → conflicto en "spec".
func TestMerge_ConflictoPorSpec(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor", bomPart("a1", "f1", "motor", "P1", "X"))
	repo.addSource("f2", "chasis", bomPart("b1", "f2", "chasis", "P1", "Y"))

	out, err := newMergeUC(repo).Merge(dto.MergeRequest{FileIDs: []string{"f1", "f2"}})
	require.NoError(t, err)
	require.Contains(t, out.Conflicts, "P1")
	assert.Equal(t, []string{"spec"}, out.Conflicts["P1"])
}
