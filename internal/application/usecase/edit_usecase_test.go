package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
	"github.com/jhoicas/bom-merge-api/internal/domain"
)

func newEditUC(repo *memRepo) *usecase.EditUseCase {
	return usecase.NewEditUseCase(usecase.NewMergeUseCase(repo, repo), repo)
}

// Commit persiste solo las partes cuyo valor realmente cambió y devuelve el
// conteo exacto.
func TestCommit_PersisteSoloCambios(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor",
		bomPart("a1", "f1", "motor", "P1", "S1"),
		bomPart("a2", "f1", "motor", "P2", "S2"),
	)

	out, err := newEditUC(repo).Commit(dto.UpdatePartsRequest{
		FileIDs: []string{"f1"},
		Edits: []dto.FieldEdit{
			{PartID: "a1", Field: "spec", Value: "S1-rev2"},
			{PartID: "a2", Field: "spec", Value: "S2"}, // sin cambio real
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.UpdatedCount)
	assert.Equal(t, 1, repo.updates)

	p, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, "S1-rev2", p.Spec)
}

// Editar un lado de un conflicto al valor del otro lo resuelve: el mapa
// recalculado ya no lo lista.
func TestCommit_ResuelveConflicto(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor", bomPart("a1", "f1", "motor", "P1", "X"))
	repo.addSource("f2", "chasis", bomPart("b1", "f2", "chasis", "P1", "Y"))

	out, err := newEditUC(repo).Commit(dto.UpdatePartsRequest{
		FileIDs: []string{"f1", "f2"},
		Edits:   []dto.FieldEdit{{PartID: "b1", Field: "spec", Value: "X"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.UpdatedCount)
	assert.Empty(t, out.Conflicts)
}

// Repetir el mismo commit es idempotente: segunda pasada sin cambios.
func TestCommit_Idempotente(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor", bomPart("a1", "f1", "motor", "P1", "X"))

	req := dto.UpdatePartsRequest{
		FileIDs: []string{"f1"},
		Edits:   []dto.FieldEdit{{PartID: "a1", Field: "remark", Value: "revisado"}},
	}
	uc := newEditUC(repo)

	first, err := uc.Commit(req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.UpdatedCount)

	second, err := uc.Commit(req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.UpdatedCount)
	assert.Equal(t, 1, repo.updates)
}

// Los campos de identidad no son editables; la edición se ignora en silencio.
func TestCommit_IdentidadNoEditable(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor", bomPart("a1", "f1", "motor", "P1", "X"))

	out, err := newEditUC(repo).Commit(dto.UpdatePartsRequest{
		FileIDs: []string{"f1"},
		Edits:   []dto.FieldEdit{{PartID: "a1", Field: "part_code", Value: "HACK"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.UpdatedCount)

	p, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, "P1", p.PartCode)
}

// Sin ediciones no hay nada que confirmar.
func TestCommit_SinEdits_ErrInvalidInput(t *testing.T) {
	_, err := newEditUC(newMemRepo()).Commit(dto.UpdatePartsRequest{FileIDs: []string{"f1"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si la selección no resuelve, no se persiste nada.
func TestCommit_SeleccionInvalida_NoPersiste(t *testing.T) {
	repo := newMemRepo()
	repo.addSource("f1", "motor", bomPart("a1", "f1", "motor", "P1", "X"))

	_, err := newEditUC(repo).Commit(dto.UpdatePartsRequest{
		FileIDs: []string{"no-existe"},
		Edits:   []dto.FieldEdit{{PartID: "a1", Field: "spec", Value: "Z"}},
	})
	require.ErrorIs(t, err, domain.ErrUnknownSource)
	assert.Equal(t, 0, repo.updates)
}
