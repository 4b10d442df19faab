package usecase_test

import (
	"io"

	"github.com/jhoicas/bom-merge-api/internal/domain"
	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
)

// memRepo implementa en memoria los puertos de orígenes y partes; suficiente
// para ejercitar los casos de uso sin base de datos.
type memRepo struct {
	sources map[string]*entity.Source
	order   []string
	parts   map[string][]*entity.Part
	updates int
}

func newMemRepo() *memRepo {
	return &memRepo{
		sources: make(map[string]*entity.Source),
		parts:   make(map[string][]*entity.Part),
	}
}

func (m *memRepo) addSource(fileID, name string, parts ...*entity.Part) {
	m.Create(&entity.Source{FileID: fileID, DisplayName: name}, parts)
}

func (m *memRepo) Create(source *entity.Source, parts []*entity.Part) error {
	m.sources[source.FileID] = source
	m.order = append(m.order, source.FileID)
	m.parts[source.FileID] = append([]*entity.Part(nil), parts...)
	return nil
}

func (m *memRepo) GetByFileID(fileID string) (*entity.Source, error) {
	return m.sources[fileID], nil
}

func (m *memRepo) List() ([]*entity.Source, error) {
	out := make([]*entity.Source, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sources[id])
	}
	return out, nil
}

func (m *memRepo) Rename(fileID, newName string) error {
	src, ok := m.sources[fileID]
	if !ok {
		return domain.ErrUnknownSource
	}
	src.DisplayName = newName
	for _, p := range m.parts[fileID] {
		p.SourceName = newName
	}
	return nil
}

func (m *memRepo) Delete(fileID string) error {
	if _, ok := m.sources[fileID]; !ok {
		return domain.ErrUnknownSource
	}
	delete(m.sources, fileID)
	delete(m.parts, fileID)
	for i, id := range m.order {
		if id == fileID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memRepo) GetByID(id string) (*entity.Part, error) {
	for _, fileID := range m.order {
		for _, p := range m.parts[fileID] {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return nil, nil
}

func (m *memRepo) ListByFileID(fileID string) ([]*entity.Part, error) {
	return append([]*entity.Part(nil), m.parts[fileID]...), nil
}

func (m *memRepo) ListBySourceName(name string) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, fileID := range m.order {
		for _, p := range m.parts[fileID] {
			if p.SourceName == name {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (m *memRepo) Update(part *entity.Part) error {
	for _, fileID := range m.order {
		for i, p := range m.parts[fileID] {
			if p.ID == part.ID {
				m.parts[fileID][i] = part
				m.updates++
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

// memSnapshotRepo implementa en memoria el puerto de snapshots.
type memSnapshotRepo struct {
	snapshots map[string]*entity.Snapshot
	order     []string
	parts     map[string][]*entity.SnapshotPart
}

func newMemSnapshotRepo() *memSnapshotRepo {
	return &memSnapshotRepo{
		snapshots: make(map[string]*entity.Snapshot),
		parts:     make(map[string][]*entity.SnapshotPart),
	}
}

func (m *memSnapshotRepo) Create(snapshot *entity.Snapshot, parts []*entity.SnapshotPart) error {
	m.snapshots[snapshot.ID] = snapshot
	m.order = append(m.order, snapshot.ID)
	m.parts[snapshot.ID] = append([]*entity.SnapshotPart(nil), parts...)
	return nil
}

func (m *memSnapshotRepo) GetByID(id string) (*entity.Snapshot, error) {
	return m.snapshots[id], nil
}

func (m *memSnapshotRepo) ExistsByName(name string) (bool, error) {
	for _, s := range m.snapshots {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSnapshotRepo) List(createdBy string) ([]*entity.Snapshot, error) {
	var out []*entity.Snapshot
	for _, id := range m.order {
		s := m.snapshots[id]
		if createdBy == "" || s.CreatedBy == createdBy {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSnapshotRepo) ListParts(snapshotID string) ([]*entity.SnapshotPart, error) {
	return append([]*entity.SnapshotPart(nil), m.parts[snapshotID]...), nil
}

func (m *memSnapshotRepo) Delete(id string) error {
	if _, ok := m.snapshots[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.snapshots, id)
	delete(m.parts, id)
	for i, sid := range m.order {
		if sid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memSnapshotRepo) DeletePart(snapshotID, partID string) error {
	list := m.parts[snapshotID]
	for i, p := range list {
		if p.ID == partID {
			m.parts[snapshotID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeReader devuelve un conjunto fijo de filas, o un error.
type fakeReader struct {
	parts []*entity.Part
	err   error
}

func (f *fakeReader) Read(io.Reader) ([]*entity.Part, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.parts, nil
}

// fakeExporter registra la última exportación y devuelve un contenido fijo.
type fakeExporter struct {
	lastName  string
	lastParts int
}

func (f *fakeExporter) Export(name string, parts []*entity.SnapshotPart) ([]byte, error) {
	f.lastName = name
	f.lastParts = len(parts)
	return []byte("xlsx"), nil
}

// bomPart construye una fila mínima para los tests.
func bomPart(id, fileID, sourceName, code, spec string) *entity.Part {
	return &entity.Part{
		ID:           id,
		SourceFileID: fileID,
		SourceName:   sourceName,
		Level:        "1",
		PartCode:     code,
		PartName:     "pieza " + code,
		Spec:         spec,
	}
}
