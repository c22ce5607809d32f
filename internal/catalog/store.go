package catalog

import (
	"sync/atomic"
	"time"
)

// Store держит текущий снимок индекса. Перезагрузка строит новый индекс
// целиком и только потом подменяет указатель: читатели всегда видят
// согласованный снимок.
type Store struct {
	cur      atomic.Pointer[Index]
	path     string
	loadedAt atomic.Int64
}

// NewStore создаёт хранилище с уже готовым индексом (idx может быть nil).
func NewStore(path string, idx *Index) *Store {
	s := &Store{path: path}
	if idx == nil {
		idx = Build(Document{})
	}
	s.swap(idx)
	return s
}

// OpenStore читает и индексирует каталог по пути.
func OpenStore(path string) (*Store, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewStore(path, Build(doc)), nil
}

// Snapshot никогда не возвращает nil.
func (s *Store) Snapshot() *Index { return s.cur.Load() }

// Reload перечитывает файл каталога. При ошибке старый снимок остаётся.
func (s *Store) Reload() (Stats, error) {
	doc, err := ReadFile(s.path)
	if err != nil {
		return Stats{}, err
	}
	idx := Build(doc)
	s.swap(idx)
	return idx.Stats(), nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) LoadedAt() time.Time { return time.Unix(0, s.loadedAt.Load()) }

func (s *Store) swap(idx *Index) {
	s.cur.Store(idx)
	s.loadedAt.Store(time.Now().UnixNano())
}
