// Package patternstore provides PatternStore implementations.
package patternstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"quality_server/core/domain"
)

// FileStore persists all domain patterns as a single JSON document with
// full read-then-overwrite on every write. Simple and durable for one
// process; concurrent writers from separate processes can lose updates,
// so production multi-worker deployments should use the Redis, Mongo,
// or Postgres store instead.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// storedPattern is the on-disk schema for one domain.
type storedPattern struct {
	Domain       string             `json:"domain"`
	Distribution map[string]float64 `json:"distribution"`
	LastUpdated  string             `json:"lastUpdated"`
	TTLMs        int64              `json:"ttlMs"`
}

// NewFileStore creates a file-backed pattern store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the stored pattern for a domain, or (nil, nil) when absent.
func (s *FileStore) Get(_ context.Context, mailDomain string) (*domain.DomainPattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	stored, ok := doc[mailDomain]
	if !ok {
		return nil, nil
	}
	return fromStored(stored)
}

// Put overwrites the pattern for its domain inside the shared document.
func (s *FileStore) Put(_ context.Context, pattern *domain.DomainPattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	doc[pattern.Domain] = toStored(pattern)
	return s.writeDocument(doc)
}

func (s *FileStore) readDocument() (map[string]storedPattern, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]storedPattern), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read pattern document: %w", err)
	}

	doc := make(map[string]storedPattern)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode pattern document: %w", err)
		}
	}
	return doc, nil
}

// writeDocument writes via temp file + rename so a crashed write never
// truncates the document.
func (s *FileStore) writeDocument(doc map[string]storedPattern) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pattern document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create pattern store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".patterns-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace pattern document: %w", err)
	}
	return nil
}

func toStored(p *domain.DomainPattern) storedPattern {
	dist := make(map[string]float64, len(p.Distribution))
	for kind, prob := range p.Distribution {
		dist[string(kind)] = prob
	}
	return storedPattern{
		Domain:       p.Domain,
		Distribution: dist,
		LastUpdated:  p.LastUpdated.UTC().Format(time.RFC3339Nano),
		TTLMs:        p.TTL.Milliseconds(),
	}
}

func fromStored(s storedPattern) (*domain.DomainPattern, error) {
	updated, err := time.Parse(time.RFC3339Nano, s.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("parse lastUpdated for %s: %w", s.Domain, err)
	}
	dist := make(map[domain.PatternKind]float64, len(s.Distribution))
	for kind, prob := range s.Distribution {
		dist[domain.PatternKind(kind)] = prob
	}
	return &domain.DomainPattern{
		Domain:       s.Domain,
		Distribution: dist,
		LastUpdated:  updated,
		TTL:          time.Duration(s.TTLMs) * time.Millisecond,
	}, nil
}
