package role

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound means the requested role name has no record.
var ErrNotFound = errors.New("role not found")

// validName matches alphanumeric, space, dash, underscore, and dot.
// Built-in role names contain spaces, so spaces are allowed.
var validName = regexp.MustCompile(`^[a-zA-Z0-9 ._-]+$`)

// validateName rejects names that could cause path traversal.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("role name must not be empty")
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("role name must not contain '..'")
	}
	if !validName.MatchString(name) {
		return fmt.Errorf("role name contains invalid characters: only alphanumeric, space, dash, underscore, and dot are allowed")
	}
	return nil
}

// Store manages role files on disk, one JSON file per role name.
// The storage root is created lazily on first write.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates a Store backed by the given directory. The directory
// is not created until the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the default role storage directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "rolecall-roles")
	}
	return filepath.Join(home, ".rolecall", "roles")
}

// Dir returns the storage root.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the record under its name, overwriting any existing file.
// Overwrite confirmation is the caller's responsibility; the store
// never prompts.
func (s *Store) Save(rec Record) error {
	if err := validateName(rec.Name); err != nil {
		return fmt.Errorf("invalid role name: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create role directory: %w", err)
	}
	return s.writeAtomic(s.path(rec.Name), rec)
}

// Get loads the record with the given name.
func (s *Store) Get(name string) (Record, error) {
	if err := validateName(name); err != nil {
		return Record{}, fmt.Errorf("invalid role name: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read(name)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, fmt.Errorf("role %q: %w", name, ErrNotFound)
		}
		return Record{}, fmt.Errorf("read role %q: %w", name, err)
	}
	return *rec, nil
}

// Exists reports whether a record with the given name is on disk.
func (s *Store) Exists(name string) bool {
	if err := validateName(name); err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path(name))
	return err == nil
}

// Delete removes the record with the given name. Deletion confirmation
// is the caller's responsibility.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return fmt.Errorf("invalid role name: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("role %q: %w", name, ErrNotFound)
		}
		return err
	}
	return os.Remove(path)
}

// List returns the paths of all role files, ordered by ascending
// last-modification time. Equal mtimes tie-break by file name so the
// order stays deterministic.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	type fileInfo struct {
		path  string
		mtime int64
	}
	var files []fileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, fileInfo{
			path:  filepath.Join(s.dir, e.Name()),
			mtime: info.ModTime().UnixNano(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].mtime != files[j].mtime {
			return files[i].mtime < files[j].mtime
		}
		return files[i].path < files[j].path
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}

// Scan loads every record in the store, in List order. Unreadable
// files are skipped rather than failing the whole scan.
func (s *Store) Scan() ([]Record, error) {
	paths, err := s.List()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var records []Record
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		rec, err := s.read(name)
		if err != nil {
			continue
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) read(name string) (*Record, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// writeAtomic persists the full serialized record in one rename so a
// reader never sees a partial file. Output is UTF-8, not ASCII-escaped.
func (s *Store) writeAtomic(path string, rec Record) error {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(buf.String()), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
