package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a single form definition. JSON is tried first for .json
// sources, YAML otherwise; the result is validated.
func Load(data []byte, source string) (Form, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Form{}, fmt.Errorf("model: definition %s is empty", source)
	}

	var form Form
	if strings.EqualFold(filepath.Ext(source), ".json") {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&form); err != nil {
			return Form{}, fmt.Errorf("model: parse %s: %w", source, err)
		}
	} else {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&form); err != nil {
			return Form{}, fmt.Errorf("model: parse %s: %w", source, err)
		}
	}

	normalise(&form)
	if err := Validate(form); err != nil {
		return Form{}, fmt.Errorf("model: %s: %w", source, err)
	}
	return form, nil
}

// LoadFile reads and parses a definition from disk.
func LoadFile(path string) (Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Form{}, fmt.Errorf("model: read %s: %w", path, err)
	}
	return Load(data, path)
}

// Store holds every form found in a definitions directory, keyed by id.
type Store struct {
	forms map[string]Form
}

// LoadFS walks fsys and loads every .yaml, .yml and .json file. A nil fsys
// yields an empty store. Form ids must be unique across files.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Form)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("model: read %s: %w", path, err)
		}
		form, err := Load(data, path)
		if err != nil {
			return err
		}
		if _, exists := store.forms[form.ID]; exists {
			return fmt.Errorf("model: duplicate form %q (file %s)", form.ID, path)
		}
		store.forms[form.ID] = form
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns a copy of the form with the given id.
func (s *Store) Form(id string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[id]
	if !ok {
		return Form{}, false
	}
	return form.Clone(), true
}

// IDs lists form ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func normalise(form *Form) {
	form.ID = strings.TrimSpace(form.ID)
	form.Method = strings.ToUpper(strings.TrimSpace(form.Method))
	for i := range form.Blocks {
		block := &form.Blocks[i]
		block.ID = strings.TrimSpace(block.ID)
		block.Label = strings.TrimSpace(block.Label)
		block.Control = Control(strings.ToLower(strings.TrimSpace(string(block.Control))))
		for j := range block.Options {
			block.Options[j].Value = strings.TrimSpace(block.Options[j].Value)
		}
	}
}
