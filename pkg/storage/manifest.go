package storage

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/askiada/go-identicon/pkg/identicon"
)

// Entry describes one written identicon.
type Entry struct {
	Input  string `json:"input"`
	File   string `json:"file"`
	Color  string `json:"color"`
	Filled int    `json:"filled"`
}

// Manifest is a JSON document listing the generated identicons, safe for concurrent use.
type Manifest struct {
	mu   sync.Mutex
	data []byte
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{data: []byte(`{"entries":[]}`)}
}

// LoadManifest reads a manifest written by Save.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read manifest %s", path)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf("manifest %s is not valid JSON", path)
	}

	return &Manifest{data: data}, nil
}

// Add appends an entry for img written to file.
func (m *Manifest) Add(img identicon.Image, file string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := sjson.SetBytes(m.data, "entries.-1", Entry{
		Input:  img.Input,
		File:   file,
		Color:  img.Color.Hex(),
		Filled: img.Filled,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to add %q to manifest", img.Input)
	}
	m.data = data

	return nil
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int(gjson.GetBytes(m.data, "entries.#").Int())
}

// Lookup returns the last entry added for input.
func (m *Manifest) Lookup(input string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		found Entry
		ok    bool
	)
	gjson.GetBytes(m.data, "entries").ForEach(func(_, value gjson.Result) bool {
		if value.Get("input").String() == input {
			found = Entry{
				Input:  input,
				File:   value.Get("file").String(),
				Color:  value.Get("color").String(),
				Filled: int(value.Get("filled").Int()),
			}
			ok = true
		}

		return true
	})

	return found, ok
}

// Bytes returns the JSON document.
func (m *Manifest) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]byte(nil), m.data...)
}

// Save writes the manifest to path.
func (m *Manifest) Save(path string) error {
	err := os.WriteFile(path, m.Bytes(), 0o644)
	if err != nil {
		return errors.Wrapf(identicon.ErrPersistenceFailure, "unable to write manifest %s: %v", path, err)
	}

	return nil
}
