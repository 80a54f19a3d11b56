package catalog

import (
	_ "embed"
	"github.com/breedlens/breedlens-frontend/data"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"strings"
)

//go:embed breeds.yaml
var breedsYAML []byte

var ErrBreedNotFound = errors.New("breed not found")

// Catalog is the static breed reference data shown alongside predictions.
type Catalog struct {
	breeds []data.Breed
}

// Load returns the catalog built into the binary.
func Load() (*Catalog, error) {
	return Parse(breedsYAML)
}

func Parse(content []byte) (*Catalog, error) {
	var breeds []data.Breed
	if err := yaml.Unmarshal(content, &breeds); err != nil {
		return nil, errors.Wrap(err, "couldn't parse breed catalog")
	}

	seen := make(map[string]bool)
	for _, b := range breeds {
		if b.ID == "" {
			return nil, errors.Errorf("breed %q has no id", b.Name)
		}
		if seen[b.ID] {
			return nil, errors.Errorf("duplicate breed id %q", b.ID)
		}
		seen[b.ID] = true
	}

	return &Catalog{breeds: breeds}, nil
}

func (c *Catalog) All() []data.Breed {
	breeds := make([]data.Breed, len(c.breeds))
	copy(breeds, c.breeds)
	return breeds
}

// Search matches the term case-insensitively against name, origin and category.
func (c *Catalog) Search(term string) []data.Breed {
	term = strings.ToLower(strings.TrimSpace(term))

	breeds := make([]data.Breed, 0, len(c.breeds))
	for _, b := range c.breeds {
		if strings.Contains(strings.ToLower(b.Name), term) ||
			strings.Contains(strings.ToLower(b.Origin), term) ||
			strings.Contains(strings.ToLower(b.Category), term) {
			breeds = append(breeds, b)
		}
	}
	return breeds
}

func (c *Catalog) Get(id string) (data.Breed, error) {
	for _, b := range c.breeds {
		if b.ID == id {
			return b, nil
		}
	}
	return data.Breed{}, ErrBreedNotFound
}

// Lookup finds the breed a predicted label refers to.
func (c *Catalog) Lookup(label string) (data.Breed, bool) {
	b, err := c.Get(BreedID(label))
	return b, err == nil
}

// BreedID derives a catalog id from a breed name, e.g. "Red Sindhi" -> "red-sindhi".
func BreedID(label string) string {
	id := strings.ToLower(strings.TrimSpace(label))
	return strings.Join(strings.FieldsFunc(id, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "-")
}
