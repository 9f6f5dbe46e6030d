package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/trendspotter/trendspotter/filesystem"
	"github.com/trendspotter/trendspotter/key"
	"github.com/trendspotter/trendspotter/log"
	"github.com/trendspotter/trendspotter/where"
)

// File is the on-disk shape of a catalog.
//
//	[[category]]
//	name = "Trends"
//	  [[category.item]]
//	  label = "AI Content Creation"
//	  target = "/trends/ai-content-creation"
type File struct {
	Categories []Category `toml:"category" json:"category" jsonschema:"required"`
}

// File returns the catalog in its serializable shape.
func (c *Catalog) File() File {
	return File{Categories: c.Categories()}
}

// Load reads a catalog from path. Files ending in .json are decoded as JSON, anything else as TOML.
func Load(path string) (*Catalog, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file File
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &file)
	} else {
		err = toml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	c, err := New(file.Categories)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return c, nil
}

// Resolve picks the catalog for this process: the configured path, then
// catalog.toml in the config directory, then the built-in one.
func Resolve() (*Catalog, error) {
	if path := viper.GetString(key.CatalogPath); path != "" {
		log.Infof("loading catalog from %s", path)
		return Load(path)
	}

	path := where.Catalog()
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Infof("loading catalog from %s", path)
		return Load(path)
	}

	return Builtin(), nil
}

// Schema describes File as JSON Schema.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	return r.Reflect(&File{})
}
