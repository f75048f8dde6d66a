package filetypes

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/filetypes.yaml
var configFiles embed.FS

// genericType marks client content types that carry no information
const genericType = "application/octet-stream"

type registryFile struct {
	Default string            `yaml:"default"`
	Types   map[string]string `yaml:"types"`
}

// Registry resolves MIME types for uploaded files. Read-only after creation.
type Registry struct {
	defaultType string
	byExt       map[string]string
}

// NewRegistry loads the embedded extension table
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/filetypes.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read filetypes.yaml: %w", err)
	}
	return Parse(data)
}

// Parse builds a registry from YAML
func Parse(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filetypes: %w", err)
	}

	r := &Registry{
		defaultType: file.Default,
		byExt:       make(map[string]string, len(file.Types)),
	}
	if r.defaultType == "" {
		r.defaultType = genericType
	}
	for ext, mimeType := range file.Types {
		r.byExt[strings.ToLower(strings.TrimPrefix(ext, "."))] = mimeType
	}
	return r, nil
}

// Resolve returns the client type when it is specific, else the type
// registered for the filename's extension, else the default.
func (r *Registry) Resolve(filename, clientType string) string {
	clientType = strings.TrimSpace(clientType)
	if clientType != "" && !strings.HasPrefix(clientType, genericType) {
		return clientType
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if mimeType, ok := r.byExt[ext]; ok {
		return mimeType
	}
	return r.defaultType
}
