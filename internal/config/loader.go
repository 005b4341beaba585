package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// aliasesKey is the configuration key holding path aliases.
const aliasesKey = "path_aliases"

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads and validates configuration from the specified file path.
// The syntax is chosen by DetectFormat.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	format := DetectFormat(path)
	debug.Debug("[config] Loading %s configuration: %s (%d bytes)", format, path, len(data))

	var cfg *Config
	switch format {
	case FormatYAML:
		cfg, err = parseYAML(path, data)
	default:
		cfg, err = parseTOML(path, data)
	}
	if err != nil {
		return nil, err
	}

	if err := validateConfig(path, cfg); err != nil {
		return nil, err
	}

	debug.Debug("[config] Loaded: dirs=%v, aliases=%d, include=%v, exclude=%v",
		cfg.Dirs, len(cfg.PathAliases), cfg.Include, cfg.Exclude)
	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return validateConfig("", config)
}

// parseTOML decodes a TOML document. Aliases are read with the low-level
// parser so their declaration order survives.
func parseTOML(path string, data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		cfgErr := NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			cfgErr.Line, cfgErr.Column = decodeErr.Position()
			cfgErr.Message = "invalid TOML syntax: " + decodeErr.Error()
			cfgErr.Cause = nil
		}
		return nil, cfgErr
	}

	aliases, err := tomlAliases(data)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
	}
	cfg.PathAliases = aliases
	return cfg, nil
}

// tomlAliases returns the string entries of the path_aliases table in
// declaration order. The table may be declared as a [path_aliases] section,
// an inline table, or with dotted keys.
func tomlAliases(data []byte) ([]model.AliasEntry, error) {
	var p unstable.Parser
	p.Reset(data)

	var entries []model.AliasEntry
	add := func(token string, value *unstable.Node) {
		if value.Kind != unstable.String {
			debug.Debug("[config] Ignoring non-string alias %q (%s)", token, value.Kind)
			return
		}
		entries = append(entries, model.AliasEntry{Token: token, Target: string(value.Data)})
	}

	inAliases := false
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			key := keyParts(expr.Key())
			inAliases = len(key) == 1 && key[0] == aliasesKey
		case unstable.ArrayTable:
			inAliases = false
		case unstable.KeyValue:
			key := keyParts(expr.Key())
			value := expr.Value()
			switch {
			case inAliases && len(key) == 1:
				add(key[0], value)
			case !inAliases && len(key) == 2 && key[0] == aliasesKey:
				add(key[1], value)
			case !inAliases && len(key) == 1 && key[0] == aliasesKey && value.Kind == unstable.InlineTable:
				children := value.Children()
				for children.Next() {
					kv := children.Node()
					if inner := keyParts(kv.Key()); len(inner) == 1 {
						add(inner[0], kv.Value())
					}
				}
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return entries, nil
}

// keyParts flattens a key iterator into its dotted components.
func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// parseYAML decodes a YAML document, reading aliases from the node tree so
// their declaration order survives.
func parseYAML(path string, data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML syntax", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML syntax", err)
	}
	cfg.PathAliases = yamlAliases(&doc)
	return cfg, nil
}

// yamlAliases returns the string entries of the path_aliases mapping in
// declaration order.
func yamlAliases(doc *yaml.Node) []model.AliasEntry {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	var entries []model.AliasEntry
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != aliasesKey {
			continue
		}
		aliases := root.Content[i+1]
		if aliases.Kind != yaml.MappingNode {
			debug.Debug("[config] Ignoring %s: not a mapping", aliasesKey)
			return nil
		}
		for j := 0; j+1 < len(aliases.Content); j += 2 {
			key, value := aliases.Content[j], aliases.Content[j+1]
			if value.Kind != yaml.ScalarNode || value.Tag != "!!str" {
				debug.Debug("[config] Ignoring non-string alias %q (line %d)", key.Value, key.Line)
				continue
			}
			entries = append(entries, model.AliasEntry{Token: key.Value, Target: value.Value})
		}
	}
	return entries
}

// Save writes cfg to path in the format chosen by DetectFormat.
// Aliases are written in their declaration order.
func Save(path string, cfg *Config) error {
	var data []byte
	var err error
	switch DetectFormat(path) {
	case FormatYAML:
		data, err = encodeYAML(cfg)
	default:
		data, err = encodeTOML(cfg)
	}
	if err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to encode configuration", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path,
			fmt.Sprintf("failed to create directory %s", dir), err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to write configuration file", err)
	}

	debug.Debug("[config] Saved configuration: %s (%d bytes)", path, len(data))
	return nil
}

// encodeTOML renders cfg with the alias table last. Each alias is encoded
// on its own so the declaration order is kept.
func encodeTOML(cfg *Config) ([]byte, error) {
	dirs := cfg.Dirs
	if dirs == nil {
		dirs = []string{}
	}
	top := *cfg
	top.Dirs = dirs

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(top); err != nil {
		return nil, err
	}

	buf.WriteString("\n[" + aliasesKey + "]\n")
	for _, alias := range cfg.PathAliases {
		line, err := toml.Marshal(map[string]string{alias.Token: alias.Target})
		if err != nil {
			return nil, err
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}

// encodeYAML renders cfg as a YAML mapping with aliases in declaration order.
func encodeYAML(cfg *Config) ([]byte, error) {
	var top yaml.Node
	if err := top.Encode(cfg); err != nil {
		return nil, err
	}

	aliases := &yaml.Node{Kind: yaml.MappingNode}
	for _, alias := range cfg.PathAliases {
		aliases.Content = append(aliases.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: alias.Token},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: alias.Target},
		)
	}
	top.Content = append(top.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: aliasesKey},
		aliases,
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&top); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
