package names

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"tertulia/internal/pipeline"
)

// Registry holds the canonical contertulio names and the raw aliases that
// map onto them. Canonical names keep first-registered order so fuzzy ties
// resolve the same way on every run.
type Registry struct {
	canonical []string
	aliases   map[string][]string // canonical -> raw aliases, first-seen order
	aliasOf   map[string]string   // raw alias -> canonical
	raw       []string            // raw_uniques as extracted from the sources
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		aliases: make(map[string][]string),
		aliasOf: make(map[string]string),
	}
}

// registryFile is the on-disk shape the registry is saved in. Loading also
// accepts two older shapes, see LoadRegistry.
type registryFile struct {
	RawUniques []string          `json:"raw_uniques"`
	Normalized []string          `json:"normalized"`
	Aliases    map[string]string `json:"aliases"`
}

// LoadRegistry reads a registry file in any of the three historical shapes:
// the current one (normalized list plus alias->canonical map), the legacy
// one (normalized list plus parallel alias lists) and the canonical_dict
// one (canonical->aliases map). A missing file yields an empty registry.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", path, err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", fmt.Sprintf("invalid JSON in %s", path), err)
	}

	reg := NewRegistry()
	if raw, ok := top["raw_uniques"]; ok {
		if err := json.Unmarshal(raw, &reg.raw); err != nil {
			return nil, pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", "raw_uniques", err)
		}
	}

	switch {
	case top["canonical_dict"] != nil:
		if err := reg.loadCanonicalDict(top["canonical_dict"]); err != nil {
			return nil, err
		}
	case top["normalized"] != nil:
		if err := reg.loadNormalized(top["normalized"], top["aliases"]); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (r *Registry) loadCanonicalDict(raw json.RawMessage) error {
	keys, values, err := decodeOrderedObject(raw)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", "canonical_dict", err)
	}
	for i, canonical := range keys {
		var aliasList []string
		if err := json.Unmarshal(values[i], &aliasList); err != nil {
			return pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", "canonical_dict aliases", err)
		}
		r.AddCanonical(canonical)
		for _, alias := range aliasList {
			r.AddAlias(alias, canonical)
		}
	}
	return nil
}

func (r *Registry) loadNormalized(normalizedRaw, aliasesRaw json.RawMessage) error {
	var normalized []string
	if err := json.Unmarshal(normalizedRaw, &normalized); err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", "normalized", err)
	}
	for _, canonical := range normalized {
		r.AddCanonical(canonical)
	}
	if len(aliasesRaw) == 0 {
		return nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(aliasesRaw), []byte("{")) {
		// Current shape: alias -> canonical map.
		keys, values, err := decodeOrderedObject(aliasesRaw)
		if err != nil {
			return pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", "aliases", err)
		}
		for i, alias := range keys {
			var canonical string
			if err := json.Unmarshal(values[i], &canonical); err != nil {
				return pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", "aliases", err)
			}
			if r.IsCanonical(canonical) {
				r.AddAlias(alias, canonical)
			}
		}
		return nil
	}

	// Legacy shape: list of alias lists parallel to the normalized list;
	// elements may be a single string instead of a list.
	var parallel []json.RawMessage
	if err := json.Unmarshal(aliasesRaw, &parallel); err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", "aliases", err)
	}
	for i, canonical := range normalized {
		if i >= len(parallel) {
			break
		}
		var aliasList []string
		if err := json.Unmarshal(parallel[i], &aliasList); err != nil {
			var single string
			if err := json.Unmarshal(parallel[i], &single); err != nil {
				return pipeline.Wrap(pipeline.ErrFatal, "names", "load-registry", "aliases", err)
			}
			aliasList = []string{single}
		}
		for _, alias := range aliasList {
			r.AddAlias(alias, canonical)
		}
	}
	return nil
}

// decodeOrderedObject parses a JSON object keeping the key order of the
// document, which encoding/json map decoding would lose.
func decodeOrderedObject(data []byte) (keys []string, values []json.RawMessage, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		values = append(values, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}

// Save writes the registry in the current shape: sorted canonical list,
// flat alias->canonical map and the raw uniques census.
func (r *Registry) Save(path string) error {
	out := registryFile{
		RawUniques: r.raw,
		Normalized: append([]string(nil), r.canonical...),
		Aliases:    make(map[string]string, len(r.aliasOf)),
	}
	sort.Strings(out.Normalized)
	for alias, canonical := range r.aliasOf {
		out.Aliases[alias] = canonical
	}
	if out.RawUniques == nil {
		out.RawUniques = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "names", "save-registry", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "names", "save-registry", path, err)
	}
	return nil
}

// AddCanonical registers a canonical name; re-adding is a no-op.
func (r *Registry) AddCanonical(name string) {
	if _, ok := r.aliases[name]; ok {
		return
	}
	r.canonical = append(r.canonical, name)
	r.aliases[name] = nil
}

// AddAlias maps a raw mention onto a canonical name, registering the
// canonical if needed. Re-adding an existing alias is a no-op.
func (r *Registry) AddAlias(alias, canonical string) {
	r.AddCanonical(canonical)
	if _, ok := r.aliasOf[alias]; ok {
		return
	}
	r.aliasOf[alias] = canonical
	if alias != canonical {
		r.aliases[canonical] = append(r.aliases[canonical], alias)
	}
}

// IsCanonical reports whether name is a registered canonical name.
func (r *Registry) IsCanonical(name string) bool {
	_, ok := r.aliases[name]
	return ok
}

// AliasTarget returns the canonical a raw mention was mapped to, if any.
func (r *Registry) AliasTarget(alias string) (string, bool) {
	canonical, ok := r.aliasOf[alias]
	return canonical, ok
}

// Canonicals returns the canonical names in first-registered order.
func (r *Registry) Canonicals() []string {
	return append([]string(nil), r.canonical...)
}

// Aliases returns the raw aliases of a canonical name, excluding itself.
func (r *Registry) Aliases(canonical string) []string {
	return append([]string(nil), r.aliases[canonical]...)
}

// AliasPairs returns every alias->canonical mapping sorted by alias.
func (r *Registry) AliasPairs() [][2]string {
	pairs := make([][2]string, 0, len(r.aliasOf))
	for alias, canonical := range r.aliasOf {
		pairs = append(pairs, [2]string{alias, canonical})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

// RawUniques returns the raw census the registry was built from.
func (r *Registry) RawUniques() []string {
	return append([]string(nil), r.raw...)
}

// SetRawUniques replaces the raw census, typically after re-extraction.
func (r *Registry) SetRawUniques(uniques []string) {
	r.raw = append([]string(nil), uniques...)
}

// Len returns the number of canonical names.
func (r *Registry) Len() int {
	return len(r.canonical)
}
