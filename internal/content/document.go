package content

import (
	"encoding/json"
	"sort"
)

// IconType distinguishes emoji icons from image URLs.
type IconType string

const (
	IconEmoji IconType = "emoji"
	IconImage IconType = "image"
)

// Icon is the visual marker of a project or talk.
type Icon struct {
	Type  IconType `json:"type"`
	Value string   `json:"value"`
}

// Item is one project or talk entry. Description may contain inline markup.
type Item struct {
	Text        string `json:"text"`
	Description string `json:"description"`
	Href        string `json:"href"`
	Icon        *Icon  `json:"icon"`
	Date        string `json:"date"`
	Slug        string `json:"slug,omitempty"`
}

// ConfigMap holds the key/value pairs extracted from config rows.
type ConfigMap map[string]string

// Keys returns the config keys in sorted order.
func (m ConfigMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

const (
	projectsKey = "projects"
	talksKey    = "talks"
)

// Document is the normalised homepage content.
type Document struct {
	Config   ConfigMap
	Projects []Item
	Talks    []Item
}

// NewDocument returns an empty document with non-nil collections.
func NewDocument() Document {
	return Document{
		Config:   ConfigMap{},
		Projects: []Item{},
		Talks:    []Item{},
	}
}

// Get returns a config value.
func (d Document) Get(key string) (string, bool) {
	value, ok := d.Config[key]
	return value, ok
}

// MarshalJSON spreads config keys at the top level next to the projects and
// talks arrays. The arrays are always present and win over config keys of
// the same name.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Config)+2)
	for key, value := range d.Config {
		out[key] = value
	}
	out[projectsKey] = nonNilItems(d.Projects)
	out[talksKey] = nonNilItems(d.Talks)
	return json.Marshal(out)
}

// UnmarshalJSON reverses MarshalJSON. Non-string top-level values other
// than the lists are ignored.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	doc := NewDocument()
	for key, value := range raw {
		switch key {
		case projectsKey:
			if err := json.Unmarshal(value, &doc.Projects); err != nil {
				return err
			}
		case talksKey:
			if err := json.Unmarshal(value, &doc.Talks); err != nil {
				return err
			}
		default:
			var s string
			if err := json.Unmarshal(value, &s); err == nil {
				doc.Config[key] = s
			}
		}
	}
	doc.Projects = nonNilItems(doc.Projects)
	doc.Talks = nonNilItems(doc.Talks)
	*d = doc
	return nil
}

func nonNilItems(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	return items
}
