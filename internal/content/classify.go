package content

import (
	"strings"

	"github.com/goliatone/go-homepage/internal/rows"
)

const (
	projectsTag = "projects"
	talksTag    = "talks"
)

// Classification records which lists a row belongs to.
type Classification struct {
	IsProject bool
	IsTalk    bool
}

// IsConfig reports whether the row belongs to neither list.
func (c Classification) IsConfig() bool {
	return !c.IsProject && !c.IsTalk
}

// Classify inspects the tag cell. Only select and multi_select cells carry
// labels; every other type, and a nil cell, classifies as config.
func Classify(tag *rows.Cell) Classification {
	var out Classification
	for _, label := range tagLabels(tag) {
		switch label {
		case projectsTag:
			out.IsProject = true
		case talksTag:
			out.IsTalk = true
		}
	}
	return out
}

func tagLabels(tag *rows.Cell) []string {
	if tag == nil {
		return nil
	}
	switch tag.Type {
	case rows.CellMultiSelect:
		labels := make([]string, 0, len(tag.MultiSelect))
		for _, option := range tag.MultiSelect {
			labels = append(labels, strings.ToLower(option.Name))
		}
		return labels
	case rows.CellSelect:
		if tag.Select == nil {
			return nil
		}
		return []string{strings.ToLower(tag.Select.Name)}
	default:
		return nil
	}
}
