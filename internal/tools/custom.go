package tools

import (
	"github.com/skillyard-labs/skillyard/internal/errdefs"
	"github.com/skillyard-labs/skillyard/internal/settings"
	"github.com/skillyard-labs/skillyard/internal/slug"
)

// UpsertCustom adds or replaces a custom tool in the document. The id is
// slugified first and must not collide with a built-in integration.
func UpsertCustom(doc *settings.Document, input Definition) (settings.CustomTool, error) {
	id := slug.Make(input.ID)
	if IsBuiltinID(id) {
		return settings.CustomTool{}, errdefs.Validationf("custom tool id conflicts with a built-in integration")
	}
	clean := settings.CustomTool{
		ID:         id,
		Name:       input.Name,
		ConfigPath: input.ConfigPath,
		SkillsPath: input.SkillsPath,
		Cli:        input.Cli,
	}
	for i := range doc.CustomTools {
		if doc.CustomTools[i].ID == id {
			doc.CustomTools[i] = clean
			return clean, nil
		}
	}
	doc.CustomTools = append(doc.CustomTools, clean)
	return clean, nil
}

// DeleteCustom removes a custom tool and its enable override. Deleting an
// unknown id is a no-op.
func DeleteCustom(doc *settings.Document, id string) {
	kept := doc.CustomTools[:0]
	for _, tool := range doc.CustomTools {
		if tool.ID != id {
			kept = append(kept, tool)
		}
	}
	doc.CustomTools = kept
	delete(doc.ToolToggles, id)
}

// SetEnabled records an explicit enable override for a tool.
func SetEnabled(doc *settings.Document, id string, enabled bool) {
	if doc.ToolToggles == nil {
		doc.ToolToggles = map[string]bool{}
	}
	doc.ToolToggles[id] = enabled
}

// SetOrder replaces the persisted display order wholesale.
func SetOrder(doc *settings.Document, order []string) {
	doc.ToolOrder = order
}
