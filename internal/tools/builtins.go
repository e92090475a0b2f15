package tools

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed builtins.yaml
var rawBuiltins []byte

var (
	builtinsOnce sync.Once
	builtinsList []Definition
)

type builtinsFile struct {
	Tools []Definition `yaml:"tools"`
}

// Builtins returns the embedded built-in tool definitions. The slice is
// shared; callers must not mutate it.
func Builtins() []Definition {
	builtinsOnce.Do(func() {
		var f builtinsFile
		if err := yaml.Unmarshal(rawBuiltins, &f); err != nil {
			// The asset ships inside the binary; a decode failure is a
			// build defect, not a runtime condition.
			panic("tools: decoding embedded builtins.yaml: " + err.Error())
		}
		builtinsList = f.Tools
	})
	return builtinsList
}

// IsBuiltinID reports whether id belongs to a built-in tool.
func IsBuiltinID(id string) bool {
	for _, def := range Builtins() {
		if def.ID == id {
			return true
		}
	}
	return false
}
