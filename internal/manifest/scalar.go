package manifest

import (
	"github.com/MrSnakeDoc/urlb/internal/urlbuilder"

	"gopkg.in/yaml.v3"
)

// ScalarValue keeps the text of a YAML scalar as written and uses its typed
// reading only to decide whether it is falsy. Null scalars are written "null".
func ScalarValue(n *yaml.Node) (urlbuilder.Scalar, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return urlbuilder.Scalar{}, err
	}

	text := n.Value
	if n.ShortTag() == "!!null" {
		text = "null"
	}
	return urlbuilder.Scalar{Text: text, Empty: urlbuilder.Falsy(v)}, nil
}
