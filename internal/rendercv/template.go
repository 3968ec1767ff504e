package rendercv

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"resumeforge/pkg/models"
)

// bulletGlyph is the character RenderCV highlight lists are normalized to,
// regardless of what the base template ships with.
const bulletGlyph = "•"

// LoadBaseTemplate reads and parses the base RenderCV document holding the
// design/theme configuration. The template is loaded per request so no
// mutable state is shared between renders.
func LoadBaseTemplate(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateLoad, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: base template is not a mapping document", ErrTemplateLoad)
	}

	return &doc, nil
}

// Merge replaces the cv subtree of the base document with the given content.
// Working on the node tree keeps every sibling of cv untouched, including
// design keys this service knows nothing about.
func Merge(base *yaml.Node, cv *models.RenderCV) error {
	var cvNode yaml.Node
	if err := cvNode.Encode(cv); err != nil {
		return fmt.Errorf("encode cv content: %w", err)
	}

	root := base.Content[0]
	if existing := mappingValue(root, "cv"); existing != nil {
		*existing = cvNode
		return nil
	}

	// No placeholder in the template: append the cv key
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "cv"},
		&cvNode,
	)
	return nil
}

// NormalizeBulletGlyph rewrites design.highlights.bullet to the fixed glyph.
// Callers treat a missing path as a warning, not a failure; the document is
// used as-is in that case.
func NormalizeBulletGlyph(base *yaml.Node) error {
	root := base.Content[0]

	design := mappingValue(root, "design")
	if design == nil || design.Kind != yaml.MappingNode {
		return fmt.Errorf("template has no design mapping")
	}
	highlights := mappingValue(design, "highlights")
	if highlights == nil || highlights.Kind != yaml.MappingNode {
		return fmt.Errorf("template design has no highlights mapping")
	}
	bullet := mappingValue(highlights, "bullet")
	if bullet == nil || bullet.Kind != yaml.ScalarNode {
		return fmt.Errorf("template design.highlights has no bullet field")
	}

	bullet.SetString(bulletGlyph)
	return nil
}

// Serialize renders the merged document back to YAML.
func Serialize(doc *yaml.Node) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize merged document: %w", err)
	}
	return data, nil
}

// mappingValue returns the value node for key within a mapping node, or nil.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
