package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	configSchemaID = "https://github.com/bnema/dockyard/config.schema.json"
	layoutSchemaID = "https://github.com/bnema/dockyard/layout.schema.json"
)

// GenerateSchema reflects the configuration file schema.
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	schema := r.Reflect(&Config{})
	schema.ID = configSchemaID
	schema.Title = "Dockyard Configuration"
	schema.Description = "Configuration schema for dockyard, a docking layout engine"
	return schema
}

// GenerateLayoutSchema reflects the serialized layout document. Layout nodes
// are a tagged union, so each node type is described as its block plus a
// constant "type" discriminator.
func GenerateLayoutSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{Mapper: layoutMapper}
	schema := r.Reflect(&entity.LayoutDocument{})

	blocks := []struct {
		typ   entity.NodeType
		value any
	}{
		{entity.NodeTypeSplitter, &entity.SplitterLayout{}},
		{entity.NodeTypeDrawer, &entity.DrawerLayout{}},
		{entity.NodeTypeFrame, &entity.FrameLayout{}},
		{entity.NodeTypePanel, &entity.PanelLayout{}},
	}
	if schema.Definitions == nil {
		schema.Definitions = jsonschema.Definitions{}
	}
	for _, b := range blocks {
		for name, def := range r.Reflect(b.value).Definitions {
			schema.Definitions[name] = def
		}
	}

	schema.ID = layoutSchemaID
	schema.Title = "Dockyard Layout"
	schema.Description = fmt.Sprintf("Serialized docking layout, version %d", entity.LayoutVersion)
	return schema
}

var (
	layoutNodeType = reflect.TypeOf(entity.LayoutNode{})
	extentType     = reflect.TypeOf(entity.Extent(0))
	dockType       = reflect.TypeOf(entity.DockLocation(""))
)

func layoutMapper(t reflect.Type) *jsonschema.Schema {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case layoutNodeType:
		return layoutNodeSchema()
	case extentType:
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "number"},
				{Type: "string", Enum: []any{entity.InfinityToken, "-" + entity.InfinityToken}},
			},
		}
	case dockType:
		enum := make([]any, 0, len(entity.DockLocations))
		for _, l := range entity.DockLocations {
			enum = append(enum, string(l))
		}
		return &jsonschema.Schema{Type: "string", Enum: enum}
	}
	return nil
}

func layoutNodeSchema() *jsonschema.Schema {
	variants := []struct {
		typ entity.NodeType
		def string
	}{
		{entity.NodeTypeSplitter, "SplitterLayout"},
		{entity.NodeTypeDrawer, "DrawerLayout"},
		{entity.NodeTypeFrame, "FrameLayout"},
		{entity.NodeTypePanel, "PanelLayout"},
	}

	node := &jsonschema.Schema{}
	for _, v := range variants {
		props := jsonschema.NewProperties()
		props.Set("type", &jsonschema.Schema{Type: "string", Const: string(v.typ)})
		node.OneOf = append(node.OneOf, &jsonschema.Schema{
			AllOf: []*jsonschema.Schema{
				{Ref: "#/$defs/" + v.def},
				{Type: "object", Properties: props, Required: []string{"type"}},
			},
		})
	}
	return node
}

// WriteSchemaFiles writes config.schema.json and layout.schema.json into dir.
func WriteSchemaFiles(dir string) error {
	files := map[string]*jsonschema.Schema{
		"config.schema.json": GenerateSchema(),
		"layout.schema.json": GenerateLayoutSchema(),
	}
	for name, schema := range files {
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, filePerm); err != nil {
			return fmt.Errorf("failed to write schema file: %w", err)
		}
	}
	return nil
}
