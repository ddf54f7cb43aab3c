package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file, keyed by the
// YAML field names, for editor completion and validation.
func Schema() (string, error) {
	reflector := jsonschema.Reflector{
		FieldNameTag: "yaml",
	}
	schema := reflector.Reflect(&Config{})

	jsonSchemaBytes, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}
