package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/configs"
)

const personSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("https://giftroll.local/schemas/person.json", []byte(personSchema)))

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", `{"name": "John", "age": 30}`, ""},
		{"optional field missing", `{"name": "Jane"}`, ""},
		{"required field missing", `{"age": 25}`, "required"},
		{"wrong type", `{"name": "John", "age": "thirty"}`, "/age"},
		{"below minimum", `{"name": "John", "age": -1}`, "minimum"},
		{"not json", `{`, "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "https://giftroll.local/schemas/person.json")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaValidator_Unregistered(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "https://giftroll.local/schemas/none.json")
	assert.ErrorContains(t, err, "not registered")
}

func TestSchemaValidator_BadSchema(t *testing.T) {
	err := NewSchemaValidator().Register("https://giftroll.local/schemas/bad.json", []byte(`{"type":`))
	assert.ErrorContains(t, err, "failed to parse schema JSON")
}

func TestValidateCaseCatalog(t *testing.T) {
	assert.NoError(t, ValidateCaseCatalog(configs.CaseCatalog), "the shipped catalog is valid")

	tests := []struct {
		name string
		doc  string
	}{
		{"no cases key", `{}`},
		{"empty list", `{"cases":[]}`},
		{"negative cost", `{"cases":[{"type":"a","cost":-1,"rewards":[{"kind":"ton","chance":1}]}]}`},
		{"unknown kind", `{"cases":[{"type":"a","rewards":[{"kind":"car","chance":1}]}]}`},
		{"missing chance", `{"cases":[{"type":"a","rewards":[{"kind":"ton"}]}]}`},
		{"bad type name", `{"cases":[{"type":"Big Case","rewards":[{"kind":"ton","chance":1}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCaseCatalog([]byte(tt.doc))
			assert.ErrorContains(t, err, "schema validation failed")
		})
	}
}
