package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/screening-engine/internal/schemas"
)

var schemaFiles = []string{
	"screening_form.schema.json",
	"submission.schema.json",
	"screening_result.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareJSONSchemaShape(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType || hasSchema || hasProps,
				"schema should have at least type, $schema, or properties")
		})
	}
}

func TestScreeningFormSchema_AcceptsExampleForm(t *testing.T) {
	err := schemas.ValidateJSON("screening_form.schema.json", "../testdata/valid/screening_form.json")
	assert.NoError(t, err)
}

func TestScreeningFormSchema_RejectsBadOperator(t *testing.T) {
	form := `{
		"id": "7b0c7c6e-51e6-4a2f-9c6b-2f4fbd3a9f01",
		"job_id": "2f9f0a4e-6d1b-4c3a-8e57-0a1b2c3d4e5f",
		"version": 1,
		"questions": [
			{
				"id": "q1",
				"prompt": "?",
				"type": "boolean",
				"order": 1,
				"rules": [
					{"id": "r1", "kind": "knockout", "operator": "matches"}
				]
			}
		]
	}`

	schemaData, err := os.ReadFile("screening_form.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), form)
	require.Error(t, err)
	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok, "should be a ValidationError, not a schema load failure")
}

func TestSubmissionSchema_AcceptsExampleSubmissions(t *testing.T) {
	err := schemas.ValidateJSON("submission.schema.json", "../testdata/valid/submissions.json")
	assert.NoError(t, err)
}

func TestScreeningResultSchema_RejectsUnknownStatus(t *testing.T) {
	result := `{
		"valid": true,
		"total_score": 25,
		"has_knockout": false,
		"recommended_status": "maybe"
	}`

	schemaData, err := os.ReadFile("screening_result.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), result)
	require.Error(t, err)
	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok)
}
