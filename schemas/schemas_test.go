package schemas_test

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-parser/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestNames(t *testing.T) {
	names, err := schemas.Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{schemas.ParsedResume, schemas.ConvertedResume, schemas.Portfolio}, names)
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	names, err := schemas.Names()
	require.NoError(t, err)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			data, err := schemas.Read(name)
			require.NoError(t, err)

			var v map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &v), "schema should be valid JSON")
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err, "schema should compile")
		})
	}
}

func TestParsedResumeSchema_RequiresSectionKeys(t *testing.T) {
	data, err := schemas.Read(schemas.ParsedResume)
	require.NoError(t, err)

	var v struct {
		Properties struct {
			ParsedSections struct {
				Required []string `json:"required"`
			} `json:"parsedSections"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &v))
	assert.Equal(t,
		[]string{"contact", "summary", "experience", "education", "skills", "projects", "certifications", "achievements"},
		v.Properties.ParsedSections.Required)
}

func TestRead_Unknown(t *testing.T) {
	_, err := schemas.Read("missing.schema.json")
	assert.Error(t, err)
}
