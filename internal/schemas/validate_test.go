package schemas

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `{
	"version": "bls_static_v1",
	"careers": [
		{
			"title": "Registered Nurses",
			"bls": {
				"summary": "Registered nurses provide and coordinate patient care.",
				"entry_education": "Bachelor's degree",
				"ooh_url": "https://www.bls.gov/ooh/healthcare/registered-nurses.htm"
			},
			"pay": {
				"starting_proxy_annual": 66000,
				"median_annual": 86070
			},
			"education_cost": {
				"years": 4,
				"total_tuition_fees": 56000,
				"note": "Public 4-year in-state estimate (tuition+fees only)."
			}
		},
		{
			"title": "Nonexistent Job",
			"bls": {
				"summary": null,
				"entry_education": null,
				"ooh_url": "https://www.bls.gov/ooh/occupation-finder.htm?search=Nonexistent+Job"
			},
			"pay": {
				"starting_proxy_annual": null,
				"median_annual": null
			},
			"education_cost": null
		}
	]
}`

func careersSchema(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(CareersSchemaFile)
	require.NotEmpty(t, path, "careers schema should be resolvable from the package directory")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestValidateJSONContent_ValidCatalog(t *testing.T) {
	schema := careersSchema(t)

	assert.NoError(t, ValidateJSONContent(schema, validCatalog))
}

func TestValidateJSONContent_WrongVersion(t *testing.T) {
	schema := careersSchema(t)

	err := ValidateJSONContent(schema, `{"version":"v2","careers":[]}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJSONContent_MissingPayField(t *testing.T) {
	schema := careersSchema(t)

	doc := `{
		"version": "bls_static_v1",
		"careers": [{
			"title": "X",
			"bls": {"summary": null, "entry_education": null, "ooh_url": "https://example.com"},
			"pay": {"starting_proxy_annual": null},
			"education_cost": null
		}]
	}`
	err := ValidateJSONContent(schema, doc)
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateJSONContent_MalformedSchema(t *testing.T) {
	err := ValidateJSONContent(`{not a schema`, `{}`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.schema.json"))
}
