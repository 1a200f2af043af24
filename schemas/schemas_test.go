package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestCareersSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("careers.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestCareersSchema_Compiles(t *testing.T) {
	data, err := os.ReadFile("careers.schema.json")
	require.NoError(t, err)

	_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	assert.NoError(t, err, "schema file should be a valid JSON Schema")
}
