package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_TrimsLowercasesAndCollapsesSpaces(t *testing.T) {
	assert.Equal(t, "registered nurses", Key("  Registered   Nurses  "))
	assert.Equal(t, "software developers", Key("Software\tDevelopers"))
	assert.Equal(t, "a b c", Key("A\n B \r\n C"))
}

func TestKey_EmptyAndWhitespaceOnly(t *testing.T) {
	assert.Equal(t, "", Key(""))
	assert.Equal(t, "", Key("   \t\n "))
}

func TestKey_Idempotent(t *testing.T) {
	inputs := []string{
		"Registered Nurses",
		"  Plumbers,   Pipefitters, and Steamfitters ",
		"POLICE AND SHERIFF'S PATROL OFFICERS",
		"\tWeb\nDevelopers\t",
		"",
	}
	for _, in := range inputs {
		once := Key(in)
		assert.Equal(t, once, Key(once), "Key should be idempotent for %q", in)
		assert.NotContains(t, once, "  ", "no consecutive whitespace for %q", in)
		if once != "" {
			assert.Equal(t, once, Key(" "+once+" "))
		}
	}
}

func TestCollapseSpace_PreservesCase(t *testing.T) {
	assert.Equal(t, "Design and build software.", CollapseSpace("Design  and\n build   software."))
	assert.Equal(t, "", CollapseSpace("  \n "))
}
