package manifest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateTestFile(t *testing.T, name string) (*ValidationResult, error) {
	t.Helper()
	data, err := os.ReadFile(testPath(name))
	require.NoError(t, err)
	return Validate(data)
}

func TestValidate_ValidProjects(t *testing.T) {
	for _, file := range []string{"valid-full.yaml", "valid-minimal.yaml", "valid-empty.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := validateTestFile(t, file)
			require.NoError(t, err)
			for _, issue := range result.Issues {
				t.Errorf("  key=%s keyword=%s message=%s", issue.Key, issue.Keyword, issue.Message)
			}
			assert.True(t, result.Valid)
		})
	}
}

func TestValidate_InvalidProjects(t *testing.T) {
	tests := []struct {
		file    string
		key     string
		keyword string
	}{
		{"invalid-unknown-key.yaml", "plugin_dir", "additionalProperties"},
		{"invalid-platform.yaml", "platform", "enum"},
		{"invalid-extension.yaml", "extension", "pattern"},
		{"invalid-marker.yaml", "markers.middle", "additionalProperties"},
		{"invalid-marker.yaml", "markers.lower", "minLength"},
	}

	for _, tt := range tests {
		t.Run(tt.file+"/"+tt.key, func(t *testing.T) {
			result, err := validateTestFile(t, tt.file)
			require.NoError(t, err)
			require.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)

			found := false
			for _, issue := range result.Issues {
				assert.NotEmpty(t, issue.Message)
				if issue.Key == tt.key && issue.Keyword == tt.keyword {
					found = true
				}
			}
			assert.True(t, found, "no %s issue for %q in %+v", tt.keyword, tt.key, result.Issues)
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	_, err := validateTestFile(t, "invalid-not-yaml.yaml")
	require.Error(t, err)
}

func TestValidate_UnknownKeysReportedSeparately(t *testing.T) {
	result, err := Validate([]byte("plugin_dir: a\nplatfrom: linux\nplatform: linux\n"))
	require.NoError(t, err)
	require.False(t, result.Valid)

	var keys []string
	for _, issue := range result.Issues {
		assert.Equal(t, "unknown setting", issue.Message)
		keys = append(keys, issue.Key)
	}
	assert.Equal(t, []string{"platfrom", "plugin_dir"}, keys)
}

func TestValidate_EnumNamesAllowedValues(t *testing.T) {
	result, err := Validate([]byte("platform: win32\n"))
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "platform", result.Issues[0].Key)
	assert.Contains(t, result.Issues[0].Message, "win32 is not one of aix, android, darwin")
}

func TestValidate_MarshaledDefaultIsValid(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	result, err := Validate(data)
	require.NoError(t, err)
	assert.True(t, result.Valid, "%+v", result.Issues)
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
