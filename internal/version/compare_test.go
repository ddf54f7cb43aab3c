package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		binaryVersion string
		configVersion string
		expectError   bool
		errorContains string
	}{
		{
			name:          "exact match",
			binaryVersion: "0.3.0",
			configVersion: "0.3.0",
		},
		{
			name:          "older config minor",
			binaryVersion: "0.3.2",
			configVersion: "0.2.0",
		},
		{
			name:          "patch differs",
			binaryVersion: "0.3.0",
			configVersion: "0.3.9",
		},
		{
			name:          "v prefix",
			binaryVersion: "v0.3.0",
			configVersion: "v0.3.0",
		},
		{
			name:          "empty config version",
			binaryVersion: "0.3.0",
			configVersion: "",
		},
		{
			name:          "development binary",
			binaryVersion: "main",
			configVersion: "9.9.9",
		},
		{
			name:          "same minor newer config patch",
			binaryVersion: "0.3.0",
			configVersion: "0.3.1",
		},
		{
			name:          "older config minor newer config patch",
			binaryVersion: "0.4.0",
			configVersion: "0.3.9",
		},
		{
			name:          "newer config minor",
			binaryVersion: "0.3.0",
			configVersion: "0.4.0",
			expectError:   true,
			errorContains: "config requires 0.4.x but binary is 0.3.x",
		},
		{
			name:          "config minor one above despite higher binary patch",
			binaryVersion: "0.3.9",
			configVersion: "0.4.0",
			expectError:   true,
			errorContains: "config requires 0.4.x but binary is 0.3.x",
		},
		{
			name:          "major one minor equal",
			binaryVersion: "1.2.0",
			configVersion: "1.2.7",
		},
		{
			name:          "major one minor one above",
			binaryVersion: "1.2.5",
			configVersion: "1.3.0",
			expectError:   true,
			errorContains: "config requires 1.3.x but binary is 1.2.x",
		},
		{
			name:          "config is main",
			binaryVersion: "0.3.0",
			configVersion: "main",
		},
		{
			name:          "both are main",
			binaryVersion: "main",
			configVersion: "main",
		},
		{
			name:          "v prefix on config only",
			binaryVersion: "0.3.0",
			configVersion: "v0.3.0",
		},
		{
			name:          "prerelease config at binary minor",
			binaryVersion: "0.3.0",
			configVersion: "0.3.0-rc.1",
		},
		{
			name:          "build metadata",
			binaryVersion: "0.3.0+build.7",
			configVersion: "0.3.0",
		},
		{
			name:          "major higher in config",
			binaryVersion: "0.3.0",
			configVersion: "1.0.0",
			expectError:   true,
			errorContains: "major version mismatch: binary is 0.x.x but config requires 1.x.x",
		},
		{
			name:          "major differs",
			binaryVersion: "1.0.0",
			configVersion: "0.3.0",
			expectError:   true,
			errorContains: "major version mismatch",
		},
		{
			name:          "invalid binary version",
			binaryVersion: "not-a-version",
			configVersion: "0.3.0",
			expectError:   true,
			errorContains: "invalid binary version",
		},
		{
			name:          "invalid config version",
			binaryVersion: "0.3.0",
			configVersion: "latest",
			expectError:   true,
			errorContains: "invalid config version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConfigCompatibility(tt.binaryVersion, tt.configVersion)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCurrentVersionAcceptsItsOwnConfig(t *testing.T) {
	require.NoError(t, CheckConfigCompatibility(GetVersion(), GetVersion()))
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
