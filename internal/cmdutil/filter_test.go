package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []Filter
		wantErr string
	}{
		{
			name: "single filter",
			raw:  []string{"status=running"},
			want: []Filter{{Key: "status", Value: "running"}},
		},
		{
			name: "multiple filters",
			raw:  []string{"name=web", "status=running"},
			want: []Filter{
				{Key: "name", Value: "web"},
				{Key: "status", Value: "running"},
			},
		},
		{
			name: "value contains equals",
			raw:  []string{"label=env=prod"},
			want: []Filter{{Key: "label", Value: "env=prod"}},
		},
		{
			name: "empty value is valid",
			raw:  []string{"dangling="},
			want: []Filter{{Key: "dangling", Value: ""}},
		},
		{
			name: "nil input",
			raw:  nil,
			want: []Filter{},
		},
		{
			name:    "missing equals sign",
			raw:     []string{"running"},
			wantErr: "invalid filter format",
		},
		{
			name:    "empty key",
			raw:     []string{"=value"},
			wantErr: "empty key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilters(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.IsType(t, &FlagError{}, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateFilterKeys(t *testing.T) {
	filters := []Filter{
		{Key: "name", Value: "web"},
		{Key: "status", Value: "running"},
	}

	assert.NoError(t, ValidateFilterKeys(filters, []string{"name", "status", "label"}))

	err := ValidateFilterKeys(filters, []string{"name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid filter key "status"`)
	assert.Contains(t, err.Error(), "valid keys: name")
	assert.IsType(t, &FlagError{}, err)
}

func TestFilterArgs(t *testing.T) {
	filters := []Filter{
		{Key: "name", Value: "web"},
		{Key: "label", Value: "env=prod"},
	}

	assert.Equal(t, []string{"name=web", "label=env=prod"}, FilterArgs(filters))
	assert.Empty(t, FilterArgs(nil))
}
