package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSelector is a catalog that records toggled names
type fakeSelector struct {
	catalog []string
	toggled []string
}

func (f *fakeSelector) Catalog() []string {
	return f.catalog
}

func (f *fakeSelector) ToggleName(name string) bool {
	for _, known := range f.catalog {
		if known == name {
			f.toggled = append(f.toggled, name)
			return true
		}
	}
	return false
}

func TestSelectBouquets(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		all     bool
		toggled []string
		wantErr string
	}{
		{name: "known names", names: []string{"News", "Sport"}, toggled: []string{"News", "Sport"}},
		{name: "all", all: true, toggled: []string{"Sport", "News", "Movies"}},
		{name: "nothing", toggled: nil},
		{
			name:    "unknown names reported together",
			names:   []string{"Sport", "Cartoons", "Weather"},
			toggled: []string{"Sport"},
			wantErr: "unknown bouquet(s): [Cartoons Weather]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := &fakeSelector{catalog: []string{"Sport", "News", "Movies"}}

			err := selectBouquets(selector, tt.names, tt.all)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.toggled, selector.toggled)
		})
	}
}

func TestSelectAndAllAreExclusive(t *testing.T) {
	t.Cleanup(func() {
		installAll = false
		installSelect = nil
		rootCmd.SetArgs(nil)
	})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"install", "--all", "--select", "Sport", "--sandbox", t.TempDir()})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}
