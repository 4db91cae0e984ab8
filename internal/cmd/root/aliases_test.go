package root

import (
	"strings"
	"testing"

	"github.com/schmitthub/dockhand/internal/cmdutil"
	"github.com/schmitthub/dockhand/internal/config"
	"github.com/schmitthub/dockhand/internal/iostreams"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestTopLevelAliasesWellFormed(t *testing.T) {
	tio := iostreams.NewTestIOStreams()
	f := &cmdutil.Factory{
		IOStreams: tio.IOStreams,
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}

	seen := make(map[string]bool)
	for _, alias := range topLevelAliases {
		require.NotEmpty(t, alias.Use, "alias with empty Use")
		require.NotNil(t, alias.Command, "alias %q has no command factory", alias.Use)

		cmd := alias.Command(f)
		require.NotNil(t, cmd, "alias %q factory returned nil", alias.Use)
		require.NotNil(t, cmd.RunE, "alias %q target has no RunE", alias.Use)

		name := strings.Fields(alias.Use)[0]
		require.False(t, seen[name], "duplicate alias %q", name)
		seen[name] = true
	}
}

func TestRegisterAliasesOverridesUse(t *testing.T) {
	tio := iostreams.NewTestIOStreams()
	f := &cmdutil.Factory{
		IOStreams: tio.IOStreams,
		Config: func() *config.Config {
			return config.NewConfigForTest(nil)
		},
	}

	root := &cobra.Command{Use: "dockhand"}
	registerAliases(root, f)

	var ps *cobra.Command
	for _, sub := range root.Commands() {
		if sub.Name() == "ps" {
			ps = sub
			break
		}
	}
	require.NotNil(t, ps, "ps alias not registered")
	require.Equal(t, "ps", ps.Use)
	require.Empty(t, ps.Aliases, "top-level alias should not carry leaf shorthands")
	require.Contains(t, ps.Example, "dockhand ps")
}

// Alias targets must never collide with the group commands the root
// registers alongside them.
func TestAliasesDoNotShadowGroups(t *testing.T) {
	groups := map[string]bool{
		"containers":  true,
		"images":      true,
		"networks":    true,
		"volumes":     true,
		"monitor":     true,
		"interactive": true,
		"config":      true,
		"version":     true,
	}
	for _, alias := range topLevelAliases {
		name := strings.Fields(alias.Use)[0]
		require.False(t, groups[name], "alias %q shadows a group command", name)
	}
}
