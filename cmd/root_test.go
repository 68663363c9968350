package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	convertCmd "github.com/mpapenbr/fmtune-formatter/pkg/cmd/convert"
	generateCmd "github.com/mpapenbr/fmtune-formatter/pkg/cmd/generate"
	"github.com/mpapenbr/fmtune-formatter/pkg/config"
)

func TestBindFlagsFromEnv(t *testing.T) {
	t.Setenv("FMTUNE_LOG_LEVEL", "debug")
	t.Setenv("FMTUNE_TARGET", "chat")

	var level, target, link string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&level, "log-level", "info", "")
	cmd.Flags().StringVar(&target, "target", "forum", "")
	cmd.Flags().StringVar(&link, "link", "", "")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	bindFlags(cmd, v)

	assert.Equal(t, "debug", level)
	assert.Equal(t, "chat", target)
	assert.Equal(t, "", link)
}

func TestBindFlagsKeepsExplicitValue(t *testing.T) {
	t.Setenv("FMTUNE_TARGET", "chat")

	var target string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&target, "target", "forum", "")
	require.NoError(t, cmd.Flags().Set("target", "forum"))

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	bindFlags(cmd, v)

	assert.Equal(t, "forum", target)
}

func TestBindFlagsKeepsSubcommandKeysApart(t *testing.T) {
	t.Setenv("FMTUNE_OUTPUT", "json")
	t.Setenv("FMTUNE_OUT_FILE", "doc.md")
	defer func(output, outFile string) {
		config.Output, config.OutputFile = output, outFile
	}(config.Output, config.OutputFile)

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for _, c := range []*cobra.Command{generateCmd.NewGenerateCmd(), convertCmd.NewConvertCmd()} {
		bindFlags(c, v)
	}

	assert.Equal(t, "json", config.Output)
	assert.Equal(t, "doc.md", config.OutputFile)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := []string{}
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"generate", "convert", "units"})
}

func TestUnitsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"units", "--system", "metric"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "km/h")
}
