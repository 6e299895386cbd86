package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/agroclim/climate-cli/internal/config"
)

const configFileName = "config.yaml"

const configHeader = `# agroclim configuration.
# Every key can also be set via environment variables with the AGROCLIM_
# prefix, e.g. AGROCLIM_DATA_PATH. The columns block pins source columns to
# canonical roles; leave entries empty to let the loader sniff the header.
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a documented default config.yaml to the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFileName); err == nil {
			return eris.Errorf("%s already exists, refusing to overwrite", configFileName)
		}

		body, err := yaml.Marshal(config.Default())
		if err != nil {
			return eris.Wrap(err, "marshal default config")
		}

		if err := os.WriteFile(configFileName, append([]byte(configHeader), body...), 0o644); err != nil {
			return eris.Wrapf(err, "write %s", configFileName)
		}

		fmt.Printf("wrote %s\n", configFileName)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
