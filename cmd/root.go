package cmd

import (
	"fmt"
	"os"

	"github.com/ribeirowl/processador-giga/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "processador-giga",
	Short: "Branch stock and purchase report service",
	Long: `Processador Giga reads an inventory spreadsheet (per branch) and an orders
spreadsheet and reports, for a selected branch, its current stock, the stock
available at other branches and the quantities that must be purchased.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config gives readable ISO8601 output for CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
