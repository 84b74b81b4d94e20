package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ribeirowl/processador-giga/core/config"
	"github.com/ribeirowl/processador-giga/core/logger"
	"github.com/ribeirowl/processador-giga/core/reconcile"
	"github.com/ribeirowl/processador-giga/core/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	inventoryPath string
	ordersPath    string
	branchFlag    string
	outDir        string
	scopeFlag     string
)

// reconcileCmd computes the reports offline, without the HTTP server.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compute the branch reports from two spreadsheet files",
	Long: `Reads an inventory and an orders spreadsheet, computes the reports for one
branch and writes estoque_resultados.xlsx, transferencias_resultados.xlsx and
compras_resultados.xlsx into the output directory.

Examples:
  # Reports for branch "Centro" in the current directory
  reconcile --inventory estoque.xlsx --orders pedidos.xlsx --branch Centro

  # Use the legacy multi-branch purchase join
  reconcile -i estoque.csv -o pedidos.csv -b Centro --scope all --out reports/`,
	RunE: runReconcile,
}

// branchesCmd lists the branches found in an inventory spreadsheet.
var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List the branches of an inventory spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readInventoryFile(inventoryPath)
		if err != nil {
			return err
		}
		for _, b := range reconcile.DistinctBranches(records) {
			fmt.Fprintln(cmd.OutOrStdout(), b)
		}
		return nil
	},
}

func init() {
	reconcileCmd.Flags().StringVarP(&inventoryPath, "inventory", "i", "", "Inventory spreadsheet (Produto, Filial, Qtd)")
	reconcileCmd.Flags().StringVarP(&ordersPath, "orders", "o", "", "Orders spreadsheet (Produto, Qtd)")
	reconcileCmd.Flags().StringVarP(&branchFlag, "branch", "b", "", "Branch to compute the reports for")
	reconcileCmd.Flags().StringVar(&outDir, "out", ".", "Directory for the generated workbooks")
	reconcileCmd.Flags().StringVar(&scopeFlag, "scope", "", "Purchase join scope (branch, all); defaults to RECONCILE_JOIN_SCOPE")
	_ = reconcileCmd.MarkFlagRequired("inventory")
	_ = reconcileCmd.MarkFlagRequired("orders")
	_ = reconcileCmd.MarkFlagRequired("branch")

	branchesCmd.Flags().StringVarP(&inventoryPath, "inventory", "i", "", "Inventory spreadsheet (Produto, Filial, Qtd)")
	_ = branchesCmd.MarkFlagRequired("inventory")

	RootCmd.AddCommand(reconcileCmd)
	RootCmd.AddCommand(branchesCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if scopeFlag != "" {
		cfg.Reconcile.JoinScope = scopeFlag
	}
	opts, err := cfg.Reconcile.Options()
	if err != nil {
		return err
	}

	written, err := reconcileFiles(inventoryPath, ordersPath, branchFlag, outDir, opts)
	if err != nil {
		return err
	}

	for _, path := range written {
		l.Info("Report written", zap.String("file", path))
	}
	return nil
}

// reconcileFiles runs the engine over two files and writes every report
// into dir. It returns the written paths in report order.
func reconcileFiles(inventoryFile, ordersFile, branch, dir string, opts reconcile.Options) ([]string, error) {
	inventory, err := readInventoryFile(inventoryFile)
	if err != nil {
		return nil, err
	}
	orders, err := readOrdersFile(ordersFile)
	if err != nil {
		return nil, err
	}

	result, err := reconcile.Reconcile(
		&reconcile.InventoryDataset{Source: inventoryFile, Records: inventory},
		&reconcile.OrderDataset{Source: ordersFile, Records: orders},
		branch, opts)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(reconcile.ReportKeys))
	for _, key := range reconcile.ReportKeys {
		table, err := result.Table(key)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, key.FileName())
		if err := writeTableFile(path, table); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func readInventoryFile(path string) ([]reconcile.InventoryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", path, err)
	}
	defer f.Close()
	return sheet.ReadInventory(filepath.Base(path), f)
}

func readOrdersFile(path string) ([]reconcile.OrderRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open orders file %s: %w", path, err)
	}
	defer f.Close()
	return sheet.ReadOrders(filepath.Base(path), f)
}

func writeTableFile(path string, table reconcile.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := sheet.WriteTable(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
