package reconcile

import (
	"strings"
	"time"
)

// Spreadsheet column headers used by uploads and exported reports.
const (
	ColumnProduct   = "Produto"
	ColumnBranch    = "Filial"
	ColumnQuantity  = "Qtd"
	ColumnShortfall = "Falta"
)

// InventoryRecord is the stock of one product at one branch.
type InventoryRecord struct {
	// Product is the product identifier.
	Product string `json:"product"`

	// Branch is the branch holding the stock.
	Branch string `json:"branch"`

	// StockQty is the quantity on hand. Never negative.
	StockQty int `json:"stock_qty"`
}

// OrderRecord is an ordered quantity of a product. Orders carry no branch.
type OrderRecord struct {
	// Product is the product identifier.
	Product string `json:"product"`

	// OrderedQty is the quantity requested. Never negative.
	OrderedQty int `json:"ordered_qty"`
}

// PurchaseNeed is a product whose orders exceed the available stock.
type PurchaseNeed struct {
	// Product is the product identifier.
	Product string `json:"product"`

	// ShortfallQty is the positive quantity missing to fulfil the order.
	ShortfallQty int `json:"shortfall_qty"`
}

// InventoryDataset is an uploaded inventory spreadsheet.
// A nil *InventoryDataset means nothing has been uploaded yet.
type InventoryDataset struct {
	// Source is the original file name of the upload.
	Source string

	// LoadedAt is when the dataset replaced the previous one.
	LoadedAt time.Time

	// Records holds the rows in upload order.
	Records []InventoryRecord
}

// OrderDataset is an uploaded orders spreadsheet.
// A nil *OrderDataset means nothing has been uploaded yet.
type OrderDataset struct {
	Source   string
	LoadedAt time.Time
	Records  []OrderRecord
}

// Result is the output of one reconciliation.
type Result struct {
	// Branch is the branch the result was computed for.
	Branch string `json:"branch"`

	// BranchStock holds the inventory rows of Branch.
	BranchStock []InventoryRecord `json:"branch_stock"`

	// TransferCandidates holds rows of other branches with positive stock.
	TransferCandidates []InventoryRecord `json:"transfer_candidates"`

	// PurchaseNeeds holds products whose orders exceed the available stock.
	PurchaseNeeds []PurchaseNeed `json:"purchase_needs"`
}

// ReportKey names one of the three report tables of a Result.
type ReportKey string

const (
	// ReportBranchStock selects Result.BranchStock.
	ReportBranchStock ReportKey = "estoque"
	// ReportTransfers selects Result.TransferCandidates.
	ReportTransfers ReportKey = "transferencias"
	// ReportPurchases selects Result.PurchaseNeeds.
	ReportPurchases ReportKey = "compras"
)

// ReportKeys lists every report in display order.
var ReportKeys = []ReportKey{ReportBranchStock, ReportTransfers, ReportPurchases}

// ParseReportKey validates a report name.
func ParseReportKey(name string) (ReportKey, bool) {
	switch key := ReportKey(name); key {
	case ReportBranchStock, ReportTransfers, ReportPurchases:
		return key, true
	default:
		return "", false
	}
}

// Title returns the key with its first letter upper-cased, used as the
// worksheet name of exported reports (e.g. "Compras").
func (k ReportKey) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// FileName returns the download name of an exported report.
func (k ReportKey) FileName() string {
	return string(k) + "_resultados.xlsx"
}

// Table is the codec-neutral projection of a report.
type Table struct {
	// Name is the report key the table was built from.
	Name ReportKey

	// Columns holds the header row.
	Columns []string

	// Rows holds one slice per data row, aligned with Columns.
	// Cells are either string or int.
	Rows [][]any
}

// Table projects one report of the result.
func (r *Result) Table(key ReportKey) (Table, error) {
	switch key {
	case ReportBranchStock:
		return inventoryTable(key, r.BranchStock), nil
	case ReportTransfers:
		return inventoryTable(key, r.TransferCandidates), nil
	case ReportPurchases:
		rows := make([][]any, 0, len(r.PurchaseNeeds))
		for _, n := range r.PurchaseNeeds {
			rows = append(rows, []any{n.Product, n.ShortfallQty})
		}
		return Table{
			Name:    key,
			Columns: []string{ColumnProduct, ColumnShortfall},
			Rows:    rows,
		}, nil
	default:
		return Table{}, &ReportNotFoundError{Name: string(key)}
	}
}

func inventoryTable(key ReportKey, records []InventoryRecord) Table {
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []any{rec.Product, rec.Branch, rec.StockQty})
	}
	return Table{
		Name:    key,
		Columns: []string{ColumnProduct, ColumnBranch, ColumnQuantity},
		Rows:    rows,
	}
}

// JoinScope selects which inventory rows take part in the purchase join.
type JoinScope string

const (
	// ScopeBranch joins orders against the selected branch's inventory only.
	ScopeBranch JoinScope = "branch"
	// ScopeAll joins orders against every branch's inventory.
	ScopeAll JoinScope = "all"
)

// ParseJoinScope validates a configured join scope. Empty means ScopeBranch.
func ParseJoinScope(s string) (JoinScope, error) {
	switch JoinScope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeBranch:
		return ScopeBranch, nil
	case ScopeAll:
		return ScopeAll, nil
	default:
		return "", &InvalidScopeError{Value: s}
	}
}

// Options tunes a reconciliation.
type Options struct {
	// Scope controls the purchase join. Zero value behaves as ScopeBranch.
	Scope JoinScope
}
