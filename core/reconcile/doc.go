// Package reconcile computes the stock reports derived from an inventory
// spreadsheet and an orders spreadsheet for one selected branch.
//
// # Components
//
//   - Store: the uploaded inventory and order datasets, replaced wholesale on
//     every upload.
//   - Reconcile: a pure function that turns both datasets and a branch into a
//     Result holding the three report tables.
//   - Cache: single-slot holder of the last Result, fetched by report key for
//     export.
//   - Sessions: per-session Workspaces (Store + Cache) keyed by a session
//     identifier so that concurrent users never see each other's uploads.
//
// # Reports
//
//   - estoque: inventory rows of the selected branch.
//   - transferencias: inventory rows of every other branch with positive stock.
//   - compras: products whose ordered quantity exceeds the available stock.
//
// # Join Scope
//
// Purchase needs join orders onto inventory by product. With ScopeBranch
// (the default) only inventory rows of the selected branch take part and a
// product missing from the branch counts as zero stock. ScopeAll keeps the
// legacy behaviour where every branch's row for the product is joined and a
// product absent from the whole inventory is never reported.
//
// # Usage
//
//	ws := sessions.Get(sessionID)
//	ws.Store.SetInventory(inventory)
//	ws.Store.SetOrders(orders)
//
//	result, err := ws.Reconcile("Filial 01", reconcile.Options{Scope: reconcile.ScopeBranch})
//	if errors.Is(err, reconcile.ErrDatasetsMissing) {
//	    // ask the user to upload both spreadsheets
//	}
//
//	table, err := ws.Cache.Fetch("compras")
package reconcile
