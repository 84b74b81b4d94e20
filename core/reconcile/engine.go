package reconcile

// Reconcile computes the three reports for branch.
// Both datasets must be present; a nil dataset yields ErrDatasetsMissing.
// The function is pure: the caller stores the result in a Cache.
func Reconcile(inventory *InventoryDataset, orders *OrderDataset, branch string, opts Options) (*Result, error) {
	if inventory == nil || orders == nil {
		return nil, ErrDatasetsMissing
	}
	if branch == "" {
		return nil, ErrEmptyBranch
	}

	result := &Result{
		Branch:             branch,
		BranchStock:        []InventoryRecord{},
		TransferCandidates: []InventoryRecord{},
		PurchaseNeeds:      []PurchaseNeed{},
	}

	for _, rec := range inventory.Records {
		if rec.Branch == branch {
			result.BranchStock = append(result.BranchStock, rec)
		} else if rec.StockQty > 0 {
			result.TransferCandidates = append(result.TransferCandidates, rec)
		}
	}

	joinSide := inventory.Records
	if opts.Scope != ScopeAll {
		joinSide = result.BranchStock
	}
	index := indexByProduct(joinSide)

	for _, order := range orders.Records {
		matches, ok := index[order.Product]
		if !ok {
			// Branch scope treats a product missing at the branch as zero stock.
			// The legacy join leaves availability undefined and reports nothing.
			if opts.Scope != ScopeAll && order.OrderedQty > 0 {
				result.PurchaseNeeds = append(result.PurchaseNeeds, PurchaseNeed{
					Product:      order.Product,
					ShortfallQty: order.OrderedQty,
				})
			}
			continue
		}

		for _, stock := range matches {
			available := stock - order.OrderedQty
			if available < 0 {
				result.PurchaseNeeds = append(result.PurchaseNeeds, PurchaseNeed{
					Product:      order.Product,
					ShortfallQty: -available,
				})
			}
		}
	}

	return result, nil
}

// indexByProduct maps each product to its stock quantities in row order,
// one entry per inventory row.
func indexByProduct(records []InventoryRecord) map[string][]int {
	index := make(map[string][]int, len(records))
	for _, rec := range records {
		index[rec.Product] = append(index[rec.Product], rec.StockQty)
	}
	return index
}
