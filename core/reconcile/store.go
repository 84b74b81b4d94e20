package reconcile

import (
	"sort"
	"sync"
)

// Store holds the uploaded datasets of one workspace.
type Store struct {
	mu        sync.RWMutex
	inventory *InventoryDataset
	orders    *OrderDataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// SetInventory replaces the inventory dataset.
func (s *Store) SetInventory(ds *InventoryDataset) {
	s.mu.Lock()
	s.inventory = ds
	s.mu.Unlock()
}

// SetOrders replaces the order dataset.
func (s *Store) SetOrders(ds *OrderDataset) {
	s.mu.Lock()
	s.orders = ds
	s.mu.Unlock()
}

// Inventory returns the current inventory dataset, or false if none was uploaded.
func (s *Store) Inventory() (*InventoryDataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory, s.inventory != nil
}

// Orders returns the current order dataset, or false if none was uploaded.
func (s *Store) Orders() (*OrderDataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders, s.orders != nil
}

// Branches returns the distinct branches of the inventory, sorted ascending.
// It is empty when no inventory has been uploaded.
func (s *Store) Branches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.inventory == nil {
		return []string{}
	}
	return DistinctBranches(s.inventory.Records)
}

// DistinctBranches returns the sorted set of branches found in records.
func DistinctBranches(records []InventoryRecord) []string {
	seen := make(map[string]struct{}, len(records))
	branches := make([]string, 0)
	for _, rec := range records {
		if _, ok := seen[rec.Branch]; ok {
			continue
		}
		seen[rec.Branch] = struct{}{}
		branches = append(branches, rec.Branch)
	}
	sort.Strings(branches)
	return branches
}
