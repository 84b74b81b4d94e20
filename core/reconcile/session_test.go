package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_Isolation(t *testing.T) {
	s := NewSessions(0)

	a := s.Get("a")
	b := s.Get("b")
	require.NotSame(t, a, b)
	assert.Same(t, a, s.Get("a"))

	a.Store.SetInventory(inventoryOf(InventoryRecord{Product: "A", Branch: "X", StockQty: 1}))

	_, ok := b.Store.Inventory()
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestSessions_EvictsIdleWorkspaces(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(30 * time.Minute)
	s.now = func() time.Time { return now }

	old := s.Get("old")
	now = now.Add(20 * time.Minute)
	s.Get("fresh")

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, s.Len())
	assert.NotSame(t, old, s.Get("old"))
}

func TestWorkspace_Reconcile(t *testing.T) {
	ws := NewWorkspace()

	_, err := ws.Reconcile("X", Options{})
	require.ErrorIs(t, err, ErrDatasetsMissing)
	_, ok := ws.Cache.Result()
	assert.False(t, ok)

	ws.Store.SetInventory(inventoryOf(
		InventoryRecord{Product: "A", Branch: "X", StockQty: 10},
		InventoryRecord{Product: "A", Branch: "Y", StockQty: 5},
	))
	ws.Store.SetOrders(ordersOf(OrderRecord{Product: "A", OrderedQty: 12}))

	result, err := ws.Reconcile("X", Options{})
	require.NoError(t, err)

	cached, ok := ws.Cache.Result()
	require.True(t, ok)
	assert.Same(t, result, cached)

	table, err := ws.Cache.Fetch("compras")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"A", 2}}, table.Rows)
}

func TestWorkspace_FailedReconcileKeepsPreviousResult(t *testing.T) {
	ws := NewWorkspace()
	ws.Store.SetInventory(inventoryOf(InventoryRecord{Product: "A", Branch: "X", StockQty: 1}))
	ws.Store.SetOrders(ordersOf())

	first, err := ws.Reconcile("X", Options{})
	require.NoError(t, err)

	_, err = ws.Reconcile("", Options{})
	require.ErrorIs(t, err, ErrEmptyBranch)

	cached, _ := ws.Cache.Result()
	assert.Same(t, first, cached)
}
