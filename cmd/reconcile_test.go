package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ribeirowl/processador-giga/core/reconcile"
	"github.com/ribeirowl/processador-giga/core/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReconcileFiles(t *testing.T) {
	dir := t.TempDir()
	inv := writeFile(t, dir, "estoque.csv", "Produto,Filial,Qtd\nA,X,10\nA,Y,5\n")
	ord := writeFile(t, dir, "pedidos.csv", "Produto,Qtd\nA,12\n")
	out := filepath.Join(dir, "out")

	written, err := reconcileFiles(inv, ord, "X", out, reconcile.Options{Scope: reconcile.ScopeAll})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(out, "estoque_resultados.xlsx"),
		filepath.Join(out, "transferencias_resultados.xlsx"),
		filepath.Join(out, "compras_resultados.xlsx"),
	}, written)

	f, err := os.Open(written[2])
	require.NoError(t, err)
	defer f.Close()

	table, err := sheet.ReadTable(f)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"A", 2}, {"A", 7}}, table.Rows)
}

func TestReconcileFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	inv := writeFile(t, dir, "estoque.csv", "Produto,Filial,Qtd\nA,X,10\n")
	bad := writeFile(t, dir, "pedidos.csv", "Produto\nA\n")

	_, err := reconcileFiles(filepath.Join(dir, "missing.csv"), bad, "X", dir, reconcile.Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = reconcileFiles(inv, bad, "X", dir, reconcile.Options{})
	assert.ErrorIs(t, err, sheet.ErrInvalidFormat)
}

func TestBranchesCommand(t *testing.T) {
	dir := t.TempDir()
	inv := writeFile(t, dir, "estoque.csv", "Produto,Filial,Qtd\nA,Sul,1\nB,Centro,0\nC,Sul,2\n")

	out := new(bytes.Buffer)
	RootCmd.SetOut(out)
	RootCmd.SetArgs([]string{"branches", "--inventory", inv})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})

	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, "Centro\nSul\n", out.String())
}
