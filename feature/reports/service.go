package reports

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ribeirowl/processador-giga/core/reconcile"
	"github.com/ribeirowl/processador-giga/core/sheet"
	"github.com/ribeirowl/processador-giga/core/storage"

	"go.uber.org/zap"
)

// File is an uploaded spreadsheet held in memory.
type File struct {
	// Name is the original file name sent by the browser.
	Name string
	// Data is the raw file content.
	Data []byte
}

// Uploads groups the files of one upload request. Either may be nil.
type Uploads struct {
	Inventory *File
	Orders    *File
}

// Service handles uploads, report computation and exports.
type Service struct {
	sessions *reconcile.Sessions
	archive  storage.Archive
	opts     reconcile.Options
	logger   *zap.Logger
}

// NewService creates a new reports service.
func NewService(sessions *reconcile.Sessions, archive storage.Archive, opts reconcile.Options, logger *zap.Logger) *Service {
	return &Service{
		sessions: sessions,
		archive:  archive,
		opts:     opts,
		logger:   logger,
	}
}

// Workspace returns the state of a session.
func (s *Service) Workspace(sessionID string) *reconcile.Workspace {
	return s.sessions.Get(sessionID)
}

// Upload parses every present file, archives it and replaces the matching
// dataset. Nothing is replaced unless all files parse and archive cleanly.
// It returns the sorted branches of the (possibly previous) inventory.
func (s *Service) Upload(ctx context.Context, ws *reconcile.Workspace, files Uploads) ([]string, error) {
	var (
		inventory *reconcile.InventoryDataset
		orders    *reconcile.OrderDataset
	)

	if f := files.Inventory; f != nil {
		records, err := sheet.ReadInventory(f.Name, bytes.NewReader(f.Data))
		if err != nil {
			return nil, err
		}
		inventory = &reconcile.InventoryDataset{Source: f.Name, Records: records}
	}

	if f := files.Orders; f != nil {
		records, err := sheet.ReadOrders(f.Name, bytes.NewReader(f.Data))
		if err != nil {
			return nil, err
		}
		orders = &reconcile.OrderDataset{Source: f.Name, Records: records}
	}

	for _, f := range []*File{files.Inventory, files.Orders} {
		if f == nil {
			continue
		}
		location, err := s.archive.Save(ctx, f.Name, bytes.NewReader(f.Data), int64(len(f.Data)))
		if err != nil {
			return nil, fmt.Errorf("failed to archive %s: %w", f.Name, err)
		}
		s.logger.Debug("Upload archived", zap.String("file", f.Name), zap.String("location", location))
	}

	if inventory != nil {
		inventory.LoadedAt = time.Now()
		ws.Store.SetInventory(inventory)
		s.logger.Info("Inventory replaced",
			zap.String("file", inventory.Source),
			zap.Int("rows", len(inventory.Records)))
	}
	if orders != nil {
		orders.LoadedAt = time.Now()
		ws.Store.SetOrders(orders)
		s.logger.Info("Orders replaced",
			zap.String("file", orders.Source),
			zap.Int("rows", len(orders.Records)))
	}

	return ws.Store.Branches(), nil
}

// Process reconciles the workspace datasets for branch and caches the result.
func (s *Service) Process(ws *reconcile.Workspace, branch string) (*reconcile.Result, error) {
	// The result outlives the request; keep no view into its buffers.
	branch = strings.Clone(branch)
	result, err := ws.Reconcile(branch, s.opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reports computed",
		zap.String("branch", branch),
		zap.String("scope", string(s.opts.Scope)),
		zap.Int("branch_stock", len(result.BranchStock)),
		zap.Int("transfers", len(result.TransferCandidates)),
		zap.Int("purchases", len(result.PurchaseNeeds)))
	return result, nil
}

// Export writes the named cached report as a workbook.
func (s *Service) Export(ws *reconcile.Workspace, name string, w io.Writer) (reconcile.ReportKey, error) {
	table, err := ws.Cache.Fetch(name)
	if err != nil {
		return "", err
	}
	if err := sheet.WriteTable(w, table); err != nil {
		return "", err
	}
	return table.Name, nil
}
