// Package reports implements the stock report web feature.
//
// A user uploads an inventory spreadsheet and an orders spreadsheet, picks a
// branch and gets three reports (branch stock, transfer candidates, purchase
// needs), each downloadable as an xlsx workbook.
//
// # Sessions
//
// Uploads and results belong to a session identified by a cookie
// (giga_session by default). Sessions never share datasets; idle sessions are
// evicted by the reconcile.Sessions registry.
//
// # Components
//
//   - Service: parses and archives uploads, runs the reconciliation and exports reports.
//   - Handler: exposes the HTML pages and the download endpoint.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET / : Upload form.
//   - POST /upload : Multipart fields "estoque" and "pedidos", renders the branch selection.
//   - POST /processar : Form field "filial", renders the three reports.
//   - GET /download/:tipo : tipo is estoque, transferencias or compras; serves <tipo>_resultados.xlsx.
package reports
