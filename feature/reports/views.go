package reports

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/ribeirowl/processador-giga/core/reconcile"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// branchView is the data of the branch selection page.
type branchView struct {
	Branches  []string
	Inventory string
	Orders    string
}

// resultView is the data of the result page.
type resultView struct {
	Branch  string
	Reports []reportView
}

type reportView struct {
	Key   reconcile.ReportKey
	Title string
	Table reconcile.Table
}

var reportTitles = map[reconcile.ReportKey]string{
	reconcile.ReportBranchStock: "Estoque da filial",
	reconcile.ReportTransfers:   "Possíveis transferências",
	reconcile.ReportPurchases:   "Necessidade de compra",
}

func newResultView(result *reconcile.Result) (resultView, error) {
	view := resultView{Branch: result.Branch}
	for _, key := range reconcile.ReportKeys {
		table, err := result.Table(key)
		if err != nil {
			return resultView{}, err
		}
		view.Reports = append(view.Reports, reportView{Key: key, Title: reportTitles[key], Table: table})
	}
	return view, nil
}

// render executes a template into a buffer first so a template error never
// leaves a half-written page.
func render(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
