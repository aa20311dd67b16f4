package output

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"errors"
	"html/template"
	"io"

	"github.com/lffinance/dashboard/internal/chart"
	"github.com/lffinance/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter renders the dashboard page. With an empty ChartURL the client
// chart is embedded in the page as a PNG data URI, which keeps saved reports
// self-contained.
type HTMLFormatter struct {
	ChartURL string
}

func (h HTMLFormatter) Name() string { return "html" }

// DashboardPage is the data behind the dashboard template. Summary is nil
// when the page only carries an error.
type DashboardPage struct {
	Summary     *domain.DashboardSummary
	Insights    Insights
	Assumptions []string
	Periods     []string
	Target      decimal.Decimal
	ChartSrc    template.URL
	Error       string
}

//go:embed templates/dashboard.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"money": FormatCurrencyWith,
	"pct":   FormatPercentage,
	"period": func(p string) string {
		if p == "" || p == domain.PeriodAll {
			return "כל התקופות"
		}
		return p
	},
	"client": clientName,
	"whole":  func(d decimal.Decimal) string { return d.Round(0).String() },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(s *domain.DashboardSummary) ([]byte, error) {
	page, err := h.Page(s)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := RenderPage(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Page builds the template data for a summary
func (h HTMLFormatter) Page(s *domain.DashboardSummary) (DashboardPage, error) {
	page := DashboardPage{
		Summary:     s,
		Insights:    AnalyzeSummary(s),
		Assumptions: GenerateAssumptions(s.Params),
		Periods:     s.Periods,
		Target:      monthlyTarget(s),
	}
	if len(s.Clients) == 0 {
		return page, nil
	}
	if h.ChartURL != "" {
		page.ChartSrc = template.URL(h.ChartURL)
		return page, nil
	}
	img, err := chart.RenderClientRevenue(s.Clients)
	if err != nil {
		if errors.Is(err, chart.ErrNoChartData) {
			return page, nil
		}
		return page, err
	}
	page.ChartSrc = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img))
	return page, nil
}

// RenderPage executes the dashboard template
func RenderPage(w io.Writer, page DashboardPage) error {
	if len(page.Periods) == 0 {
		page.Periods = []string{domain.PeriodAll}
	}
	return htmlTemplate.Execute(w, page)
}

func monthlyTarget(s *domain.DashboardSummary) decimal.Decimal {
	if s.MonthsCount < 1 {
		return s.Progress.Target
	}
	return s.Progress.Target.Div(decimal.NewFromInt(int64(s.MonthsCount)))
}
