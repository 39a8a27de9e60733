package web

import (
	"embed"
	"html/template"

	"github.com/lazyhr/hrportal/internal/domain/attendance"
	"github.com/lazyhr/hrportal/internal/timeutil"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatTimestamp": timeutil.FormatTimestamp,
		"formatDate":      timeutil.FormatDate,
		"formatDateShort": timeutil.FormatDateShort,
		"formatTime":      timeutil.FormatTime,
		"dateForInput":    timeutil.FormatDateForInput,
		"formatAttr":      timeutil.FormatAttr,
		"timeRange":       attendance.TimeRange,
	}
}

func loadTemplates() *template.Template {
	return template.Must(
		template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.html"),
	)
}
