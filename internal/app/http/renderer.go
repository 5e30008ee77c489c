package httpEngine

import (
	"encoding/json"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/youngnam81-kim/gov-bid-web/configs"
	"github.com/youngnam81-kim/gov-bid-web/internal/format"
	"github.com/youngnam81-kim/gov-bid-web/web"
)

// TemplateRenderer는 embed된 HTML 템플릿을 echo에 연결합니다.
type TemplateRenderer struct {
	templates *template.Template
}

func NewRenderer() (*TemplateRenderer, error) {
	t, err := template.New("").Funcs(templateFuncs()).ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// 리버스 프록시 base_path 아래에 배치돼도 링크가 살아 있도록
		// 모든 내부 경로는 이 함수를 거칩니다.
		"path": func(p string) string {
			return configs.Configs.Service.BasePath + p
		},
		"currency": format.Currency,
		"datetime": format.DateTime,
		"bidInput": format.BidAmountInput,
		"currencyAmt": func(p *int64) string {
			if p == nil {
				return "-"
			}
			return format.CurrencyInt(*p)
		},
		"fee":    format.EstimatedFee,
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
		"inc": func(i int) int { return i + 1 },
		"toJSON": func(v any) string {
			b, err := json.Marshal(v)
			if err != nil {
				return "{}"
			}
			return string(b)
		},
	}
}
