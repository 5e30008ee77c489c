// Package web은 화면 템플릿을 바이너리에 포함합니다.
package web

import "embed"

//go:embed templates/*.html
var TemplatesFS embed.FS
