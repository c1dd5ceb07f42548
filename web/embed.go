// Package web 内嵌站点模板资源
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
