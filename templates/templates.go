// Package templates embeds the transactional mail templates.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
