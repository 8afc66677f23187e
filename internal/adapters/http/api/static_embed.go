package api

import "embed"

//go:embed dashboard.html
var dashboardFS embed.FS
