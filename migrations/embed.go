// Package migrations carries the SQL schema as part of the binary, so a
// deployment is one executable plus a config file.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
