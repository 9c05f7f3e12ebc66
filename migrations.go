// Package storefront holds assets shared by the commands, currently the SQL
// migrations applied by the migrate command.
package storefront

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
