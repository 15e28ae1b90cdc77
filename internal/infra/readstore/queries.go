package readstore

import "github.com/Masterminds/squirrel"

// qb builds Postgres-flavored queries with $N placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
