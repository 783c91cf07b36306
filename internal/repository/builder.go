package repository

import sq "github.com/Masterminds/squirrel"

// Psql билдер запросов с плейсхолдерами $1, $2...
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
