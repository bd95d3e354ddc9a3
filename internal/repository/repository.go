// Package repository provides thin pgx-backed persistence for the timetable
// entities. Repositories carry no business rules; conflict checking and
// generation live in the schedule package.
package repository

import "errors"

// ErrNoRows is returned by mutating operations that matched no row.
var ErrNoRows = errors.New("no rows affected")
