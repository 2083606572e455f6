// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

/*
Package history persists the ordered list of winning draws.

Storage is a single flat CSV file with one draw per line, six integer
fields, no header, newest draw first. Round numbers are not stored; a
draw's position is the only ordering signal. Readers use only the first
six fields of each record so extra trailing columns are tolerated.

Save is a full rewrite through a temporary file and rename. Callers merge
new draws into the loaded History before saving.
*/
package history
