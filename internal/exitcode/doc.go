// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode implements the status channel codec. The guest reports
// the exit code of its main program as a single ASCII integer line on a
// dedicated serial channel. The serial transport rewrites line feeds to
// CRLF, so carriage returns are not significant and are dropped before
// parsing.
package exitcode
