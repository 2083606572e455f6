// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

/*
Package services adapts lottopick components to suture.Service.

HTTPServerService turns the blocking ListenAndServe of the API server into a
context-aware Serve with graceful shutdown. SyncService drives the scheduled
sync manager through its Start/Stop lifecycle. Both implement fmt.Stringer so
supervisor events name them.
*/
package services
