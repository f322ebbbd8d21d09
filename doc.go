// Package traveltales provides the core of a personal travel-journaling
// application. It is designed to be local-first: all data lives in a local
// key-value store, keyed by user id, and every mutation persists the whole
// affected collection.
//
// The core functionalities include:
//   - Account Management: signup, login, logout and session restore over a
//     local user registry.
//   - Journaling: trips aggregating journal entries (with photos) and
//     expenses, kept sorted newest first.
//   - Planning: planned trips aggregating itinerary items, kept sorted
//     oldest first, convertible into draft trips.
//   - State Synchronization: an application controller that loads both
//     collections on session change and persists them on every mutation,
//     never for the state produced by the load itself.
//   - Reporting: dashboard statistics, anniversary memories, and
//     deterministic map-pin placement for the atlas view.
//
// This package serves as the foundational logic for the `tt` command-line
// tool. AI advisory features (trip summaries, photo captions) live in the
// advisor subpackage and are strictly decorative: their failure never breaks
// a save or load flow.
package traveltales
