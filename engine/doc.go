// @focus: #sys { session }
// Package engine orchestrates a terminal UI session over the terminal
// and vt packages: raw-mode lifecycle, a component tree with a flat
// z-order registry, signal-driven resize/exit flags, event routing with
// hit-testing and escalation, and cell-diff rendering.
//
// Architecture:
//   - Single-threaded cooperative core: NextEvent, Render, and all tree
//     mutation run on the caller's goroutine
//   - Signal watcher and input reader are the only concurrent actors;
//     both communicate through atomic flags and channels only
//   - Components carry behavior in a Kind; capabilities (ClickHandler,
//     KeyHandler, Renderer, Resizer) are discovered by type assertion
//   - Fatal errors restore the terminal exactly once before returning
//
// Usage:
//  1. Create session: New(options...)
//  2. Build the tree: SetRoot, Attach
//  3. Activate: Init (defer Fini)
//  4. Loop: NextEvent, mutate state, Render
package engine
