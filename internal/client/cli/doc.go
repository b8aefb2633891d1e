// Package cli provides the interactive Ágora command-line client.
//
// It wires configuration, the local sqlite store, the REST gateway and an
// interactive REPL. Typical flow: resolve the device identity, load the
// language preference, refresh the subscription status, then start the
// background pollers and execute user commands.
//
// Key features:
//   - Diary entries with emotional and optional physical intensity scales
//   - Pattern analysis over a recent window
//   - Chat with the Aurora companion, including conversation management
//   - Cycle tracking and the monthly pain record
//   - Subscription status and the purchase flow
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
