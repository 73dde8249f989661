// Package wallet provides the types and functions of a small personal
// finance ledger. It is local-first: the whole ledger is a human-readable
// ';' separated file that the user owns.
//
// The core functionalities include:
//   - Entry Validation: turning raw user input into an Entry, reporting every
//     invalid field at once (see Validate).
//   - Storage: reading and rewriting the whole ledger file (see FileStore).
//   - Ledger Operations: listing, adding and removing entries, and computing
//     the balance of incomes minus expenses (see Ledger).
//
// This package serves as the foundational logic for the `wlt` command-line
// tool.
package wallet
