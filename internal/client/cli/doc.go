// Package cli provides the interactive terminal front end of the user console.
//
// The console keeps a current path, resolved by the router to one of two
// screens. On the login screen the user edits the pre-filled credentials and
// submits them; a successful login moves to /user-management, which loads
// the collection and renders it as a table. Records are added, edited and
// deleted through the Collection Manager, which refetches the table after
// every change.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command set.
package cli
