// Package screens holds the state of the two console screens, Session Entry
// and Collection Manager, independent of how they are drawn.
//
// Each container owns its state behind a mutex and lets at most one remote
// call run at a time. Front ends mutate state only through the container's
// methods and read it through View snapshots.
package screens
