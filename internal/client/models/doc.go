// Package models defines the console's data: login credentials, user records
// as the remote collection returns them, and the draft edited in the modal
// form.
package models
