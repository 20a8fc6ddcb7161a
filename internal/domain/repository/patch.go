// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer.
package repository

import "errors"

// ErrEmptyPatch is returned by Update operations when the sparse patch carries
// no effective field changes. The store is not touched in that case. It is a
// normal negative result, deliberately distinct from the not-found sentinels:
// callers must be able to tell "nothing to write" from "no such record".
var ErrEmptyPatch = errors.New("patch contains no field changes")
