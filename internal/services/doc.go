// Package services implements the SkillVerse account, session and progress
// operations on top of a kv.Store.
//
// Every mutating operation is a read-modify-write of whole records. Groups
// that touch more than one record (register, reset progress, backup import)
// run inside kv.Store.Atomic, so SQL backends apply them in one transaction.
package services
