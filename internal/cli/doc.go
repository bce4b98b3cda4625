// Package cli implements the interactive SkillVerse command-line client.
//
// Overview
//
// The package wires the account, progress and career services over the
// configured key/value store and exposes them in two ways:
//
//   - a cobra command tree (NewRootCmd) for one-shot operations such as
//     register, login, reset-password, export, import and wipe;
//   - a read–eval–print loop (the default "repl" command) covering the
//     learning flows: browsing courses, taking quizzes, tracking interview
//     practice and editing settings.
//
// Input helpers read from a single buffered reader so that prompts and the
// REPL share the same input stream. Passwords are read without echo when
// stdin is a terminal.
package cli
