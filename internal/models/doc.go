// Package models defines the records kept in the SkillVerse store (users,
// settings, course and career progress) and the static catalog types they
// reference by id.
package models
