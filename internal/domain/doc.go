// Package domain defines the core business entities of the task tracker
// and their validation rules. Entities are plain structs; persistence and
// transport concerns live elsewhere.
package domain
