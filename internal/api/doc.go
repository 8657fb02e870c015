// Package api contains the HTTP handlers for the task tracker: the public
// registration and login endpoints and the owner-scoped task CRUD
// endpoints. Handlers depend on the store and auth service interfaces and
// know nothing about their concrete implementations.
package api
