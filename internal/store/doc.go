// Package store defines the persistence interfaces for the task tracker
// along with the sentinel errors implementations must return. Concrete
// implementations live under internal/platform.
package store
