package services

import "learnhub/store"

// Package-level instances wired once at startup, mirroring how the global
// database handle is shared. Tests construct services directly instead.
var (
	entities    store.Store
	enrollments *EnrollmentService
	catalog     *CatalogService
)

// Init wires the services to the given store. Must be called before any
// controller handles a request.
func Init(s store.Store) {
	entities = s
	enrollments = NewEnrollmentService(s)
	catalog = NewCatalogService(s)
}

func Entities() store.Store { return entities }

func Enrollments() *EnrollmentService { return enrollments }

func Catalog() *CatalogService { return catalog }
