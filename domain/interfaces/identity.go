package interfaces

import "formrunner/domain/entities"

// IdentitySource yields the identity for a dispatch index. For a
// non-empty pool the result is a pure function of the index, so
// identity assignment is independent of completion order.
type IdentitySource interface {
	IdentityAt(index int) entities.Identity
	PoolSize() int
}
