// Package resilience groups fault tolerance helpers for calls that leave the process.
//
// Subpackages:
//   - circuitbreaker: gobreaker-backed breakers, including a *sql.DB wrapper used by the
//     PostgreSQL repositories
//
// Usage Example:
//
//	dcb := circuitbreaker.NewDBCircuitBreaker(db)
//	repo := postgres.NewArticleRepo(dcb)
package resilience
