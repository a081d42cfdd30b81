// Package metrics holds the catalog's business and database Prometheus metrics.
// HTTP, cache and pagination metrics live next to the code they measure.
//
//	err := repo.Create(ctx, p)
//	metrics.RecordWrite("Products", metrics.OpCreate, err)
package metrics
