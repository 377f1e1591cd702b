// Package services holds the application services between the pipeline and
// the HTTP transport. DataService owns the loaded master table behind an
// atomic snapshot so readers never observe a partially rebuilt table.
package services
