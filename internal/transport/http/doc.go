// Package http exposes the computed master table over a chi-based JSON
// API. Handlers only filter and serialize the already-computed table;
// metrics are never re-derived here.
package http
