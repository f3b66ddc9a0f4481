// Package middleware provides the HTTP middlewares wrapped around the document service.
package middleware
