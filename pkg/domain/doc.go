// Package domain contains the storefront entities: creators, the closed family
// of sellable content (games, movies, music albums), users and purchases.
// Entities validate themselves and are free of infrastructure concerns so they
// can be shared across the service, storage and transport packages.
package domain
