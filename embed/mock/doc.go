// Package mock provides a deterministic embed.Provider test double.
package mock
