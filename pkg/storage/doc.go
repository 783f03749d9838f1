// Package storage writes encoded identicons and keeps a manifest of what was written.
package storage
