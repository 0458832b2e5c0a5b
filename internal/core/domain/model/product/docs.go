// Package product models a purchasable catalog item. Products are owned by
// the restaurant platform's catalog; the client only holds immutable
// snapshots of them, referenced (never owned) by cart lines.
package product
