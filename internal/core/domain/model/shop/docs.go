// Package shop contains the Shop aggregate: a vendor storefront owning
// priced, quantity-tracked stock items and accumulating confirmed revenue.
package shop
