// Package order contains the Order aggregate and its delivery state
// machine. An order is the per-shop unit produced by checkout: an
// immutable snapshot of lines and price, plus the mutable state that
// tracks the order from shop acceptance through shipping, the optional
// warehouse relay, delivery, and customer confirmation.
package order
