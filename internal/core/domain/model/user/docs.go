// Package user contains the User aggregate covering both marketplace
// roles: customers (cart, optional shop, buying) and shippers (delivery
// legs, fee income). Balances are clamped so they never go negative.
package user
