// Package user contains the User aggregate: the people who place orders and
// act on them. A user's id doubles as the customer id on orders.
package user
