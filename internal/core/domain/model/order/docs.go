// Package order implements the Order aggregate of the ordering service.
//
// The package includes:
//   - Order: the aggregate root owning line items, totals, status and domain events
//   - LineItem and BundleComponentItem: the products of an order and the parts of bundles
//   - Status: the order state machine
//   - OrderID and ProductID: positive numeric identifiers
//   - OrderCreated, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled: domain events
//
// Key business rules:
//   - An order always holds at least one line item and its total is the exact sum of line totals
//   - Status follows Pending -> Paid -> Shipped -> Delivered, with Cancelled reachable from Pending or Paid
//   - Line items can only be edited while the order is Pending; edits record no events
//   - Every status change advances the audit information and records exactly one event
//
// Aggregates are mutated in place and are not safe for concurrent use; the unit of
// work that loads an order is its only writer.
package order
