// Package models defines the core domain entities for the wedding planner.
//
// # Entities
//
//   - UserPreference: a couple's submitted planning preferences. Append-only;
//     persisted once and never mutated.
//   - Vendor: a service provider listing (venue, photographer, zaffe troupe,
//     ...). Read-only reference data, seeded once and queried many times.
//   - Inquiry: a contact request from a couple to a vendor.
//   - User: a registered account for the auth endpoints.
//
// # Generated values
//
// ChecklistItem, BudgetItem and Plan are computed fresh for every plan
// request and embedded in the response; they are not stored as their own
// records.
//
// # Design principles
//
//  1. Typed at the store boundary: rows coming out of storage are converted
//     into these structs immediately, never passed around as raw maps.
//  2. Optional fields that distinguish "absent" from zero use pointers
//     (AveragePriceUSD, Capacity).
//  3. Relationships use ID strings rather than struct pointers.
package models
