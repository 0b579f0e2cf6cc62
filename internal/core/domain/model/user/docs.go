// Package user contains the User aggregate and its value objects.
//
// A User is any principal known to the system: customer, courier, manager,
// or admin. Couriers go through an approval workflow: they register with
// three document images, start in pending status, and are activated or
// deactivated by an admin decision. The aggregate enforces the login gates
// and the courier-only rules (availability, approval) so the HTTP layer
// never reimplements them.
package user
