// Package order contains the Order aggregate and its status state machine.
//
// An order is created pending and unassigned by a customer. It gains a
// courier either through self-service acceptance (courier claims an eligible
// pending order) or through a manager assignment, and then moves along the
// closed transition graph to delivered or cancelled. The aggregate validates
// every move; the repository enforces the racy ones atomically.
package order
