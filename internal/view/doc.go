// Package view wires the interactive widgets of the listing and detail pages together:
// popovers registered with one dismiss coordinator, the guest and date pickers, the location
// autocomplete and the booking flow. Any front end (or a test) drives these types directly.
package view

// Popover ids
const (
	PopoverLocation = "location"
	PopoverDate     = "date"
	PopoverGuests   = "guests"
)
