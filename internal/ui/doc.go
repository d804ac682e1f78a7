// Package ui renders the showcase listing carousel with Bubble Tea.
//
// The root Model polls the state store once a second and hands listings to a
// carousel.Model only when the store version changes. Mouse motion over the
// title row, the cards or the dots holds the current slide; the space key
// pins it independently of the pointer.
package ui
