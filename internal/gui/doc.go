// Package gui is the Fyne desktop front-end: an add row above a scrolling
// list of links, each with copy, edit and delete actions.
package gui
