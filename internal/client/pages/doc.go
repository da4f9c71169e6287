// Package pages renders the six content views of the client as plain text
// and keeps each page's local form state. Nothing here touches the network
// or the token store; the cli package wires pages to the session.
package pages
