// Package network collects the addressing helpers shared by the Blackjack
// server and client: finding the address of the LAN interface, its subnet and
// broadcast address, completing partial addresses typed by a user, and
// recognising errors that mean a connection is gone.
package network
