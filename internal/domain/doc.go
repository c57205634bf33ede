// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/dish, domain/category,
// domain/cart). This root package holds sentinel errors, validation types and
// the signed-in user shared by every screen.
package domain
