package feed

import (
	"fmt"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
)

type scopeKind int

const (
	scopeKitchen scopeKind = iota
	scopeTable
	scopeServer
)

// Scope describes which orders a session wants delivered. A kitchen display
// subscribes to everything; a server station subscribes to its own
// submissions or to a single table.
//
// Matching is keyed on the order's immutable fields (table, submitting
// server), so whether a session matches an order never changes across that
// order's lifetime. Status is deliberately ignored: a session that saw an
// order become active must also see it leave the active set.
type Scope struct {
	kind   scopeKind
	table  kernel.TableNumber
	server string
}

// KitchenScope matches every order. Used by kitchen displays and the manager
// console.
func KitchenScope() Scope {
	return Scope{kind: scopeKitchen}
}

// TableScope matches only orders for the given table.
func TableScope(table kernel.TableNumber) Scope {
	return Scope{kind: scopeTable, table: table}
}

// ServerScope matches only orders submitted by the named server.
func ServerScope(serverName string) Scope {
	return Scope{kind: scopeServer, server: serverName}
}

// Matches reports whether an order record falls inside this scope.
func (s Scope) Matches(snap order.Snapshot) bool {
	switch s.kind {
	case scopeTable:
		return snap.TableNumber == s.table.Int()
	case scopeServer:
		return snap.ServerName == s.server
	default:
		return true
	}
}

// String returns a log-friendly description of the scope.
func (s Scope) String() string {
	switch s.kind {
	case scopeTable:
		return fmt.Sprintf("table=%d", s.table.Int())
	case scopeServer:
		return fmt.Sprintf("server=%s", s.server)
	default:
		return "kitchen"
	}
}
