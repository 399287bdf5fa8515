package fakebackend

import (
	"net/http"

	"github.com/getmockd/fakeapi/internal/matching"
	"github.com/getmockd/fakeapi/pkg/records"
	"github.com/getmockd/fakeapi/pkg/routing"
)

// Route names as reported in logs and metrics.
const (
	RouteAuthenticate = "users.authenticate"
	RouteRegister     = "users.register"
	RouteUsersList    = "users.list"
	RouteUserGet      = "users.get"
	RouteUserUpdate   = "users.update"
	RouteUserDelete   = "users.delete"
	RouteItemsList    = "inventory.list"
	RouteItemCreate   = "inventory.create"
	RouteItemGet      = "inventory.get"
	RouteItemUpdate   = "inventory.update"
	RouteItemDelete   = "inventory.delete"
)

// MsgInvalidBody is returned for request bodies that are not a JSON object.
const MsgInvalidBody = "Invalid request body"

func errInvalidBody() error {
	return &records.BadRequestError{Message: MsgInvalidBody}
}

// routes builds the table. Literal suffix routes come before id routes.
func (b *Backend) routes() *routing.Table {
	return routing.NewTable(
		routing.Route{Name: RouteAuthenticate, Match: matching.Suffix("/users/authenticate", http.MethodPost), Handle: b.authenticate, Public: true},
		routing.Route{Name: RouteRegister, Match: matching.Suffix("/users/register", http.MethodPost), Handle: b.register, Public: true},
		routing.Route{Name: RouteUsersList, Match: matching.Suffix("/users", http.MethodGet), Handle: b.listUsers},
		routing.Route{Name: RouteItemsList, Match: matching.Suffix("/inventory", http.MethodGet), Handle: b.listItems},
		routing.Route{Name: RouteItemCreate, Match: matching.Suffix("/inventory", http.MethodPost), Handle: b.createItem},

		routing.Route{Name: RouteUserGet, Match: matching.ID("/users", http.MethodGet), Handle: b.getUser},
		routing.Route{Name: RouteUserUpdate, Match: matching.ID("/users", http.MethodPut), Handle: b.updateUser},
		routing.Route{Name: RouteUserDelete, Match: matching.ID("/users", http.MethodDelete), Handle: b.deleteUser},
		routing.Route{Name: RouteItemGet, Match: matching.ID("/inventory", http.MethodGet), Handle: b.getItem},
		routing.Route{Name: RouteItemUpdate, Match: matching.ID("/inventory", http.MethodPut), Handle: b.updateItem},
		routing.Route{Name: RouteItemDelete, Match: matching.ID("/inventory", http.MethodDelete), Handle: b.deleteItem},
	)
}
