package http

// ItemRequest is one requested line in a submit or amend body. The client
// names a menu item by id; the server resolves name and price itself.
type ItemRequest struct {
	ItemID    string   `json:"itemId"`
	Qty       int      `json:"qty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Note      string   `json:"note,omitempty"`
}

// SubmitOrderRequest is the body of POST /api/v1/orders.
type SubmitOrderRequest struct {
	TableNumber int           `json:"tableNumber"`
	Items       []ItemRequest `json:"items"`
	Note        string        `json:"note,omitempty"`
	ServerName  string        `json:"serverName"`
}

// AmendOrderRequest is the body of PATCH /api/v1/orders/:id.
// ExpectedVersion 0 applies the change against whatever is stored.
type AmendOrderRequest struct {
	Items           []ItemRequest `json:"items"`
	Note            string        `json:"note,omitempty"`
	Actor           string        `json:"actor"`
	ExpectedVersion int           `json:"expectedVersion,omitempty"`
}

// AdvanceStatusRequest is the body of POST /api/v1/orders/:id/status.
type AdvanceStatusRequest struct {
	Target          string `json:"target"`
	ExpectedVersion int    `json:"expectedVersion,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
