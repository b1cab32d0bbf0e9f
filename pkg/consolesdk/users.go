package consolesdk

import (
	"context"
	"encoding/json"
	"net/http"
)

const usersPath = "/users"

// UsersAPI manages console users.
type UsersAPI struct {
	r Requester
}

// List returns users matching params.
func (u *UsersAPI) List(ctx context.Context, params Params) ([]User, error) {
	return call[[]User](ctx, u.r, &Request{
		Method: http.MethodGet,
		Path:   usersPath,
		Query:  params,
	})
}

// Get returns a single user.
func (u *UsersAPI) Get(ctx context.Context, id int64) (*User, error) {
	user, err := call[User](ctx, u.r, &Request{
		Method: http.MethodGet,
		Path:   resourcePath(usersPath, id),
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create adds a user and returns the created record.
func (u *UsersAPI) Create(ctx context.Context, in UserInput) (*User, error) {
	user, err := call[User](ctx, u.r, &Request{
		Method: http.MethodPost,
		Path:   usersPath,
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update modifies a user and returns the updated record.
func (u *UsersAPI) Update(ctx context.Context, id int64, in UserInput) (*User, error) {
	user, err := call[User](ctx, u.r, &Request{
		Method: http.MethodPut,
		Path:   resourcePath(usersPath, id),
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user and returns the server's response body.
func (u *UsersAPI) Delete(ctx context.Context, id int64) (json.RawMessage, error) {
	return raw(ctx, u.r, &Request{
		Method: http.MethodDelete,
		Path:   resourcePath(usersPath, id),
	})
}

// Permissions lists every permission known to the server. The shape is
// server defined and returned as received.
func (u *UsersAPI) Permissions(ctx context.Context) (json.RawMessage, error) {
	return raw(ctx, u.r, &Request{
		Method: http.MethodGet,
		Path:   usersPath + "/permissions",
	})
}

// RolePermissions maps roles to their permissions.
func (u *UsersAPI) RolePermissions(ctx context.Context) (Record, error) {
	return call[Record](ctx, u.r, &Request{
		Method: http.MethodGet,
		Path:   usersPath + "/role-permissions",
	})
}
