package consolesdk

import (
	"net/url"
	"strconv"
)

// Params are query parameters forwarded verbatim to list endpoints.
type Params = url.Values

// API groups every resource of the practice management service over one
// Requester, normally a Session.
type API struct {
	Auth       *AuthAPI
	Users      *UsersAPI
	Clients    *ClientsAPI
	Financial  *FinancialAPI
	Compliance *ComplianceAPI
	AI         *AIAPI
}

// NewAPI builds all resource groups over r.
func NewAPI(r Requester) *API {
	return &API{
		Auth:       NewAuthAPI(r),
		Users:      &UsersAPI{r: r},
		Clients:    &ClientsAPI{r: r},
		Financial:  &FinancialAPI{r: r},
		Compliance: &ComplianceAPI{r: r},
		AI:         &AIAPI{r: r},
	}
}

// resourcePath joins a collection path and a numeric id.
func resourcePath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}
