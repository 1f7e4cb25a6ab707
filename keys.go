package signpost

import "context"

type Key string

const (
	// NavigationIDKey stashes the unique ID of the navigation activating a view.
	NavigationIDKey Key = "NavigationIDKey"

	// paramsKey stashes the path parameters captured while resolving a navigation.
	paramsKey Key = "ParamsKey"

	// RequestIDKey stashes a unique UUID for each HTTP request served by the static host.
	RequestIDKey Key = "RequestIDKey"

	// IpAddrKey stashes the IP address of an HTTP request served by the static host.
	IpAddrKey Key = "IpAddrKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "signpost context key: " + string(k)
}

// Params are the values captured from the :name segments of a route path.
type Params map[string]string

// NewParamsContext adds params to ctx, returning the resulting context.
func NewParamsContext(ctx context.Context, params Params) context.Context {
	return context.WithValue(ctx, paramsKey, params)
}

// ParamsFromContext retrieves the Params in ctx.
// If none were set, it returns an empty Params.
func ParamsFromContext(ctx context.Context) Params {
	params, ok := ctx.Value(paramsKey).(Params)
	if !ok || params == nil {
		return make(Params)
	}

	return params
}

// NewNavigationIDContext adds the navigation ID id to ctx, returning the resulting context.
func NewNavigationIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, NavigationIDKey, id)
}

// NavigationIDFromContext retrieves the navigation ID in ctx, if any.
func NavigationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(NavigationIDKey).(string)
	return id
}
