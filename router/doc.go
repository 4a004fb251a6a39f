/*
Package router defines the HTTP routes for the QuickPoll API.

Routes use Go 1.22+ method-and-pattern routing on http.ServeMux. The
more specific /api/polls/mine pattern wins over /api/polls/{id}, so
both can be registered side by side.

Public routes are wrapped with request logging; protected routes are
additionally wrapped with the auth guard:

	mux := router.NewRouter(db, cfg, hub)

The websocket endpoint /ws is registered without the logging wrapper
since the connection is long-lived.
*/
package router
