// Package router keeps the host's side of a navigation stack: the routes
// themselves and the navigating/returning/replacing flags a navstack surface
// reads each frame.
//
// The surface never mutates the stack. Instead the host feeds every
// reported Action back into Handle, which pops the top route once a return
// has finished and clears the navigating flag once a push has settled.
//
// # Basic Usage
//
//	r := router.New(Home)
//
//	// Forward: push and animate in.
//	r.Navigate(Settings)
//
//	// Each frame:
//	nav := navstack.New(r.Routes(), cfg)
//	resp := navstack.Show(frame, nav, r.Request(), render)
//	r.Handle(resp.Action)
//
//	// Back: animate out, the pop happens when the surface reports Returned.
//	r.GoBack()
//
// # Replacing
//
// RouteToReplaced pushes a route that, once it has settled, becomes the only
// route on the stack. Use it for flows like login → home where going back is
// not meaningful.
package router
