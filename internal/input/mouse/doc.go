// Package mouse provides pointer event types and routing.
//
// Raw reports from the terminal backend are turned into Events and fed to
// a Dispatcher, which tracks which registered Region the pointer is over
// and calls the matching Listener:
//
//	d := mouse.NewDispatcher(mouse.DefaultConfig())
//	d.Register(mouse.Region{X: 0, Y: 0, W: 1, H: rows}, gutter, toDocument)
//	d.Dispatch(ev)
//
// A press is delivered to the listener under the pointer, and the release
// that ends it goes to the same listener. Enter and exit are delivered
// when the pointer moves between regions. Wheel events are not routed;
// use ScrollLines to turn them into a line delta.
package mouse
