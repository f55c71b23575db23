// Package xrview is the interaction controller for a product catalog
// viewer that embeds a 3D model renderer with AR preview.
//
// The package sits between a host renderer (which owns rendering, the AR
// session lifecycle, and model assets — see [ModelRenderer]) and the
// viewer's UI controls. It owns two small state machines plus the thin
// event wiring around them:
//
//   - [OverlayController] relocates the overlay UI subtree between the
//     default host container and the renderer's AR slot in lockstep with
//     session status, with idempotent attach/restore.
//   - [RotationController] drives short eased yaw transitions that can be
//     cancelled and restarted mid-flight without stacking or visual jumps.
//
// Supporting pieces: [AnimationController] (chair/stretch cross-fade,
// play-once-and-freeze), [TextureCache] and [TextureCycler] (memoized
// texture variants with rollback on failure), [DimensionPoller] (bounding
// box readout in centimeters), and [HotspotTimer] (show on activity, hide
// after idle).
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop for you:
//
//	viewer := xrview.NewViewer(renderer, xrview.Config{
//		TextureURIs: []string{"fabric.png", "leather.png"},
//	})
//	xrview.Run(viewer, xrview.RunConfig{
//		Title: "Showroom", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Viewer.Update] once per tick, forwarding host notifications
// ([Viewer.HandleStatusChange], [Viewer.HandleModelLoad], and friends)
// and control clicks ([Viewer.ToggleAR], [Viewer.Rotate], ...) as they
// arrive.
//
// # Threading
//
// Everything runs single-threaded on the host UI loop. Handlers and
// Update must be called from that loop; nothing blocks, and time-based
// work advances only through Update.
package xrview
