// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravity/pkg/physics"
)

// CameraSystem keeps the view centered on the rocket
type CameraSystem struct {
	target    physics.Vector2D
	targetSet bool

	zoom    float32
	minZoom float32
	maxZoom float32

	followSpeed float32
	smoothing   bool

	currentPos physics.Vector2D
	placed     bool
}

// NewCameraSystem creates a new camera system. Smoothing is off so the
// rocket stays exactly centered.
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		zoom:        1.0,
		minZoom:     0.25,
		maxZoom:     3.0,
		followSpeed: 8.0,
	}
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update follows the target and pushes the result to engo's camera
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()
	if cs.targetSet {
		cs.follow(dt)
	}
	cs.applyCameraTransform()
}

func (cs *CameraSystem) handleZoomInput() {
	if scrollY := engo.Input.Mouse.ScrollY; scrollY != 0 {
		cs.SetZoom(cs.zoom * (1.0 + scrollY*0.1))
	}
	if engo.Input.Button(buttonZoomIn).Down() {
		cs.SetZoom(cs.zoom * 1.02)
	}
	if engo.Input.Button(buttonZoomOut).Down() {
		cs.SetZoom(cs.zoom * 0.98)
	}
	if engo.Input.Button(buttonResetZoom).JustPressed() {
		cs.SetZoom(1.0)
	}
}

// follow moves the camera toward the target. With smoothing the camera
// covers followSpeed*dt of the remaining distance, never overshooting.
func (cs *CameraSystem) follow(dt float32) {
	if !cs.smoothing {
		cs.currentPos = cs.target
		return
	}
	step := float64(cs.followSpeed * dt)
	if step > 1 {
		step = 1
	}
	delta := cs.target.Sub(cs.currentPos)
	cs.currentPos = cs.currentPos.Add(delta.Scale(step))
}

func (cs *CameraSystem) applyCameraTransform() {
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.XAxis, Value: float32(cs.currentPos.X)})
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.YAxis, Value: float32(cs.currentPos.Y)})
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.ZAxis, Value: 1 / cs.zoom})
}

// SetTarget sets the position the camera follows. The first target is
// adopted immediately.
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	cs.target = target
	cs.targetSet = true
	if !cs.placed {
		cs.currentPos = target
		cs.placed = true
	}
}

// ClearTarget stops following
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the zoom level, clamped to the limits
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// SetZoomLimits sets the minimum and maximum zoom levels
func (cs *CameraSystem) SetZoomLimits(min, max float32) {
	cs.minZoom = min
	cs.maxZoom = max
	cs.zoom = cs.clampZoom(cs.zoom)
}

// EnableSmoothing enables or disables eased following
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// SetFollowSpeed sets how fast a smoothed camera catches up, per second
func (cs *CameraSystem) SetFollowSpeed(speed float32) {
	cs.followSpeed = speed
}

// GetCurrentPosition returns the current camera center
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// WorldToScreen converts world coordinates to screen coordinates for a
// screen of the given size
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector2D, width, height float64) physics.Vector2D {
	rel := worldPos.Sub(cs.currentPos).Scale(float64(cs.zoom))
	return physics.Vector2D{X: rel.X + width/2, Y: rel.Y + height/2}
}

// ScreenToWorld is the inverse of WorldToScreen
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D, width, height float64) physics.Vector2D {
	rel := physics.Vector2D{X: screenPos.X - width/2, Y: screenPos.Y - height/2}
	return rel.Scale(1 / float64(cs.zoom)).Add(cs.currentPos)
}
